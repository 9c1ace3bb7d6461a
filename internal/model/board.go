package model

// BoardDailyRow is one aggregated attendance-vs-allotment point per
// project per date.
type BoardDailyRow struct {
	ProjectId   int    `json:"project_id"`
	ProjectName string `json:"project_name"`
	Date        string `json:"date"`
	Attendance  int    `json:"attendance"`
	Allotted    int    `json:"allotted"`
}

// BoardRollupRow is the per-project rollup over the selected window.
type BoardRollupRow struct {
	ProjectId   int    `json:"project_id"`
	ProjectName string `json:"project_name"`
	Attendance  int    `json:"attendance"`
	Allotted    int    `json:"allotted"`
}
