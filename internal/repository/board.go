package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"

	"gorm.io/gorm"
)

type Board interface {
	DailySeries(ctx *abstraction.Context, projectId int, dateCutoff string) (data []*model.BoardDailyRow, err error)
	RollupLast30(ctx *abstraction.Context) (data []*model.BoardRollupRow, err error)
}

type board struct {
	abstraction.Repository
}

func NewBoard(db *gorm.DB) *board {
	return &board{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

// DailySeries aggregates attendance against allotted labour per project per
// date. projectId 0 means all projects; dateCutoff "" means no window.
func (r *board) DailySeries(ctx *abstraction.Context, projectId int, dateCutoff string) (data []*model.BoardDailyRow, err error) {
	query := `
		SELECT t.project_id,
		       p.name AS project_name,
		       DATE_FORMAT(t.date, '%Y-%m-%d') AS date,
		       SUM(t.attendance) AS attendance,
		       SUM(t.allotted) AS allotted
		FROM (
			SELECT a.project_id, a.date, SUM(a.count) AS attendance, 0 AS allotted
			FROM attendance a
			GROUP BY a.project_id, a.date
			UNION ALL
			SELECT wr.project_id, wr.date, 0, SUM(wrl.count)
			FROM work_report_labours wrl
			JOIN work_allotments wa ON wa.id = wrl.work_allotment_id
			JOIN work_reports wr ON wr.id = wa.report_id
			GROUP BY wr.project_id, wr.date
		) t
		JOIN projects p ON p.id = t.project_id AND p.is_delete = FALSE
		WHERE (? = 0 OR t.project_id = ?)
		  AND (? = '' OR t.date >= ?)
		GROUP BY t.project_id, p.name, t.date
		ORDER BY t.date DESC, p.name ASC`
	err = r.CheckTrx(ctx).
		Raw(query, projectId, projectId, dateCutoff, dateCutoff).
		Scan(&data).
		Error
	return
}

// RollupLast30 reads the precomputed 30 day all-projects view; callers fall
// back to aggregating DailySeries when this errors.
func (r *board) RollupLast30(ctx *abstraction.Context) (data []*model.BoardRollupRow, err error) {
	err = r.CheckTrx(ctx).
		Raw(`SELECT project_id, project_name, attendance, allotted
		     FROM board_labour_last30
		     ORDER BY project_name ASC`).
		Scan(&data).
		Error
	return
}
