package board

import (
	"sort"

	"sitelabour/internal/model"
)

// RollupFromDaily collapses the per-date series into one row per project.
// It mirrors what the precomputed rollup view returns, so either source can
// feed the dashboard.
func RollupFromDaily(daily []*model.BoardDailyRow) []*model.BoardRollupRow {
	byProject := make(map[int]*model.BoardRollupRow)
	for _, row := range daily {
		agg, ok := byProject[row.ProjectId]
		if !ok {
			agg = &model.BoardRollupRow{
				ProjectId:   row.ProjectId,
				ProjectName: row.ProjectName,
			}
			byProject[row.ProjectId] = agg
		}
		agg.Attendance += row.Attendance
		agg.Allotted += row.Allotted
	}

	rollup := make([]*model.BoardRollupRow, 0, len(byProject))
	for _, agg := range byProject {
		rollup = append(rollup, agg)
	}
	sort.Slice(rollup, func(i, j int) bool {
		return rollup[i].ProjectName < rollup[j].ProjectName
	})
	return rollup
}

// Totals sums the rollup into the headline numbers. The gap is attendance
// minus allotted: positive means idle heads, negative means over-allocation.
func Totals(rollup []*model.BoardRollupRow) (attendance, allotted, gap int) {
	for _, row := range rollup {
		attendance += row.Attendance
		allotted += row.Allotted
	}
	gap = attendance - allotted
	return
}
