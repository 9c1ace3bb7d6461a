package board

import (
	"testing"

	"sitelabour/internal/model"
)

func sampleDaily() []*model.BoardDailyRow {
	return []*model.BoardDailyRow{
		{ProjectId: 2, ProjectName: "Metro Depot", Date: "2026-08-28", Attendance: 12, Allotted: 9},
		{ProjectId: 1, ProjectName: "Harbour Bridge", Date: "2026-08-28", Attendance: 20, Allotted: 18},
		{ProjectId: 1, ProjectName: "Harbour Bridge", Date: "2026-08-27", Attendance: 15, Allotted: 17},
		{ProjectId: 2, ProjectName: "Metro Depot", Date: "2026-08-27", Attendance: 10, Allotted: 10},
	}
}

func TestRollupFromDaily(t *testing.T) {
	rollup := RollupFromDaily(sampleDaily())

	if len(rollup) != 2 {
		t.Fatalf("rollup rows = %d, want 2", len(rollup))
	}
	// sorted by project name, so the bridge comes first
	if rollup[0].ProjectName != "Harbour Bridge" {
		t.Fatalf("first project = %q", rollup[0].ProjectName)
	}
	if rollup[0].Attendance != 35 || rollup[0].Allotted != 35 {
		t.Fatalf("bridge rollup = %d/%d, want 35/35", rollup[0].Attendance, rollup[0].Allotted)
	}
	if rollup[1].Attendance != 22 || rollup[1].Allotted != 19 {
		t.Fatalf("depot rollup = %d/%d, want 22/19", rollup[1].Attendance, rollup[1].Allotted)
	}
}

func TestRollupFromDailyEmpty(t *testing.T) {
	rollup := RollupFromDaily(nil)
	if len(rollup) != 0 {
		t.Fatalf("rollup rows = %d, want 0", len(rollup))
	}
}

func TestWindowOrDefault(t *testing.T) {
	if got := windowOrDefault(nil); got != 30 {
		t.Fatalf("absent window = %d, want 30", got)
	}
	zero := 0
	if got := windowOrDefault(&zero); got != 0 {
		t.Fatalf("window=0 = %d, want 0 (all time)", got)
	}
	seven := 7
	if got := windowOrDefault(&seven); got != 7 {
		t.Fatalf("window=7 = %d, want 7", got)
	}
}

func TestTotalsGapIdentity(t *testing.T) {
	rollup := RollupFromDaily(sampleDaily())
	attendance, allotted, gap := Totals(rollup)

	if attendance != 57 || allotted != 54 {
		t.Fatalf("totals = %d/%d, want 57/54", attendance, allotted)
	}
	if gap != attendance-allotted {
		t.Fatalf("gap = %d, want attendance-allotted = %d", gap, attendance-allotted)
	}

	// the rollup totals must match summing the daily series directly
	var dailyAttendance, dailyAllotted int
	for _, row := range sampleDaily() {
		dailyAttendance += row.Attendance
		dailyAllotted += row.Allotted
	}
	if attendance != dailyAttendance || allotted != dailyAllotted {
		t.Fatalf("rollup totals %d/%d diverge from daily %d/%d",
			attendance, allotted, dailyAttendance, dailyAllotted)
	}
}
