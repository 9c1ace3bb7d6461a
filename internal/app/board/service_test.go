package board

import (
	"errors"
	"testing"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/model"
	"sitelabour/pkg/constant"
)

type fakeBoardRepo struct {
	daily     []*model.BoardDailyRow
	viewRows  []*model.BoardRollupRow
	viewErr   error
	viewCalls int
}

func (f *fakeBoardRepo) DailySeries(ctx *abstraction.Context, projectId int, dateCutoff string) ([]*model.BoardDailyRow, error) {
	return f.daily, nil
}

func (f *fakeBoardRepo) RollupLast30(ctx *abstraction.Context) ([]*model.BoardRollupRow, error) {
	f.viewCalls++
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return f.viewRows, nil
}

func boardCtx() *abstraction.Context {
	return &abstraction.Context{Auth: &abstraction.AuthContext{ID: 3, RoleID: constant.ROLE_ID_BOARD}}
}

func TestRollupFallsBackWhenViewFails(t *testing.T) {
	repo := &fakeBoardRepo{daily: sampleDaily(), viewErr: errors.New("view missing")}
	s := &service{BoardRepository: repo}
	window := 30

	res, err := s.Rollup(boardCtx(), &dto.BoardRollupRequest{ProjectId: 0, Window: &window})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if repo.viewCalls == 0 {
		t.Fatal("view was never consulted for the default filter")
	}

	// the fallback must equal grouping the daily series directly
	want := RollupFromDaily(sampleDaily())
	rows := res["data"].([]map[string]interface{})
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i]["project_name"] != w.ProjectName ||
			rows[i]["attendance"] != w.Attendance ||
			rows[i]["allotted"] != w.Allotted {
			t.Fatalf("row %d = %v, want %+v", i, rows[i], w)
		}
	}
}

func TestRollupSkipsViewForNonDefaultFilter(t *testing.T) {
	repo := &fakeBoardRepo{daily: sampleDaily()}
	s := &service{BoardRepository: repo}
	window := 7

	if _, err := s.Rollup(boardCtx(), &dto.BoardRollupRequest{ProjectId: 0, Window: &window}); err != nil {
		t.Fatalf("err = %v", err)
	}
	if repo.viewCalls != 0 {
		t.Fatalf("view consulted %d times for a non-default filter", repo.viewCalls)
	}
}

func TestDailyCarriesTotals(t *testing.T) {
	s := &service{BoardRepository: &fakeBoardRepo{daily: sampleDaily()}}
	window := 30

	res, err := s.Daily(boardCtx(), &dto.BoardDailyRequest{ProjectId: 0, Window: &window})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	totals := res["totals"].(map[string]interface{})
	if totals["attendance"] != 57 || totals["allotted"] != 54 || totals["gap"] != 3 {
		t.Fatalf("totals = %v", totals)
	}
}

func TestDailyRejectsEngineer(t *testing.T) {
	s := &service{}
	window := 30
	ctx := &abstraction.Context{Auth: &abstraction.AuthContext{ID: 2, RoleID: constant.ROLE_ID_ENGINEER}}

	if _, err := s.Daily(ctx, &dto.BoardDailyRequest{Window: &window}); err == nil {
		t.Fatal("expected role error")
	}
}
