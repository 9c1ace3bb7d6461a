package workreport

import (
	"errors"
	"testing"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/model"
	"sitelabour/pkg/constant"

	"gorm.io/gorm"
)

type flakyAttendanceRepo struct {
	rows     []*model.AttendanceEntityModel
	failures int
	calls    int
}

func (f *flakyAttendanceRepo) FindByProjectAndDate(ctx *abstraction.Context, projectId int, date string) ([]*model.AttendanceEntityModel, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("driver: bad connection")
	}
	return f.rows, nil
}

func (f *flakyAttendanceRepo) DeleteByProjectAndDate(ctx *abstraction.Context, projectId int, date string) *gorm.DB {
	return &gorm.DB{}
}

func (f *flakyAttendanceRepo) CreateBatch(ctx *abstraction.Context, data []*model.AttendanceEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func adminCtx() *abstraction.Context {
	return &abstraction.Context{Auth: &abstraction.AuthContext{ID: 1, RoleID: constant.ROLE_ID_ADMIN}}
}

func attendanceRow(teamId, typeId, count int) *model.AttendanceEntityModel {
	return &model.AttendanceEntityModel{
		AttendanceEntity: model.AttendanceEntity{TeamId: teamId, LabourTypeId: typeId, Count: count},
	}
}

func TestRemainingRecoversFromTransientReadFailure(t *testing.T) {
	repo := &flakyAttendanceRepo{failures: 2, rows: []*model.AttendanceEntityModel{attendanceRow(1, 10, 8)}}
	s := &service{AttendanceRepository: repo}

	res, err := s.Remaining(adminCtx(), &dto.WorkReportRemainingRequest{
		ProjectId: 1,
		Date:      "2026-08-29",
		Items: []dto.WorkItemPayload{
			{Allocations: []dto.WorkAllocationRow{{TeamId: 1, LabourTypeId: 10, Count: 5}}},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if repo.calls != 3 {
		t.Fatalf("read attempts = %d, want 3", repo.calls)
	}
	rows := res["rows"].([]map[string]interface{})
	if len(rows) != 1 || rows[0]["remaining"] != 3 {
		t.Fatalf("rows = %v", rows)
	}
}

func TestRemainingListsOnlyAttendedBuckets(t *testing.T) {
	repo := &flakyAttendanceRepo{rows: []*model.AttendanceEntityModel{attendanceRow(1, 10, 8)}}
	s := &service{AttendanceRepository: repo}

	res, err := s.Remaining(adminCtx(), &dto.WorkReportRemainingRequest{
		ProjectId: 1,
		Date:      "2026-08-29",
		Items: []dto.WorkItemPayload{
			{Allocations: []dto.WorkAllocationRow{
				{TeamId: 1, LabourTypeId: 10, Count: 5},
				{TeamId: 2, LabourTypeId: 20, Count: 4},
			}},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	rows := res["rows"].([]map[string]interface{})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want only the attended bucket", len(rows))
	}
	if rows[0]["key"] != "1-10" || rows[0]["attendance"] != 8 || rows[0]["remaining"] != 3 {
		t.Fatalf("row = %v", rows[0])
	}
}

func TestRemainingRejectsInvalidDate(t *testing.T) {
	s := &service{}
	if _, err := s.Remaining(adminCtx(), &dto.WorkReportRemainingRequest{ProjectId: 1, Date: "tomorrow"}); err == nil {
		t.Fatal("expected invalid date error")
	}
}
