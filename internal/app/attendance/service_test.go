package attendance

import (
	"errors"
	"testing"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/model"
	"sitelabour/pkg/constant"

	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	rows     []*model.AttendanceEntityModel
	failures int
	calls    int
}

func (f *fakeAttendanceRepo) FindByProjectAndDate(ctx *abstraction.Context, projectId int, date string) ([]*model.AttendanceEntityModel, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("driver: bad connection")
	}
	return f.rows, nil
}

func (f *fakeAttendanceRepo) DeleteByProjectAndDate(ctx *abstraction.Context, projectId int, date string) *gorm.DB {
	return &gorm.DB{}
}

func (f *fakeAttendanceRepo) CreateBatch(ctx *abstraction.Context, data []*model.AttendanceEntityModel) *gorm.DB {
	return &gorm.DB{}
}

type fakeAssignmentRepo struct {
	assignments []*model.ProjectAssignmentEntityModel
}

func (f *fakeAssignmentRepo) FindById(ctx *abstraction.Context, id int) (*model.ProjectAssignmentEntityModel, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) Find(ctx *abstraction.Context, noPaging bool) ([]*model.ProjectAssignmentEntityModel, error) {
	return f.assignments, nil
}

func (f *fakeAssignmentRepo) FindByUserId(ctx *abstraction.Context, userId int) ([]*model.ProjectAssignmentEntityModel, error) {
	return f.assignments, nil
}

func (f *fakeAssignmentRepo) FindByUserAndProject(ctx *abstraction.Context, userId, projectId int) (*model.ProjectAssignmentEntityModel, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) Count(ctx *abstraction.Context) (*int, error) {
	count := len(f.assignments)
	return &count, nil
}

func (f *fakeAssignmentRepo) Create(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func (f *fakeAssignmentRepo) Delete(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func authCtx(id, roleId int) *abstraction.Context {
	return &abstraction.Context{Auth: &abstraction.AuthContext{ID: id, RoleID: roleId}}
}

func TestGetRejectsInvalidDate(t *testing.T) {
	s := &service{}
	_, err := s.Get(authCtx(1, constant.ROLE_ID_ADMIN), &dto.AttendanceGetRequest{ProjectId: 1, Date: "29-08-2026"})
	if err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestGetExistsFlagAndRows(t *testing.T) {
	s := &service{
		AttendanceRepository: &fakeAttendanceRepo{rows: []*model.AttendanceEntityModel{
			{
				ID:               1,
				AttendanceEntity: model.AttendanceEntity{ProjectId: 1, Date: "2026-08-29", TeamId: 1, LabourTypeId: 10, Count: 5},
				Team:             model.LabourTeamEntityModel{LabourTeamEntity: model.LabourTeamEntity{Name: "Civil"}},
				LabourType:       model.LabourTypeEntityModel{LabourTypeEntity: model.LabourTypeEntity{TypeName: "Mason", TeamId: 1}},
			},
		}},
	}

	res, err := s.Get(authCtx(1, constant.ROLE_ID_ADMIN), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if res["exists"] != true {
		t.Fatal("exists should be true when rows are saved")
	}
	rows := res["rows"].([]map[string]interface{})
	if len(rows) != 1 || rows[0]["team_name"] != "Civil" || rows[0]["type_name"] != "Mason" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestGetExistsFalseWhenNoRows(t *testing.T) {
	s := &service{AttendanceRepository: &fakeAttendanceRepo{}}

	res, err := s.Get(authCtx(1, constant.ROLE_ID_ADMIN), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if res["exists"] != false {
		t.Fatal("exists should be false for an unsaved sheet")
	}
}

func TestGetEngineerNotAssignedRejected(t *testing.T) {
	s := &service{
		AttendanceRepository: &fakeAttendanceRepo{},
		ProjectAssignmentRepository: &fakeAssignmentRepo{assignments: []*model.ProjectAssignmentEntityModel{
			{ProjectAssignmentEntity: model.ProjectAssignmentEntity{UserId: 5, ProjectId: 9}},
		}},
	}

	if _, err := s.Get(authCtx(5, constant.ROLE_ID_ENGINEER), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"}); err == nil {
		t.Fatal("expected access error for unassigned project")
	}
}

func TestGetEngineerWithoutAssignmentsSeesAll(t *testing.T) {
	s := &service{
		AttendanceRepository:        &fakeAttendanceRepo{},
		ProjectAssignmentRepository: &fakeAssignmentRepo{},
	}

	if _, err := s.Get(authCtx(5, constant.ROLE_ID_ENGINEER), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"}); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestGetBoardRoleRejected(t *testing.T) {
	s := &service{AttendanceRepository: &fakeAttendanceRepo{}}

	if _, err := s.Get(authCtx(3, constant.ROLE_ID_BOARD), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"}); err == nil {
		t.Fatal("expected role error")
	}
}

func TestGetRecoversFromTransientReadFailure(t *testing.T) {
	repo := &fakeAttendanceRepo{failures: 2, rows: []*model.AttendanceEntityModel{
		{
			ID:               1,
			AttendanceEntity: model.AttendanceEntity{ProjectId: 1, Date: "2026-08-29", TeamId: 1, LabourTypeId: 10, Count: 5},
		},
	}}
	s := &service{AttendanceRepository: repo}

	res, err := s.Get(authCtx(1, constant.ROLE_ID_ADMIN), &dto.AttendanceGetRequest{ProjectId: 1, Date: "2026-08-29"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if repo.calls != 3 {
		t.Fatalf("read attempts = %d, want 3", repo.calls)
	}
	if res["exists"] != true {
		t.Fatal("exists should be true after the read recovers")
	}
}

func TestSaveRejectsInvalidDateBeforeAnyWrite(t *testing.T) {
	s := &service{}
	_, err := s.Save(authCtx(1, constant.ROLE_ID_ADMIN), &dto.AttendanceSaveRequest{
		ProjectId: 1,
		Date:      "not-a-date",
		Rows:      []dto.AttendanceRow{{TeamId: 1, LabourTypeId: 10, Count: 5}},
	})
	if err == nil {
		t.Fatal("expected invalid date error")
	}
}
