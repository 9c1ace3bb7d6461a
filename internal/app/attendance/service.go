package attendance

import (
	"fmt"
	"net/http"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/factory"
	"sitelabour/internal/model"
	"sitelabour/internal/repository"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/util/general"
	"sitelabour/pkg/util/response"
	"sitelabour/pkg/util/retry"
	"sitelabour/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Get(ctx *abstraction.Context, payload *dto.AttendanceGetRequest) (map[string]interface{}, error)
	Save(ctx *abstraction.Context, payload *dto.AttendanceSaveRequest) (map[string]interface{}, error)
}

type service struct {
	AttendanceRepository        repository.Attendance
	ProjectRepository           repository.Project
	ProjectAssignmentRepository repository.ProjectAssignment
	LabourTypeRepository        repository.LabourType

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		AttendanceRepository:        f.AttendanceRepository,
		ProjectRepository:           f.ProjectRepository,
		ProjectAssignmentRepository: f.ProjectAssignmentRepository,
		LabourTypeRepository:        f.LabourTypeRepository,

		DB: f.Db,
	}
}

// checkProjectAccess lets admins touch any project; engineers only the ones
// they are assigned to.
func (s *service) checkProjectAccess(ctx *abstraction.Context, projectId int) error {
	if ctx.Auth.RoleID == constant.ROLE_ID_ADMIN {
		return nil
	}
	if ctx.Auth.RoleID != constant.ROLE_ID_ENGINEER {
		return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
	}
	assignments, err := s.ProjectAssignmentRepository.FindByUserId(ctx, ctx.Auth.ID)
	if err != nil && err.Error() != "record not found" {
		return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if len(assignments) == 0 {
		return nil
	}
	for _, a := range assignments {
		if a.ProjectId == projectId {
			return nil
		}
	}
	return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project is not assigned to this user")
}

func (s *service) Get(ctx *abstraction.Context, payload *dto.AttendanceGetRequest) (map[string]interface{}, error) {
	if !general.IsValidDate(payload.Date) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "date is not valid")
	}
	if err := s.checkProjectAccess(ctx, payload.ProjectId); err != nil {
		return nil, err
	}

	var data []*model.AttendanceEntityModel
	err := retry.Do(constant.RETRY_MAX_RETRIES, constant.RETRY_INITIAL_DELAY, func() error {
		var findErr error
		data, findErr = s.AttendanceRepository.FindByProjectAndDate(ctx, payload.ProjectId, payload.Date)
		return findErr
	})
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var rows []map[string]interface{} = nil
	for _, v := range data {
		rows = append(rows, map[string]interface{}{
			"id":             v.ID,
			"team_id":        v.TeamId,
			"team_name":      v.Team.Name,
			"labour_type_id": v.LabourTypeId,
			"type_name":      v.LabourType.TypeName,
			"count":          v.Count,
		})
	}

	// exists drives edit mode on the client: a saved row set means the form
	// opens prefilled and the next save replaces it.
	return map[string]interface{}{
		"project_id": payload.ProjectId,
		"date":       payload.Date,
		"exists":     len(data) > 0,
		"rows":       rows,
	}, nil
}

func (s *service) Save(ctx *abstraction.Context, payload *dto.AttendanceSaveRequest) (map[string]interface{}, error) {
	if !general.IsValidDate(payload.Date) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "date is not valid")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if err := s.checkProjectAccess(ctx, payload.ProjectId); err != nil {
			return err
		}

		projectData, err := s.ProjectRepository.FindById(ctx, payload.ProjectId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if projectData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project not found")
		}

		seen := make(map[string]bool, len(payload.Rows))
		newRows := make([]*model.AttendanceEntityModel, 0, len(payload.Rows))
		for _, row := range payload.Rows {
			key := fmt.Sprintf("%d:%d", row.TeamId, row.LabourTypeId)
			if seen[key] {
				return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "duplicate team and labour type row")
			}
			seen[key] = true

			typeData, err := s.LabourTypeRepository.FindById(ctx, row.LabourTypeId)
			if err != nil && err.Error() != "record not found" {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}
			if typeData == nil {
				return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type not found")
			}
			if typeData.TeamId != row.TeamId {
				return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type does not belong to team")
			}

			newRows = append(newRows, &model.AttendanceEntityModel{
				Context: ctx,
				AttendanceEntity: model.AttendanceEntity{
					ProjectId:    payload.ProjectId,
					Date:         payload.Date,
					TeamId:       row.TeamId,
					LabourTypeId: row.LabourTypeId,
					Count:        row.Count,
				},
				EntityWithBy: abstraction.EntityWithBy{
					CreatedBy: ctx.Auth.ID,
				},
			})
		}

		// replace, not merge: clear the key first so removed rows do not linger
		if err = s.AttendanceRepository.DeleteByProjectAndDate(ctx, payload.ProjectId, payload.Date).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if err = s.AttendanceRepository.CreateBatch(ctx, newRows).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "success save!",
	}, nil
}
