package assignment

import (
	"net/http"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/factory"
	"sitelabour/internal/model"
	"sitelabour/internal/repository"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/util/general"
	"sitelabour/pkg/util/response"
	"sitelabour/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.ProjectAssignmentCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.ProjectAssignmentDeleteRequest) (map[string]interface{}, error)
}

type service struct {
	ProjectAssignmentRepository repository.ProjectAssignment
	ProjectRepository           repository.Project
	UserRepository              repository.User

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectAssignmentRepository: f.ProjectAssignmentRepository,
		ProjectRepository:           f.ProjectRepository,
		UserRepository:              f.UserRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.ProjectAssignmentCreateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		userData, err := s.UserRepository.FindById(ctx, payload.UserId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if userData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "user not found")
		}

		projectData, err := s.ProjectRepository.FindById(ctx, payload.ProjectId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if projectData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project not found")
		}

		existing, err := s.ProjectAssignmentRepository.FindByUserAndProject(ctx, payload.UserId, payload.ProjectId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if existing != nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "assignment already exist")
		}

		modelAssignment := &model.ProjectAssignmentEntityModel{
			Context: ctx,
			ProjectAssignmentEntity: model.ProjectAssignmentEntity{
				UserId:    payload.UserId,
				ProjectId: payload.ProjectId,
			},
		}
		if err = s.ProjectAssignmentRepository.Create(ctx, modelAssignment).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success create!",
	}, nil
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	var res []map[string]interface{} = nil
	data, err := s.ProjectAssignmentRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.ProjectAssignmentRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"id":         v.ID,
			"created_at": general.FormatWithZWithoutChangingTime(v.CreatedAt),
			"user": map[string]interface{}{
				"id":    v.User.ID,
				"name":  v.User.Name,
				"email": v.User.Email,
			},
			"project": map[string]interface{}{
				"id":   v.Project.ID,
				"name": v.Project.Name,
			},
		})
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.ProjectAssignmentDeleteRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		data, err := s.ProjectAssignmentRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if data == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "assignment not found")
		}

		if err = s.ProjectAssignmentRepository.Delete(ctx, data).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success delete!",
	}, nil
}
