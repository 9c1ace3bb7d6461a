package project

import (
	"net/http"
	"strings"

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
	Create(ctx *abstraction.Context, payload *dto.ProjectCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.ProjectFindByIDRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.ProjectUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.ProjectDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	ProjectRepository repository.Project

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectRepository: f.ProjectRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.ProjectCreateRequest) (map[string]interface{}, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		modelProject := &model.ProjectEntityModel{
			Context: ctx,
			ProjectEntity: model.ProjectEntity{
				Name:     payload.Name,
				IsDelete: false,
			},
		}
		if err := s.ProjectRepository.Create(ctx, modelProject).Error; err != nil {
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
	data, err := s.ProjectRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.ProjectRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"id":         v.ID,
			"name":       v.Name,
			"is_delete":  v.IsDelete,
			"created_at": general.FormatWithZWithoutChangingTime(v.CreatedAt),
		})
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.ProjectFindByIDRequest) (map[string]interface{}, error) {
	var res map[string]interface{} = nil
	data, err := s.ProjectRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data != nil {
		res = map[string]interface{}{
			"id":         data.ID,
			"name":       data.Name,
			"is_delete":  data.IsDelete,
			"created_at": general.FormatWithZWithoutChangingTime(data.CreatedAt),
		}
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.ProjectUpdateRequest) (map[string]interface{}, error) {
	if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
	}
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		projectData, err := s.ProjectRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if projectData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project not found")
		}

		newProjectData := new(model.ProjectEntityModel)
		newProjectData.Context = ctx
		newProjectData.ID = payload.ID
		if payload.Name != nil {
			newProjectData.Name = *payload.Name
		}

		if err = s.ProjectRepository.Update(ctx, newProjectData).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.ProjectDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		projectData, err := s.ProjectRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if projectData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project not found")
		}

		newProjectData := new(model.ProjectEntityModel)
		newProjectData.Context = ctx
		newProjectData.ID = projectData.ID
		newProjectData.IsDelete = true

		if err = s.ProjectRepository.Update(ctx, newProjectData).Error; err != nil {
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
