package team

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
	Create(ctx *abstraction.Context, payload *dto.LabourTeamCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.LabourTeamFindByIDRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.LabourTeamUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.LabourTeamDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	LabourTeamRepository repository.LabourTeam
	LabourTypeRepository repository.LabourType

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		LabourTeamRepository: f.LabourTeamRepository,
		LabourTypeRepository: f.LabourTypeRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.LabourTeamCreateRequest) (map[string]interface{}, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		modelTeam := &model.LabourTeamEntityModel{
			Context: ctx,
			LabourTeamEntity: model.LabourTeamEntity{
				Name:     payload.Name,
				IsDelete: false,
			},
		}
		if err := s.LabourTeamRepository.Create(ctx, modelTeam).Error; err != nil {
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
	data, err := s.LabourTeamRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.LabourTeamRepository.Count(ctx)
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

func (s *service) FindById(ctx *abstraction.Context, payload *dto.LabourTeamFindByIDRequest) (map[string]interface{}, error) {
	var res map[string]interface{} = nil
	data, err := s.LabourTeamRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data != nil {
		types, err := s.LabourTypeRepository.FindByTeamId(ctx, data.ID)
		if err != nil && err.Error() != "record not found" {
			return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		var typeList []map[string]interface{} = nil
		for _, t := range types {
			typeList = append(typeList, map[string]interface{}{
				"id":        t.ID,
				"type_name": t.TypeName,
			})
		}
		res = map[string]interface{}{
			"id":         data.ID,
			"name":       data.Name,
			"is_delete":  data.IsDelete,
			"created_at": general.FormatWithZWithoutChangingTime(data.CreatedAt),
			"types":      typeList,
		}
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.LabourTeamUpdateRequest) (map[string]interface{}, error) {
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		teamData, err := s.LabourTeamRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if teamData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour team not found")
		}

		newTeamData := new(model.LabourTeamEntityModel)
		newTeamData.Context = ctx
		newTeamData.ID = payload.ID
		if payload.Name != nil {
			newTeamData.Name = *payload.Name
		}

		if err = s.LabourTeamRepository.Update(ctx, newTeamData).Error; err != nil {
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

func (s *service) Delete(ctx *abstraction.Context, payload *dto.LabourTeamDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		teamData, err := s.LabourTeamRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if teamData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour team not found")
		}

		newTeamData := new(model.LabourTeamEntityModel)
		newTeamData.Context = ctx
		newTeamData.ID = teamData.ID
		newTeamData.IsDelete = true

		if err = s.LabourTeamRepository.Update(ctx, newTeamData).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		// types under a deleted team disappear from pickers as well
		types, err := s.LabourTypeRepository.FindByTeamId(ctx, teamData.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		for _, t := range types {
			newTypeData := new(model.LabourTypeEntityModel)
			newTypeData.Context = ctx
			newTypeData.ID = t.ID
			newTypeData.IsDelete = true
			if err = s.LabourTypeRepository.Update(ctx, newTypeData).Error; err != nil {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success delete!",
	}, nil
}
