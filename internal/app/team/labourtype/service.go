package labourtype

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
	Create(ctx *abstraction.Context, payload *dto.LabourTypeCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.LabourTypeFindByIDRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.LabourTypeUpdateRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.LabourTypeDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	LabourTypeRepository repository.LabourType
	LabourTeamRepository repository.LabourTeam

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		LabourTypeRepository: f.LabourTypeRepository,
		LabourTeamRepository: f.LabourTeamRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.LabourTypeCreateRequest) (map[string]interface{}, error) {
	if strings.TrimSpace(payload.TypeName) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "type name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		teamData, err := s.LabourTeamRepository.FindById(ctx, payload.TeamId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if teamData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour team not found")
		}

		modelType := &model.LabourTypeEntityModel{
			Context: ctx,
			LabourTypeEntity: model.LabourTypeEntity{
				TypeName: payload.TypeName,
				TeamId:   payload.TeamId,
				IsDelete: false,
			},
		}
		if err = s.LabourTypeRepository.Create(ctx, modelType).Error; err != nil {
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
	data, err := s.LabourTypeRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.LabourTypeRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"id":         v.ID,
			"type_name":  v.TypeName,
			"is_delete":  v.IsDelete,
			"created_at": general.FormatWithZWithoutChangingTime(v.CreatedAt),
			"team": map[string]interface{}{
				"id":   v.Team.ID,
				"name": v.Team.Name,
			},
		})
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.LabourTypeFindByIDRequest) (map[string]interface{}, error) {
	var res map[string]interface{} = nil
	data, err := s.LabourTypeRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data != nil {
		res = map[string]interface{}{
			"id":         data.ID,
			"type_name":  data.TypeName,
			"is_delete":  data.IsDelete,
			"created_at": general.FormatWithZWithoutChangingTime(data.CreatedAt),
			"team": map[string]interface{}{
				"id":   data.Team.ID,
				"name": data.Team.Name,
			},
		}
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.LabourTypeUpdateRequest) (map[string]interface{}, error) {
	if payload.TypeName != nil && strings.TrimSpace(*payload.TypeName) == "" {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "type name cannot be blank")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		typeData, err := s.LabourTypeRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if typeData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type not found")
		}

		newTypeData := new(model.LabourTypeEntityModel)
		newTypeData.Context = ctx
		newTypeData.ID = payload.ID
		if payload.TypeName != nil {
			newTypeData.TypeName = *payload.TypeName
		}
		if payload.TeamId != nil {
			teamData, err := s.LabourTeamRepository.FindById(ctx, *payload.TeamId)
			if err != nil && err.Error() != "record not found" {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}
			if teamData == nil {
				return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour team not found")
			}
			newTypeData.TeamId = *payload.TeamId
		}

		if err = s.LabourTypeRepository.Update(ctx, newTypeData).Error; err != nil {
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

func (s *service) Delete(ctx *abstraction.Context, payload *dto.LabourTypeDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
		}

		typeData, err := s.LabourTypeRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if typeData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type not found")
		}

		newTypeData := new(model.LabourTypeEntityModel)
		newTypeData.Context = ctx
		newTypeData.ID = typeData.ID
		newTypeData.IsDelete = true

		if err = s.LabourTypeRepository.Update(ctx, newTypeData).Error; err != nil {
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
