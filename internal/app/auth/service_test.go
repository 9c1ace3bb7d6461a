package auth

import (
	"errors"
	"testing"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	user *model.UserEntityModel
}

func (f *fakeUserRepo) FindByEmail(ctx *abstraction.Context, email string) (*model.UserEntityModel, error) {
	if f.user == nil {
		return nil, errors.New("record not found")
	}
	return f.user, nil
}

func (f *fakeUserRepo) FindById(ctx *abstraction.Context, id int) (*model.UserEntityModel, error) {
	if f.user == nil {
		return nil, errors.New("record not found")
	}
	return f.user, nil
}

func (f *fakeUserRepo) Create(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func (f *fakeUserRepo) Upsert(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func (f *fakeUserRepo) Find(ctx *abstraction.Context, noPaging bool) ([]*model.UserEntityModel, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(ctx *abstraction.Context) (*int, error) {
	count := 0
	return &count, nil
}

func (f *fakeUserRepo) Update(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return &gorm.DB{}
}

func TestRefreshTokenDeletedUserRejected(t *testing.T) {
	s := &service{UserRepository: &fakeUserRepo{}}
	ctx := &abstraction.Context{Auth: &abstraction.AuthContext{ID: 42, UuidLogin: "abc"}}

	_, err := s.RefreshToken(ctx)
	if err == nil {
		t.Fatal("expected unauthorized error for a deleted user")
	}
}
