package project

import (
	"testing"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/pkg/constant"
)

func authCtx(roleId int) *abstraction.Context {
	return &abstraction.Context{Auth: &abstraction.AuthContext{ID: 1, RoleID: roleId}}
}

func TestUpdateBlankNameRejected(t *testing.T) {
	// zero-value service: touching the repository or DB would panic, so a
	// clean error proves the rejection happens before any query
	s := &service{}
	name := ""

	_, err := s.Update(authCtx(constant.ROLE_ID_ADMIN), &dto.ProjectUpdateRequest{ID: 1, Name: &name})
	if err == nil {
		t.Fatal("expected blank name error")
	}
}

func TestUpdateNonAdminRejected(t *testing.T) {
	s := &service{}
	name := "Harbour Bridge"

	_, err := s.Update(authCtx(constant.ROLE_ID_ENGINEER), &dto.ProjectUpdateRequest{ID: 1, Name: &name})
	if err == nil {
		t.Fatal("expected role error")
	}
}
