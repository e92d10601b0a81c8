package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "Alice", PasswordHash: hashPassword(t, "alice")}

	assert.True(t, user.Authenticate("alice"))
	assert.False(t, user.Authenticate("wrong"), "una credencial incorrecta debe rechazarse")
	assert.False(t, user.Authenticate(""))
}

func TestUserHasPermission_UnionDeRoles(t *testing.T) {
	viewer := entity.NewRole("viewer", entity.Permission{Code: entity.PermView})
	editor := entity.NewRole("editor",
		entity.Permission{Code: entity.PermView}, // duplicado inofensivo
		entity.Permission{Code: entity.PermEdit},
	)
	user := &entity.User{ID: "u1", Username: "bob", Roles: []*entity.Role{viewer, editor}}

	assert.True(t, user.HasPermission(entity.PermView))
	assert.True(t, user.HasPermission(entity.PermEdit))
	assert.False(t, user.HasPermission(entity.PermAdmin))
}

func TestUserHasPermission_SinRoles(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "nadie"}
	assert.False(t, user.HasPermission(entity.PermView))
}
