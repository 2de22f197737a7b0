package store

import (
	"context"
	"errors"
	"testing"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestUserCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	us := db.Users()

	user, err := us.AddUser(ctx, entity.TeamUserInsert{
		Name:   "Sara",
		Email:  "sara@example.com",
		Role:   entity.RoleEditor,
		Active: true,
	})
	assert.NoError(t, err)
	assert.Positive(t, user.Id)
	assert.Equal(t, entity.RoleEditor, user.Role)

	// duplicate email is a unique violation
	_, err = us.AddUser(ctx, entity.TeamUserInsert{
		Name:   "Other",
		Email:  "sara@example.com",
		Role:   entity.RoleViewer,
		Active: true,
	})
	assert.Error(t, err)
	assert.True(t, db.IsErrUniqueViolation(err))

	users, err := us.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	newRole := entity.RoleAdmin
	inactive := false
	updated, err := us.UpdateUser(ctx, user.Id, entity.TeamUserPatch{
		Role:   &newRole,
		Active: &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.False(t, updated.Active)
	assert.Equal(t, user.Email, updated.Email)

	_, err = us.UpdateUser(ctx, user.Id+1000, entity.TeamUserPatch{Role: &newRole})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = us.DeleteUser(ctx, user.Id)
	assert.NoError(t, err)

	users, err = us.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)
}
