package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// ErrNotFound is returned for lookups and updates addressing a missing row.
var ErrNotFound = errors.New("not found")

type userStore struct {
	*MYSQLStore
}

// Users returns an object implementing the Users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &userStore{
		MYSQLStore: ms,
	}
}

func (us *userStore) AddUser(ctx context.Context, ins entity.TeamUserInsert) (*entity.TeamUser, error) {
	query := `
	INSERT INTO team_user (name, email, role, active)
	VALUES (:name, :email, :role, :active)`

	id, err := ExecNamedLastId(ctx, us.DB(), query, map[string]any{
		"name":   ins.Name,
		"email":  ins.Email,
		"role":   ins.Role,
		"active": ins.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add team user: %w", err)
	}
	return us.getUserById(ctx, id)
}

func (us *userStore) GetUsers(ctx context.Context) ([]entity.TeamUser, error) {
	query := `
	SELECT id, name, email, role, active, created_at
	FROM team_user
	ORDER BY created_at DESC, id DESC`

	users, err := QueryListNamed[entity.TeamUser](ctx, us.DB(), query, map[string]any{})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []entity.TeamUser{}, nil
		}
		return nil, fmt.Errorf("failed to query team users: %w", err)
	}
	if users == nil {
		users = []entity.TeamUser{}
	}
	return users, nil
}

func (us *userStore) UpdateUser(ctx context.Context, id int, patch entity.TeamUserPatch) (*entity.TeamUser, error) {
	sets := []string{}
	params := map[string]any{"id": id}

	if patch.Name != nil {
		sets = append(sets, "name = :name")
		params["name"] = *patch.Name
	}
	if patch.Email != nil {
		sets = append(sets, "email = :email")
		params["email"] = *patch.Email
	}
	if patch.Role != nil {
		sets = append(sets, "role = :role")
		params["role"] = *patch.Role
	}
	if patch.Active != nil {
		sets = append(sets, "active = :active")
		params["active"] = *patch.Active
	}
	if len(sets) == 0 {
		return nil, &entity.ValidationError{Message: "nothing to update"}
	}

	query := fmt.Sprintf(`UPDATE team_user SET %s WHERE id = :id`, strings.Join(sets, ", "))
	if err := ExecNamed(ctx, us.DB(), query, params); err != nil {
		return nil, fmt.Errorf("failed to update team user: %w", err)
	}
	// MySQL reports zero affected rows for no-op updates too; the final
	// lookup distinguishes a no-op from a missing row.
	return us.getUserById(ctx, id)
}

func (us *userStore) DeleteUser(ctx context.Context, id int) error {
	query := `DELETE FROM team_user WHERE id = :id`
	_, err := ExecNamedRowsAffected(ctx, us.DB(), query, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team user: %w", err)
	}
	return nil
}

func (us *userStore) getUserById(ctx context.Context, id int) (*entity.TeamUser, error) {
	query := `
	SELECT id, name, email, role, active, created_at
	FROM team_user
	WHERE id = :id`

	user, err := QueryNamedOne[entity.TeamUser](ctx, us.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query team user: %w", err)
	}
	return &user, nil
}
