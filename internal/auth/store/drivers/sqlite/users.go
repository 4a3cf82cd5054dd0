package sqlite

import (
	"context"
	"database/sql"

	"github.com/hirewire/hirewire/internal/auth/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, subject_id, display_name, password_hash, created_at, updated_at`

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetBySubjectID(ctx context.Context, subjectID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE subject_id = ?`, subjectID)
	return scanUser(row)
}

func (r *usersRepo) ExistsBySubjectID(ctx context.Context, subjectID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE subject_id = ?`, subjectID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, subject_id, display_name, password_hash)
		 VALUES (?, ?, ?, ?)`,
		u.ID, u.SubjectID, u.DisplayName, u.PasswordHash)
	return mapConstraint(err)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.SubjectID,
		&u.DisplayName,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
