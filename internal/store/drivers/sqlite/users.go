package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sumansi/storefront/internal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, user_id, name, email, phone, password_hash, avatar,
	reset_token_hash, reset_token_expires, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var resetHash sql.NullString
	var resetExpires sql.NullTime
	err := row.Scan(
		&u.ID, &u.UserID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Avatar, &resetHash, &resetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ResetTokenHash = mapNullString(resetHash)
	u.ResetTokenExpires = mapNullTimePtr(resetExpires)
	return u, nil
}

func (r *usersRepo) GetUserByUserID(ctx context.Context, userID string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetUserByResetTokenHash(ctx context.Context, hash string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token_hash = ?`, hash))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, user_id, name, email, phone, password_hash, avatar, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.UserID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Avatar,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, name, phone, avatar string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, phone = ?, avatar = ?, updated_at = ? WHERE user_id = ?`,
		name, phone, avatar, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE user_id = ?`,
		newHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token_hash = ?, reset_token_expires = ? WHERE user_id = ?`,
		tokenHash, expiresAt, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token_hash = NULL, reset_token_expires = NULL WHERE user_id = ?`,
		userID,
	)
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var resetHash sql.NullString
		var resetExpires sql.NullTime
		if err := rows.Scan(
			&u.ID, &u.UserID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
			&u.Avatar, &resetHash, &resetExpires, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		u.ResetTokenHash = mapNullString(resetHash)
		u.ResetTokenExpires = mapNullTimePtr(resetExpires)
		users = append(users, u)
	}
	return users, rows.Err()
}
