package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser inserts the user and fills in the generated id. The email
// uniqueness constraint is the final arbiter of duplicate registrations.
func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO app_user (email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, user.Email, user.Name, user.Role, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
}

// GetUserByEmail fetches user by email, returning nil when absent
func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, email, name, role, password_hash, created_at
		FROM app_user
		WHERE email=$1
	`, email))
}

func (r *PostgresUserRepo) GetUserByID(id int64) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, email, name, role, password_hash, created_at
		FROM app_user
		WHERE id=$1
	`, id))
}

func (r *PostgresUserRepo) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
