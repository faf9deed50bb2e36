package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type SQLiteUserRepo struct {
	DB *sql.DB
}

func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{DB: db}
}

func (r *SQLiteUserRepo) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.DB.Exec(`
		INSERT INTO app_user (email, name, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.Email, user.Name, user.Role, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return err
	}
	user.ID, err = res.LastInsertId()
	return err
}

func (r *SQLiteUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, email, name, role, password_hash, created_at
		FROM app_user
		WHERE email=?
	`, email))
}

func (r *SQLiteUserRepo) GetUserByID(id int64) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, email, name, role, password_hash, created_at
		FROM app_user
		WHERE id=?
	`, id))
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*models.User, error) {
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
