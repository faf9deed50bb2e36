package repository

import (
	"database/sql"

	"blogapi/models"
)

type SQLiteTokenRepo struct {
	DB *sql.DB
}

func NewSQLiteTokenRepo(db *sql.DB) *SQLiteTokenRepo {
	return &SQLiteTokenRepo{DB: db}
}

func (r *SQLiteTokenRepo) CreateToken(token *models.Token) error {
	_, err := r.DB.Exec(`
		INSERT INTO token (token, user_id, expires_at)
		VALUES (?, ?, ?)
	`, token.Token, token.UserID, token.ExpiresAt)
	return err
}

func (r *SQLiteTokenRepo) GetToken(value string) (*models.Token, error) {
	token := &models.Token{}
	err := r.DB.QueryRow(`
		SELECT token, user_id, expires_at
		FROM token
		WHERE token=?
	`, value).Scan(&token.Token, &token.UserID, &token.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *SQLiteTokenRepo) DeleteToken(value string) error {
	_, err := r.DB.Exec(`DELETE FROM token WHERE token=?`, value)
	return err
}
