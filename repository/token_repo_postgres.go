package repository

import (
	"database/sql"

	"blogapi/models"
)

type PostgresTokenRepo struct {
	DB *sql.DB
}

func NewPostgresTokenRepo(db *sql.DB) *PostgresTokenRepo {
	return &PostgresTokenRepo{DB: db}
}

func (r *PostgresTokenRepo) CreateToken(token *models.Token) error {
	_, err := r.DB.Exec(`
		INSERT INTO token (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, token.Token, token.UserID, token.ExpiresAt)
	return err
}

func (r *PostgresTokenRepo) GetToken(value string) (*models.Token, error) {
	token := &models.Token{}
	err := r.DB.QueryRow(`
		SELECT token, user_id, expires_at
		FROM token
		WHERE token=$1
	`, value).Scan(&token.Token, &token.UserID, &token.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *PostgresTokenRepo) DeleteToken(value string) error {
	_, err := r.DB.Exec(`DELETE FROM token WHERE token=$1`, value)
	return err
}
