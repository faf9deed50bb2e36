package repository

import "blogapi/models"

// TokenRepository persists issued tokens so they can be individually revoked.
type TokenRepository interface {
	CreateToken(token *models.Token) error
	GetToken(token string) (*models.Token, error)
	// DeleteToken removes every row matching the literal token value and
	// reports nothing when none match.
	DeleteToken(token string) error
}
