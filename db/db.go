package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	SQLite   DBType = "sqlite"
)

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
