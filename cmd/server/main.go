package main

import (
	"fmt"
	"log"
	"net/http"

	"blogapi/auth"
	"blogapi/config"
	"blogapi/db"
	"blogapi/db/postgres"
	"blogapi/db/sqlite"
	"blogapi/handlers"
	"blogapi/repository"
	"blogapi/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}

	var store db.DB
	var userRepo repository.UserRepository
	var tokenRepo repository.TokenRepository
	var categoryRepo repository.CategoryRepository
	var postRepo repository.PostRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Run migrations (sqlite applies its schema on connect)
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		tokenRepo = repository.NewPostgresTokenRepo(pg.Conn)
		categoryRepo = repository.NewPostgresCategoryRepo(pg.Conn)
		postRepo = repository.NewPostgresPostRepo(pg.Conn)

	case db.SQLite:
		sq := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err := sq.Connect(); err != nil {
			panic(err)
		}
		store = sq

		userRepo = repository.NewSQLiteUserRepo(sq.Conn)
		tokenRepo = repository.NewSQLiteTokenRepo(sq.Conn)
		categoryRepo = repository.NewSQLiteCategoryRepo(sq.Conn)
		postRepo = repository.NewSQLitePostRepo(sq.Conn)

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	// Services
	authService := auth.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)

	// Handlers
	authHandler := &handlers.AuthHandler{Auth: authService, Users: userRepo}
	postHandler := &handlers.PostHandler{Repo: postRepo}
	categoryHandler := &handlers.CategoryHandler{Repo: categoryRepo}
	mw := &handlers.AuthMiddleware{Auth: authService, Users: userRepo}

	handler := routes.SetupRoutes(authHandler, postHandler, categoryHandler, mw)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		panic(err)
	}
}
