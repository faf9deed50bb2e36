package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type PostgresPostRepo struct {
	DB *sql.DB
}

func NewPostgresPostRepo(db *sql.DB) *PostgresPostRepo {
	return &PostgresPostRepo{DB: db}
}

const postgresPostSelect = `
	SELECT p.id, p.title, p.slug, p.description, p.content,
	       p.category_id, p.author_id, p.published, p.created_at,
	       c.name, c.created_at,
	       u.id, u.email, u.name, u.role
	FROM post p
	LEFT JOIN category c ON c.id = p.category_id
	JOIN app_user u ON u.id = p.author_id
`

func (r *PostgresPostRepo) CreatePost(post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO post (title, slug, description, content, category_id, author_id, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, post.Title, post.Slug, post.Description, post.Content,
		post.CategoryID, post.AuthorID, post.Published, post.CreatedAt).Scan(&post.ID)
}

func (r *PostgresPostRepo) GetPostByID(id int64) (*models.Post, error) {
	rows, err := r.DB.Query(postgresPostSelect+` WHERE p.id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanPosts(rows)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *PostgresPostRepo) GetPublishedPosts() ([]*models.Post, error) {
	rows, err := r.DB.Query(postgresPostSelect + `
		WHERE p.published = TRUE
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostgresPostRepo) GetAllPosts() ([]*models.Post, error) {
	rows, err := r.DB.Query(postgresPostSelect + `
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostgresPostRepo) UpdatePost(post *models.Post) error {
	_, err := r.DB.Exec(`
		UPDATE post
		SET title=$1, slug=$2, description=$3, content=$4, category_id=$5, published=$6
		WHERE id=$7
	`, post.Title, post.Slug, post.Description, post.Content,
		post.CategoryID, post.Published, post.ID)
	return err
}

func (r *PostgresPostRepo) SetPublished(id int64, published bool) error {
	_, err := r.DB.Exec(`UPDATE post SET published=$1 WHERE id=$2`, published, id)
	return err
}

func (r *PostgresPostRepo) DeletePost(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM post WHERE id=$1`, id)
	return err
}
