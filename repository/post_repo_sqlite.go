package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type SQLitePostRepo struct {
	DB *sql.DB
}

func NewSQLitePostRepo(db *sql.DB) *SQLitePostRepo {
	return &SQLitePostRepo{DB: db}
}

const sqlitePostSelect = `
	SELECT p.id, p.title, p.slug, p.description, p.content,
	       p.category_id, p.author_id, p.published, p.created_at,
	       c.name, c.created_at,
	       u.id, u.email, u.name, u.role
	FROM post p
	LEFT JOIN category c ON c.id = p.category_id
	JOIN app_user u ON u.id = p.author_id
`

func (r *SQLitePostRepo) CreatePost(post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.Exec(`
		INSERT INTO post (title, slug, description, content, category_id, author_id, published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, post.Title, post.Slug, post.Description, post.Content,
		post.CategoryID, post.AuthorID, post.Published, post.CreatedAt)
	if err != nil {
		return err
	}
	post.ID, err = res.LastInsertId()
	return err
}

func (r *SQLitePostRepo) GetPostByID(id int64) (*models.Post, error) {
	rows, err := r.DB.Query(sqlitePostSelect+` WHERE p.id=?`, id)
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

func (r *SQLitePostRepo) GetPublishedPosts() ([]*models.Post, error) {
	rows, err := r.DB.Query(sqlitePostSelect + `
		WHERE p.published = 1
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *SQLitePostRepo) GetAllPosts() ([]*models.Post, error) {
	rows, err := r.DB.Query(sqlitePostSelect + `
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *SQLitePostRepo) UpdatePost(post *models.Post) error {
	_, err := r.DB.Exec(`
		UPDATE post
		SET title=?, slug=?, description=?, content=?, category_id=?, published=?
		WHERE id=?
	`, post.Title, post.Slug, post.Description, post.Content,
		post.CategoryID, post.Published, post.ID)
	return err
}

func (r *SQLitePostRepo) SetPublished(id int64, published bool) error {
	_, err := r.DB.Exec(`UPDATE post SET published=? WHERE id=?`, published, id)
	return err
}

func (r *SQLitePostRepo) DeletePost(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM post WHERE id=?`, id)
	return err
}
