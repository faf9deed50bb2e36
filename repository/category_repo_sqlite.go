package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type SQLiteCategoryRepo struct {
	DB *sql.DB
}

func NewSQLiteCategoryRepo(db *sql.DB) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{DB: db}
}

func (r *SQLiteCategoryRepo) CreateCategory(category *models.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.Exec(`
		INSERT INTO category (name, created_at)
		VALUES (?, ?)
	`, category.Name, category.CreatedAt)
	if err != nil {
		return err
	}
	category.ID, err = res.LastInsertId()
	return err
}

func (r *SQLiteCategoryRepo) GetAllCategories() ([]*models.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, created_at
		FROM category
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *SQLiteCategoryRepo) GetCategoryByID(id int64) (*models.Category, error) {
	c := &models.Category{}
	err := r.DB.QueryRow(`
		SELECT id, name, created_at
		FROM category
		WHERE id=?
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCategoryRepo) UpdateCategory(category *models.Category) error {
	_, err := r.DB.Exec(`
		UPDATE category SET name=? WHERE id=?
	`, category.Name, category.ID)
	return err
}

func (r *SQLiteCategoryRepo) DeleteCategory(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM category WHERE id=?`, id)
	return err
}
