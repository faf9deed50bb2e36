package repository

import (
	"database/sql"
	"time"

	"blogapi/models"
)

type PostgresCategoryRepo struct {
	DB *sql.DB
}

func NewPostgresCategoryRepo(db *sql.DB) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{DB: db}
}

func (r *PostgresCategoryRepo) CreateCategory(category *models.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO category (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, category.Name, category.CreatedAt).Scan(&category.ID)
}

func (r *PostgresCategoryRepo) GetAllCategories() ([]*models.Category, error) {
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

func (r *PostgresCategoryRepo) GetCategoryByID(id int64) (*models.Category, error) {
	c := &models.Category{}
	err := r.DB.QueryRow(`
		SELECT id, name, created_at
		FROM category
		WHERE id=$1
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresCategoryRepo) UpdateCategory(category *models.Category) error {
	_, err := r.DB.Exec(`
		UPDATE category SET name=$1 WHERE id=$2
	`, category.Name, category.ID)
	return err
}

func (r *PostgresCategoryRepo) DeleteCategory(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM category WHERE id=$1`, id)
	return err
}
