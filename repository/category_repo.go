package repository

import "blogapi/models"

type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	GetAllCategories() ([]*models.Category, error)
	GetCategoryByID(id int64) (*models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id int64) error
}
