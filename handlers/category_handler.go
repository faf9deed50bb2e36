package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogapi/apperr"
	"blogapi/models"
	"blogapi/repository"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
}

type categoryRequest struct {
	Name string `json:"name"`
}

// List handler
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.GetAllCategories()
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: categories})
}

// Get handler
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request, idStr string) {
	category, err := h.loadCategory(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: category})
}

// Create handler. Any authenticated user may create categories; there is no
// per-category owner (see DESIGN.md for the access-control note).
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}
	if req.Name == "" {
		WriteAppError(w, apperr.Validation("Validation Error", "name is required"))
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.Repo.CreateCategory(category); err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// Update handler
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request, idStr string) {
	category, err := h.loadCategory(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}
	if req.Name == "" {
		WriteAppError(w, apperr.Validation("Validation Error", "name is required"))
		return
	}

	category.Name = req.Name
	if err := h.Repo.UpdateCategory(category); err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// Delete handler
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	category, err := h.loadCategory(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if err := h.Repo.DeleteCategory(category.ID); err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Category deleted successfully",
	})
}

func (h *CategoryHandler) loadCategory(idStr string) (*models.Category, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, apperr.Validation("Invalid category id")
	}
	category, err := h.Repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}
	return category, nil
}
