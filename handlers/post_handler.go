package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogapi/apperr"
	"blogapi/models"
	"blogapi/repository"
	"blogapi/utils"
)

type PostHandler struct {
	Repo repository.PostRepository
}

type postRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	CategoryID  *int64  `json:"category_id"`
	Published   *bool   `json:"published"`
}

// canView implements the visibility policy: published posts are public,
// unpublished ones exist only for their author and admins. Everyone else
// gets a 404 so hidden posts cannot be probed for.
func canView(ident *Identity, post *models.Post) bool {
	if post.Published {
		return true
	}
	return ident != nil && (ident.UserID == post.AuthorID || ident.IsAdmin())
}

// canMutate gates update/delete to the owner and admins. Unlike canView this
// produces 403, not 404: the caller already holds the id.
func canMutate(ident *Identity, post *models.Post) bool {
	return ident.UserID == post.AuthorID || ident.IsAdmin()
}

// List handler: public listing, published posts only, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.GetPublishedPosts()
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: posts})
}

// AdminList handler: every post including unpublished. Admin only.
func (h *PostHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.GetAllPosts()
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: posts})
}

// Get handler: applies the visibility policy to a single post.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request, idStr string) {
	post, err := h.loadPost(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if !canView(IdentityFrom(r.Context()), post) {
		WriteAppError(w, apperr.NotFound("Post not found"))
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: post})
}

// Create handler: the authenticated caller becomes the author and the slug
// is derived from the title.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFrom(r.Context())

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}

	var details []string
	if req.Title == nil || *req.Title == "" {
		details = append(details, "title is required")
	}
	if req.Content == nil || *req.Content == "" {
		details = append(details, "content is required")
	}
	if len(details) > 0 {
		WriteAppError(w, apperr.Validation("Validation Error", details...))
		return
	}

	post := &models.Post{
		Title:      *req.Title,
		Slug:       utils.Slugify(*req.Title),
		Content:    *req.Content,
		CategoryID: req.CategoryID,
		AuthorID:   ident.UserID,
		Published:  true,
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := h.Repo.CreatePost(post); err != nil {
		WriteAppError(w, err)
		return
	}

	// reload for the embedded category and author
	created, err := h.Repo.GetPostByID(post.ID)
	if err == nil && created != nil {
		post = created
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Post created successfully",
		Data:    post,
	})
}

// Update handler: owner or admin only. A title change regenerates the slug.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request, idStr string) {
	post, err := h.loadPost(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if !canMutate(IdentityFrom(r.Context()), post) {
		WriteAppError(w, apperr.Forbidden("You do not have permission to modify this post"))
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			WriteAppError(w, apperr.Validation("Validation Error", "title cannot be empty"))
			return
		}
		if *req.Title != post.Title {
			post.Title = *req.Title
			post.Slug = utils.Slugify(*req.Title)
		}
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Content != nil {
		if *req.Content == "" {
			WriteAppError(w, apperr.Validation("Validation Error", "content cannot be empty"))
			return
		}
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := h.Repo.UpdatePost(post); err != nil {
		WriteAppError(w, err)
		return
	}

	updated, err := h.Repo.GetPostByID(post.ID)
	if err == nil && updated != nil {
		post = updated
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Post updated successfully",
		Data:    post,
	})
}

// Delete handler: soft by default (published flips to false, row stays),
// permanent with ?hard=true.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	post, err := h.loadPost(idStr)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if !canMutate(IdentityFrom(r.Context()), post) {
		WriteAppError(w, apperr.Forbidden("You do not have permission to delete this post"))
		return
	}

	if r.URL.Query().Get("hard") == "true" {
		if err := h.Repo.DeletePost(post.ID); err != nil {
			WriteAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "Post deleted permanently",
		})
		return
	}

	if err := h.Repo.SetPublished(post.ID, false); err != nil {
		WriteAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Post deleted",
	})
}

func (h *PostHandler) loadPost(idStr string) (*models.Post, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, apperr.Validation("Invalid post id")
	}
	post, err := h.Repo.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}
	return post, nil
}
