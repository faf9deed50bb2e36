package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/apperr"
	"blogapi/auth"
	"blogapi/repository"
)

type AuthHandler struct {
	Auth  *auth.AuthService
	Users repository.UserRepository
}

// Register handler: creates the account and logs the caller straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}

	result, err := h.Auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// Login handler
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		WriteAppError(w, apperr.Validation("Invalid request payload"))
		return
	}

	result, err := h.Auth.Login(creds.Email, creds.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// Logout revokes the presented token. Responds 200 even when the token was
// already revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := BearerToken(r) // RequireAuth already validated presence

	if err := h.Auth.Logout(token); err != nil {
		WriteAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Logged out",
	})
}

// Me echoes the authenticated user's summary.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFrom(r.Context())

	user, err := h.Users.GetUserByID(ident.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if user == nil {
		WriteAppError(w, apperr.Unauthorized("Invalid or expired token"))
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    user.Summary(),
	})
}
