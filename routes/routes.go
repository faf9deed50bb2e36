package routes

import (
	"net/http"
	"strings"

	"blogapi/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	categoryHandler *handlers.CategoryHandler,
	mw *handlers.AuthMiddleware,
) http.Handler {
	mux := http.NewServeMux()

	handle := func(path string, h http.HandlerFunc) {
		mux.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
	}
	postOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				handlers.MethodNotAllowed(w)
				return
			}
			h(w, r)
		}
	}

	// Auth routes
	handle("/api/auth/register", postOnly(authHandler.Register))
	handle("/api/auth/login", postOnly(authHandler.Login))
	handle("/api/auth/logout", postOnly(mw.RequireAuth(authHandler.Logout)))
	handle("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			handlers.MethodNotAllowed(w)
			return
		}
		mw.RequireAuth(authHandler.Me)(w, r)
	})

	// Post collection routes
	handle("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			postHandler.List(w, r)
		case http.MethodPost:
			mw.RequireAuth(postHandler.Create)(w, r)
		default:
			handlers.MethodNotAllowed(w)
		}
	})

	// Post by ID, plus the admin listing
	handle("/api/posts/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/posts/")

		if rest == "admin/all" {
			if r.Method != http.MethodGet {
				handlers.MethodNotAllowed(w)
				return
			}
			mw.RequireAdmin(postHandler.AdminList)(w, r)
			return
		}
		if rest == "" || strings.Contains(rest, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			mw.OptionalAuth(func(w http.ResponseWriter, r *http.Request) {
				postHandler.Get(w, r, rest)
			})(w, r)
		case http.MethodPut:
			mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				postHandler.Update(w, r, rest)
			})(w, r)
		case http.MethodDelete:
			mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				postHandler.Delete(w, r, rest)
			})(w, r)
		default:
			handlers.MethodNotAllowed(w)
		}
	})

	// Category routes: reads public, writes behind auth
	handle("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			categoryHandler.List(w, r)
		case http.MethodPost:
			mw.RequireAuth(categoryHandler.Create)(w, r)
		default:
			handlers.MethodNotAllowed(w)
		}
	})

	handle("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/categories/")
		if rest == "" || strings.Contains(rest, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			categoryHandler.Get(w, r, rest)
		case http.MethodPut:
			mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				categoryHandler.Update(w, r, rest)
			})(w, r)
		case http.MethodDelete:
			mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				categoryHandler.Delete(w, r, rest)
			})(w, r)
		default:
			handlers.MethodNotAllowed(w)
		}
	})

	return mux
}
