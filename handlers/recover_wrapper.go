package handlers

import (
	"log"
	"net/http"
	"runtime"

	"blogapi/apperr"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery so a bug in
// one request cannot take the process down. The recovered value is logged
// with a stack trace and the client gets the standard 500 envelope.
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Printf("panic recovered: %v\n%s", rec, stack)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Error:   string(apperr.KindInternal),
					Message: "Internal server error, please try again later",
				})
			}
		}()

		handler(w, r)
	}
}
