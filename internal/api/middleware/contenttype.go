package middleware

import (
	"mime"
	"net/http"

	"github.com/todokata/todokata/internal/api/response"
	"github.com/todokata/todokata/internal/domain"
)

// JSONContentType is the only media type accepted for request bodies.
const JSONContentType = "application/json"

// RequireJSON rejects POST, PUT and PATCH requests whose Content-Type is not
// application/json with 415 Unsupported Media Type.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get("Content-Type")
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != JSONContentType {
				response.Error(w, domain.NewUnsupportedMediaTypeError(contentType))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
