package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// EditorRequired runs after jwtauth.Verifier and admits only verified
// tokens whose "type" claim is editor.
func EditorRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != auth.TokenTypeEditor {
			response.HandleError(w, auth.ErrNotEditor)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
