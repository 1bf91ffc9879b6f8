package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/auth"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/user"
	"github.com/klinikmedika/absensi-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
