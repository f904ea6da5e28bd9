package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrpulse/attendance-backend-go/internal/domain/auth"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/response"
)

// RequireManager requires manager or admin role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != employee.RoleManager && role != employee.RoleAdmin) {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the admin role or the is_admin claim.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		isAdmin, _ := claims["is_admin"].(bool)
		if role != employee.RoleAdmin && !isAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IsManager reports whether the request carries a manager or admin token.
func IsManager(r *http.Request) bool {
	role := Role(r)
	return role == employee.RoleManager || role == employee.RoleAdmin
}
