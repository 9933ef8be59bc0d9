package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole allows the request through only when the role claim is one of roles.
func RequireRole(roles ...employee.Role) func(http.Handler) http.Handler {
	allowed := make(map[employee.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInsufficientRole)
				return
			}

			if _, ok := allowed[employee.Role(roleStr)]; !ok {
				response.HandleError(w, auth.ErrInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
