package middleware

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token bound to a company.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if errors.Is(err, jwtauth.ErrExpired) {
				response.HandleError(w, auth.ErrTokenExpired)
				return
			}
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok {
				response.HandleError(w, auth.ErrUnsupportedClaims)
				return
			}
			if tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			companyID, ok := claims["company_id"].(string)
			if !ok || companyID == "" {
				response.HandleError(w, auth.ErrMissingCompany)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
