package auth

import "errors"

var (
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrTokenExpired      = errors.New("token expired")
	ErrInsufficientRole  = errors.New("insufficient role for this resource")
	ErrMissingCompany    = errors.New("token is not bound to a company")
	ErrUnsupportedClaims = errors.New("token claims are malformed")
)
