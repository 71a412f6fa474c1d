package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")

	ErrSeekerProfileNotFound   = errors.New("seeker profile not found")
	ErrEmployerProfileNotFound = errors.New("employer profile not found")
	ErrJobNotFound             = errors.New("job not found")
)
