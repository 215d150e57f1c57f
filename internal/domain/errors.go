package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyTaken    = errors.New("email already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSessionNotFound      = errors.New("session not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrCannotLikeSelf       = errors.New("cannot like yourself")
	ErrLikeAlreadyExists    = errors.New("already liked")
	ErrMatchNotFound        = errors.New("match not found")
	ErrCannotBlockSelf      = errors.New("cannot block yourself")
	ErrBlockAlreadyExists   = errors.New("already blocked")
	ErrCannotReportSelf     = errors.New("cannot report yourself")
	ErrInvalidReportReason  = errors.New("invalid report reason")
)
