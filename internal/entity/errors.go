package entity

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrCallRecordNotFound = errors.New("call record not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
