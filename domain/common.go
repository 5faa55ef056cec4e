package domain

import (
	"errors"
)

const (
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest  = "failed to process request"
	MessageFailedTokenInvalid = "invalid or expired token"
	MessageRouteNotFound      = "route not found"
	MessageInternalError      = "something went wrong"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)
