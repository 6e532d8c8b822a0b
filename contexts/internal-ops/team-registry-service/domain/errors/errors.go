package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrTeamNotFound   = errors.New("team not found")
)
