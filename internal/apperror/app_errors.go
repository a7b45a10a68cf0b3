package apperror

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidGameID = errors.New("invalid game id")
)
