package domain

import "github.com/go-faster/errors"

// Error kinds shared by the services and translated to HTTP statuses by the api package.
var (
	ErrNotFound   = errors.New("not found")   // 404
	ErrBadRequest = errors.New("bad request") // 400
)
