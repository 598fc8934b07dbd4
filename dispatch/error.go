package dispatch

import "errors"

var (
	ErrNoRequest = errors.New("no request")
)
