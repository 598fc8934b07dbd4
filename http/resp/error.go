package resp

import "errors"

var (
	ErrInvalid = errors.New("invalid")
)
