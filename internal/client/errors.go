package client

import "errors"

var (
	ErrInvalidPairs = errors.New("arguments must be key=value")
	ErrBatchFailed  = errors.New("some batch jobs failed")
)
