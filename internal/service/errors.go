package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoEndpointName        = errors.New("no endpoint name given")
)
