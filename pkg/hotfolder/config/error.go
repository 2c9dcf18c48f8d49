package config

import "errors"

var (
	ErrTooManyArguments = errors.New("at most three positional arguments are accepted.")
	ErrSameDirectory    = errors.New("watch directory and destination must differ.")
)
