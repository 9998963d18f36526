package config

import "errors"

var (
	ErrEnvFile = errors.New("config: cannot read env file")
	ErrParse   = errors.New("config: cannot parse environment")
)
