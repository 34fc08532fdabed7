package risor

import "errors"

var (
	ErrOutputNil  = errors.New("risor output writer is nil")
	ErrHandlerNil = errors.New("log handler cannot be nil")
	ErrLoggerNil  = errors.New("logger cannot be nil")
)
