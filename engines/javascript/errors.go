package javascript

import "errors"

var (
	ErrOutputNil  = errors.New("javascript output writer is nil")
	ErrHandlerNil = errors.New("log handler cannot be nil")
	ErrLoggerNil  = errors.New("logger cannot be nil")
)
