package shell

import "errors"

var (
	ErrEngineNil   = errors.New("engine cannot be nil")
	ErrInputNil    = errors.New("input reader cannot be nil")
	ErrOutputNil   = errors.New("output writer cannot be nil")
	ErrReaderNil   = errors.New("line reader cannot be nil")
	ErrHandlerNil  = errors.New("log handler cannot be nil")
	ErrLoggerNil   = errors.New("logger cannot be nil")
	ErrSourceID    = errors.New("source id cannot be empty")
	ErrReadFailed  = errors.New("failed to read input")
	ErrWriteFailed = errors.New("failed to write output")
	ErrLoadFailed  = errors.New("failed to load script")
)
