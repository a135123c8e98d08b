package server

import "errors"

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to listen")
	ErrShutdown             = errors.New("HTTP shutdown error")
)
