package server

import "time"

const (
	// DefaultAddr is the loopback address the service listens on by default.
	DefaultAddr = "127.0.0.1:8090"

	// DefaultReadTimeout is the default timeout for reading the request.
	DefaultReadTimeout = 5 * time.Minute

	// DefaultReadHeaderTimeout is the default timeout for reading request headers.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout is the default timeout for writing the response.
	DefaultWriteTimeout = 5 * time.Minute

	// DefaultIdleTimeout is the default timeout for idle connections.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes is the default maximum size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
