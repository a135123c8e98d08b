// Package server wraps http.Server with graceful shutdown, configurable
// timeouts and structured logging.
//
// Run returns a function suitable for errgroup, which starts the server and
// shuts it down gracefully once the context is canceled:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// The listener is opened inside Start, so Addr reports the real address when
// the configured one uses port 0.
package server
