// Package gateway wires the bulletin entity store to its network surfaces.
//
// # Overview
//
// A Gateway owns one store.Store and two servers:
//
//   - gRPC: NewsService, PostService and UserService from package api,
//     using the JSON codec registered by that package
//   - HTTP: /health, /health/ready and, when enabled, the Prometheus endpoint
//
// # Interceptors
//
// Every unary call passes through LoggingUnaryInterceptor, which takes the
// request id from x-request-id metadata (or generates a UUID), stores it in
// the context, echoes it as a response header and logs the outcome. When
// metrics are enabled the metrics interceptor runs next.
//
// # Lifecycle
//
//	gw, err := gateway.New(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	return gw.Run(ctx) // blocks until ctx is canceled
//
// Run shuts both servers down within shutdown.timeout once ctx is done.
// The store lives only in memory and is discarded with the process.
package gateway
