// ABOUTME: Unary interceptor that tags every call with a request id and logs its outcome
// ABOUTME: Request ids come from x-request-id metadata or a fresh UUID and are echoed in response headers

package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/2389/bulletin-gateway/internal/service"
)

// RequestIDHeader is the metadata key carrying the request id in both directions.
const RequestIDHeader = "x-request-id"

// incomingRequestID returns the caller-supplied request id or a new UUID.
func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(RequestIDHeader); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.New().String()
}

// LoggingUnaryInterceptor assigns a request id to each call and logs method,
// status code and duration once the handler returns.
func LoggingUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = service.WithRequestID(ctx, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start),
			"request_id", requestID,
		}
		switch code {
		case codes.OK:
			logger.Debug("request handled", attrs...)
		case codes.Internal, codes.Unknown:
			logger.Error("request failed", append(attrs, "error", err)...)
		default:
			logger.Info("request rejected", append(attrs, "error", err)...)
		}
		return resp, err
	}
}
