// ABOUTME: Maps store and context errors onto gRPC status codes
// ABOUTME: NotFound, Canceled and DeadlineExceeded pass through; everything else is Internal

package service

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/2389/bulletin-gateway/internal/store"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// fail converts err with toStatus. Callers only see "internal error" for
// codes.Internal, so the cause is logged here under the request id.
func fail(ctx context.Context, logger *slog.Logger, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		logger.ErrorContext(ctx, "store operation failed",
			"request_id", RequestIDFromContext(ctx),
			"error", err,
		)
	}
	return st
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
