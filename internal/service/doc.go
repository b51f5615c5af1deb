// Package service implements the bulletin gRPC services on top of the store.
//
// Every handler translates its request into exactly one store, query or
// merge operation and maps the outcome onto a gRPC status:
//
//   - store.ErrNotFound -> codes.NotFound
//   - PatchUser without a user message -> codes.InvalidArgument
//   - context.Canceled / context.DeadlineExceeded -> codes.Canceled / codes.DeadlineExceeded
//   - anything else -> codes.Internal, with the cause logged under the request id
//
// Create methods ignore any id in the request; the store assigns one.
// Update methods (EditNews, UpdatePost, UpdateUser) replace every field of
// the addressed entity. PatchUser merges only the fields that are set.
package service
