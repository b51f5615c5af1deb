// Package api carries the JSON encoding of the bulletin.v1 services.
//
// The services and messages are defined in proto/bulletin/bulletin.proto and
// generated into package bulletin. By default grpc-go speaks protobuf, so any
// generated client in any language can call the gateway directly.
//
// # JSON
//
// Importing this package registers Codec with grpc-go under the "json"
// content-subtype. Requests sent with content-type application/grpc+json
// are decoded with protojson and answered in the same encoding, using the
// snake_case field names of the .proto file:
//
//	conn.Invoke(ctx, pb.NewsService_GetNews_FullMethodName, req, out,
//	    grpc.CallContentSubtype(api.CodecName))
//
// Enum values are written by name ("NEWS_STATUS_DRAFT") and accepted by name
// or number. google.protobuf.Empty is encoded as {}.
//
// # Errors
//
//   - codes.NotFound: the addressed id does not exist
//   - codes.InvalidArgument: PatchUser without a user message
package api
