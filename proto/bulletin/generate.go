// Package bulletin holds the generated protobuf messages and gRPC stubs for
// the bulletin.v1 services defined in bulletin.proto.
package bulletin

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative bulletin.proto
