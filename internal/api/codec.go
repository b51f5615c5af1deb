// ABOUTME: JSON wire codec registered with gRPC under the "json" content-subtype
// ABOUTME: Lets plain HTTP/2 tooling talk to the bulletin services alongside the default protobuf codec

package api

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype served by Codec
// (content-type "application/grpc+json").
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

var (
	marshalOptions   = protojson.MarshalOptions{UseProtoNames: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Codec encodes protobuf messages as JSON with snake_case field names.
type Codec struct{}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("json codec: %T is not a proto.Message", v)
	}
	return marshalOptions.Marshal(m)
}

// Unmarshal implements encoding.Codec. An empty payload decodes to the zero message.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("json codec: %T is not a proto.Message", v)
	}
	if len(data) == 0 {
		proto.Reset(m)
		return nil
	}
	return unmarshalOptions.Unmarshal(data, m)
}

// Name implements encoding.Codec.
func (Codec) Name() string {
	return CodecName
}
