// ABOUTME: Tests for the JSON gRPC codec
// ABOUTME: Checks wire field names, enum encoding, empty payloads and registration

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_UserWireFormat(t *testing.T) {
	data, err := Codec{}.Marshal(&pb.PatchUserRequest{
		Id: 1,
		User: &pb.User{
			Address: &pb.Address{Geo: &pb.Geo{Lat: "10"}},
			Company: &pb.Company{CatchPhrase: "x"},
		},
	})
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"catch_phrase":"x"`)
	assert.Contains(t, s, `"geo":{"lat":"10"}`)

	var back pb.PatchUserRequest
	require.NoError(t, Codec{}.Unmarshal(data, &back))
	assert.Equal(t, "10", back.GetUser().GetAddress().GetGeo().GetLat())
	assert.Equal(t, "x", back.GetUser().GetCompany().GetCatchPhrase())
}

func TestCodec_MissingUserStaysNil(t *testing.T) {
	var req pb.PatchUserRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"id":3}`), &req))

	assert.Equal(t, int64(3), req.GetId())
	assert.Nil(t, req.GetUser())
}

func TestCodec_NewsStatusByName(t *testing.T) {
	data, err := Codec{}.Marshal(&pb.News{Id: 2, Status: pb.NewsStatus_NEWS_STATUS_ARCHIVED})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"NEWS_STATUS_ARCHIVED"`)

	var n pb.News
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"id":2,"status":1,"extra":true}`), &n))
	assert.Equal(t, pb.NewsStatus_NEWS_STATUS_DRAFT, n.GetStatus())
}

func TestCodec_Empty(t *testing.T) {
	data, err := Codec{}.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	var e emptypb.Empty
	require.NoError(t, Codec{}.Unmarshal(data, &e))
	require.NoError(t, Codec{}.Unmarshal(nil, &e), "an empty payload is the zero message")
}

func TestCodec_MultipleNewsID(t *testing.T) {
	var req pb.MultipleNewsID
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"ids":[{"id":1},{"id":4}]}`), &req))

	require.Len(t, req.GetIds(), 2)
	assert.Equal(t, int64(4), req.GetIds()[1].GetId())
}

func TestCodec_RejectsNonProto(t *testing.T) {
	_, err := Codec{}.Marshal(struct{ ID int }{1})
	assert.Error(t, err)
	assert.Error(t, Codec{}.Unmarshal([]byte(`{}`), &struct{}{}))
}
