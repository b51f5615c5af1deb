// ABOUTME: Tests for the News, Post and User gRPC handlers
// ABOUTME: Calls handlers directly and checks results, status codes and error logging

package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// createTestStore creates a store with the default seed and one user
func createTestStore(t *testing.T) *store.Store {
	t.Helper()

	seed := store.DefaultSeed()
	seed.Users = []store.User{{
		ID:   1,
		Name: "Leanne Graham",
		Address: &store.Address{
			Street: "X",
			Geo:    &store.Geo{Lat: "1", Lng: "2"},
		},
	}}
	seed.Posts = []store.Post{
		{ID: 1, UserID: 1, Title: "first"},
		{ID: 2, UserID: 2, Title: "second"},
	}

	s, err := store.New(store.Options{Seed: seed})
	require.NoError(t, err)
	return s
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error, got %v", err)
	assert.Equal(t, want, st.Code())
}

func assertProto(t *testing.T, want, got proto.Message, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
		if len(msgAndArgs) > 0 {
			t.Log(msgAndArgs...)
		}
	}
}

func TestNewsService_GetAllNews(t *testing.T) {
	svc := NewNewsService(createTestStore(t).News, nil)

	resp, err := svc.GetAllNews(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, resp.GetNews(), 5)
	assertProto(t, &pb.News{Id: 1, Title: "Note 1", Body: "Content 1", PostImage: "Post image 1"}, resp.GetNews()[0])
}

func TestNewsService_GetNews_NotFound(t *testing.T) {
	svc := NewNewsService(createTestStore(t).News, nil)

	_, err := svc.GetNews(context.Background(), &pb.NewsID{Id: 42})
	requireCode(t, err, codes.NotFound)
}

func TestNewsService_GetMultipleNews(t *testing.T) {
	svc := NewNewsService(createTestStore(t).News, nil)
	ctx := context.Background()

	resp, err := svc.GetMultipleNews(ctx, &pb.MultipleNewsID{Ids: []*pb.NewsID{{Id: 5}, {Id: 1}, nil}})
	require.NoError(t, err)
	require.Len(t, resp.GetNews(), 2)
	assert.Equal(t, int64(1), resp.GetNews()[0].GetId())
	assert.Equal(t, int64(5), resp.GetNews()[1].GetId())

	resp, err = svc.GetMultipleNews(ctx, &pb.MultipleNewsID{})
	require.NoError(t, err)
	assert.Len(t, resp.GetNews(), 5, "no ids means every news item")
}

func TestNewsService_AddEditDelete(t *testing.T) {
	svc := NewNewsService(createTestStore(t).News, nil)
	ctx := context.Background()

	added, err := svc.AddNews(ctx, &pb.News{Id: 100, Title: "Note 6", Status: pb.NewsStatus_NEWS_STATUS_PUBLISHED})
	require.NoError(t, err)
	assert.Equal(t, int64(6), added.GetId())
	assert.Equal(t, pb.NewsStatus_NEWS_STATUS_PUBLISHED, added.GetStatus())

	edited, err := svc.EditNews(ctx, &pb.News{Id: 6, Title: "Edited"})
	require.NoError(t, err)
	assertProto(t, &pb.News{Id: 6, Title: "Edited"}, edited)

	_, err = svc.DeleteNews(ctx, &pb.NewsID{Id: 6})
	require.NoError(t, err)

	_, err = svc.DeleteNews(ctx, &pb.NewsID{Id: 6})
	requireCode(t, err, codes.NotFound)

	_, err = svc.EditNews(ctx, &pb.News{Id: 6, Title: "gone"})
	requireCode(t, err, codes.NotFound)
}

func TestNewsService_CanceledContext(t *testing.T) {
	s := createTestStore(t)
	svc := NewNewsService(s.News, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AddNews(ctx, &pb.News{Title: "never"})
	requireCode(t, err, codes.Canceled)
	assert.Equal(t, 5, s.News.Len())
}

func TestPostService_ListPosts(t *testing.T) {
	svc := NewPostService(createTestStore(t).Posts, nil)
	ctx := context.Background()

	resp, err := svc.ListPosts(ctx, &pb.PostFilter{UserId: 1})
	require.NoError(t, err)
	require.Len(t, resp.GetPosts(), 1)
	assert.Equal(t, "first", resp.GetPosts()[0].GetTitle())

	resp, err = svc.ListPosts(ctx, &pb.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, resp.GetPosts(), 2)
}

func TestPostService_CRUD(t *testing.T) {
	svc := NewPostService(createTestStore(t).Posts, nil)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &pb.Post{UserId: 9, Title: "t", Body: "b"})
	require.NoError(t, err)
	assertProto(t, &pb.Post{Id: 3, UserId: 9, Title: "t", Body: "b"}, created)

	got, err := svc.GetPost(ctx, &pb.PostID{Id: 3})
	require.NoError(t, err)
	assertProto(t, created, got)

	updated, err := svc.UpdatePost(ctx, &pb.Post{Id: 3, UserId: 1, Title: "t2"})
	require.NoError(t, err)
	assertProto(t, &pb.Post{Id: 3, UserId: 1, Title: "t2"}, updated)

	_, err = svc.DeletePost(ctx, &pb.PostID{Id: 3})
	require.NoError(t, err)

	_, err = svc.GetPost(ctx, &pb.PostID{Id: 3})
	requireCode(t, err, codes.NotFound)
}

func TestUserService_PatchUser(t *testing.T) {
	svc := NewUserService(createTestStore(t).Users, nil)
	ctx := context.Background()

	got, err := svc.PatchUser(ctx, &pb.PatchUserRequest{
		Id:   1,
		User: &pb.User{Address: &pb.Address{Geo: &pb.Geo{Lat: "10"}}},
	})
	require.NoError(t, err)

	want := &pb.User{
		Id:      1,
		Name:    "Leanne Graham",
		Address: &pb.Address{Street: "X", Geo: &pb.Geo{Lat: "10", Lng: "2"}},
	}
	assertProto(t, want, got)
}

func TestUserService_PatchUser_MissingUser(t *testing.T) {
	s := createTestStore(t)
	svc := NewUserService(s.Users, nil)

	_, err := svc.PatchUser(context.Background(), &pb.PatchUserRequest{Id: 1})
	requireCode(t, err, codes.InvalidArgument)
}

func TestUserService_PatchUser_NotFound(t *testing.T) {
	svc := NewUserService(createTestStore(t).Users, nil)

	_, err := svc.PatchUser(context.Background(), &pb.PatchUserRequest{Id: 7, User: &pb.User{Name: "x"}})
	requireCode(t, err, codes.NotFound)
}

func TestUserService_CreateListUpdateDelete(t *testing.T) {
	svc := NewUserService(createTestStore(t).Users, nil)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &pb.User{Id: 50, Name: "B", Company: &pb.Company{Name: "Acme"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.GetId())
	assertProto(t, &pb.Company{Name: "Acme"}, created.GetCompany())

	list, err := svc.ListUsers(ctx, &pb.UserFilter{})
	require.NoError(t, err)
	require.Len(t, list.GetUsers(), 2)
	assert.Equal(t, "Leanne Graham", list.GetUsers()[0].GetName())
	assert.Equal(t, "B", list.GetUsers()[1].GetName())

	list, err = svc.ListUsers(ctx, &pb.UserFilter{Ids: []int64{2}})
	require.NoError(t, err)
	require.Len(t, list.GetUsers(), 1)

	replaced, err := svc.UpdateUser(ctx, &pb.User{Id: 1, Name: "Replaced"})
	require.NoError(t, err)
	assertProto(t, &pb.User{Id: 1, Name: "Replaced"}, replaced, "full replace drops the address")

	_, err = svc.DeleteUser(ctx, &pb.UserID{Id: 1})
	require.NoError(t, err)

	_, err = svc.GetUser(ctx, &pb.UserID{Id: 1})
	requireCode(t, err, codes.NotFound)
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}

func TestFail_InternalErrorLoggedWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithRequestID(context.Background(), "req-42")

	err := fail(ctx, logger, errors.New("disk on fire"))
	requireCode(t, err, codes.Internal)
	assert.NotContains(t, err.Error(), "disk on fire", "the cause stays server-side")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, `error="disk on fire"`)
}

func TestFail_ExpectedErrorsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithRequestID(context.Background(), "req-43")

	requireCode(t, fail(ctx, logger, store.ErrNotFound), codes.NotFound)
	requireCode(t, fail(ctx, logger, context.Canceled), codes.Canceled)
	requireCode(t, fail(ctx, logger, context.DeadlineExceeded), codes.DeadlineExceeded)
	assert.Empty(t, buf.String())
}
