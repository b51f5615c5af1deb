// ABOUTME: PostService gRPC handlers backed by the post collection
// ABOUTME: Posts reference users loosely; user_id is never checked against the user store

package service

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// PostService implements the PostService gRPC service.
type PostService struct {
	pb.UnimplementedPostServiceServer
	posts  *store.Collection[store.Post]
	logger *slog.Logger
}

// NewPostService creates a PostService over the given collection.
func NewPostService(posts *store.Collection[store.Post], logger *slog.Logger) *PostService {
	return &PostService{posts: posts, logger: orDefault(logger)}
}

// ListPosts returns the posts of req.UserId, or all posts when it is zero.
func (s *PostService) ListPosts(ctx context.Context, req *pb.PostFilter) (*pb.PostList, error) {
	items, err := store.PostsByUser(ctx, s.posts, req.GetUserId())
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}

	out := make([]*pb.Post, len(items))
	for i := range items {
		out[i] = toProtoPost(items[i])
	}
	return &pb.PostList{Posts: out}, nil
}

// GetPost returns a single post.
func (s *PostService) GetPost(ctx context.Context, req *pb.PostID) (*pb.Post, error) {
	p, err := s.posts.Get(ctx, req.GetId())
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoPost(p), nil
}

// CreatePost stores a new post under a server-assigned id.
func (s *PostService) CreatePost(ctx context.Context, req *pb.Post) (*pb.Post, error) {
	p, err := s.posts.Create(ctx, fromProtoPost(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoPost(p), nil
}

// UpdatePost replaces the post identified by req.Id.
func (s *PostService) UpdatePost(ctx context.Context, req *pb.Post) (*pb.Post, error) {
	p, err := s.posts.Replace(ctx, req.GetId(), fromProtoPost(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoPost(p), nil
}

// DeletePost removes a post.
func (s *PostService) DeletePost(ctx context.Context, req *pb.PostID) (*emptypb.Empty, error) {
	if err := s.posts.Delete(ctx, req.GetId()); err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return &emptypb.Empty{}, nil
}
