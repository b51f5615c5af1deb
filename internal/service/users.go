// ABOUTME: UserService gRPC handlers backed by the user store
// ABOUTME: Adds PatchUser, a deep partial merge on top of the usual CRUD operations

package service

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// UserService implements the UserService gRPC service.
type UserService struct {
	pb.UnimplementedUserServiceServer
	users  *store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService over the given store.
func NewUserService(users *store.UserStore, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: orDefault(logger)}
}

// ListUsers returns the users listed in req.Ids, or all users when it is empty.
func (s *UserService) ListUsers(ctx context.Context, req *pb.UserFilter) (*pb.UserList, error) {
	items, err := store.UsersByIDs(ctx, s.users, req.GetIds())
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}

	out := make([]*pb.User, len(items))
	for i := range items {
		out[i] = toProtoUser(items[i])
	}
	return &pb.UserList{Users: out}, nil
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, req *pb.UserID) (*pb.User, error) {
	u, err := s.users.Get(ctx, req.GetId())
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoUser(u), nil
}

// CreateUser stores a new user under a server-assigned id.
func (s *UserService) CreateUser(ctx context.Context, req *pb.User) (*pb.User, error) {
	u, err := s.users.Create(ctx, fromProtoUser(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoUser(u), nil
}

// UpdateUser replaces the user identified by req.Id. Address and Company
// absent from the request are removed from the stored user.
func (s *UserService) UpdateUser(ctx context.Context, req *pb.User) (*pb.User, error) {
	u, err := s.users.Replace(ctx, req.GetId(), fromProtoUser(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoUser(u), nil
}

// PatchUser merges req.User into the stored user identified by req.Id.
// Empty text fields leave the stored value unchanged.
func (s *UserService) PatchUser(ctx context.Context, req *pb.PatchUserRequest) (*pb.User, error) {
	if req.GetUser() == nil {
		return nil, status.Error(codes.InvalidArgument, "user required")
	}

	u, err := s.users.Patch(ctx, req.GetId(), fromProtoUser(req.GetUser()))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoUser(u), nil
}

// DeleteUser removes a user. Posts referencing the user are left in place.
func (s *UserService) DeleteUser(ctx context.Context, req *pb.UserID) (*emptypb.Empty, error) {
	if err := s.users.Delete(ctx, req.GetId()); err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return &emptypb.Empty{}, nil
}
