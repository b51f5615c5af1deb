// ABOUTME: NewsService gRPC handlers backed by the news collection
// ABOUTME: Each handler performs exactly one store operation and maps its outcome to a status

package service

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// NewsService implements the NewsService gRPC service.
type NewsService struct {
	pb.UnimplementedNewsServiceServer
	news   *store.Collection[store.News]
	logger *slog.Logger
}

// NewNewsService creates a NewsService over the given collection. A nil
// logger uses slog.Default().
func NewNewsService(news *store.Collection[store.News], logger *slog.Logger) *NewsService {
	return &NewsService{news: news, logger: orDefault(logger)}
}

// GetAllNews returns every news item in insertion order.
func (s *NewsService) GetAllNews(ctx context.Context, _ *emptypb.Empty) (*pb.NewsList, error) {
	items, err := s.news.List(ctx)
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoNewsList(items), nil
}

// GetNews returns a single news item.
func (s *NewsService) GetNews(ctx context.Context, req *pb.NewsID) (*pb.News, error) {
	n, err := s.news.Get(ctx, req.GetId())
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoNews(n), nil
}

// GetMultipleNews returns the news items whose ids are listed. An empty id
// list returns all news.
func (s *NewsService) GetMultipleNews(ctx context.Context, req *pb.MultipleNewsID) (*pb.NewsList, error) {
	ids := make([]int64, 0, len(req.GetIds()))
	for _, id := range req.GetIds() {
		if id != nil {
			ids = append(ids, id.GetId())
		}
	}

	items, err := store.NewsByIDs(ctx, s.news, ids)
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoNewsList(items), nil
}

// AddNews stores a new news item under a server-assigned id.
func (s *NewsService) AddNews(ctx context.Context, req *pb.News) (*pb.News, error) {
	n, err := s.news.Create(ctx, fromProtoNews(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoNews(n), nil
}

// EditNews replaces the news item identified by req.Id.
func (s *NewsService) EditNews(ctx context.Context, req *pb.News) (*pb.News, error) {
	n, err := s.news.Replace(ctx, req.GetId(), fromProtoNews(req))
	if err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return toProtoNews(n), nil
}

// DeleteNews removes a news item.
func (s *NewsService) DeleteNews(ctx context.Context, req *pb.NewsID) (*emptypb.Empty, error) {
	if err := s.news.Delete(ctx, req.GetId()); err != nil {
		return nil, fail(ctx, s.logger, err)
	}
	return &emptypb.Empty{}, nil
}
