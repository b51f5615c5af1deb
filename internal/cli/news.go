// ABOUTME: bulletin-admin news subcommands
// ABOUTME: list, get, get-many, add, edit and delete against NewsService

package cli

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// newsFlags holds the editable fields of a news item.
type newsFlags struct {
	title  string
	body   string
	image  string
	status string
}

func (f *newsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "news title")
	cmd.Flags().StringVar(&f.body, "body", "", "news body")
	cmd.Flags().StringVar(&f.image, "image", "", "post image reference")
	cmd.Flags().StringVar(&f.status, "status", "", "status (draft|published|archived)")
}

func (f *newsFlags) build(newsID int64) (*pb.News, error) {
	status, err := store.ParseNewsStatus(f.status)
	if err != nil {
		return nil, err
	}
	return &pb.News{
		Id:        newsID,
		Title:     f.title,
		Body:      f.body,
		PostImage: f.image,
		Status:    pb.NewsStatus(status),
	}, nil
}

// NewNewsCommand creates the news command group.
func NewNewsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage news items",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all news items",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
					list, err := c.GetAllNews(ctx, &emptypb.Empty{})
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).news(list.GetNews()...)
				})
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one news item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				newsID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
					n, err := c.GetNews(ctx, &pb.NewsID{Id: newsID})
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).news(n)
				})
			},
		},
		&cobra.Command{
			Use:   "get-many <id>...",
			Short: "Show several news items; unknown ids are skipped",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				req := &pb.MultipleNewsID{Ids: make([]*pb.NewsID, len(ids))}
				for i, v := range ids {
					req.Ids[i] = &pb.NewsID{Id: v}
				}
				return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
					list, err := c.GetMultipleNews(ctx, req)
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).news(list.GetNews()...)
				})
			},
		},
		newNewsAddCommand(opts),
		newNewsEditCommand(opts),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a news item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				newsID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
					if _, err := c.DeleteNews(ctx, &pb.NewsID{Id: newsID}); err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).deleted("news", newsID)
				})
			},
		},
	)

	return cmd
}

func newNewsAddCommand(opts *RootOptions) *cobra.Command {
	flags := &newsFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a news item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := flags.build(0)
			if err != nil {
				return err
			}
			return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
				created, err := c.AddNews(ctx, n)
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).news(created)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newNewsEditCommand(opts *RootOptions) *cobra.Command {
	flags := &newsFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a news item; omitted fields become empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newsID, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := flags.build(newsID)
			if err != nil {
				return err
			}
			return opts.withNews(cmd, func(ctx context.Context, c pb.NewsServiceClient) error {
				edited, err := c.EditNews(ctx, n)
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).news(edited)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func (o *RootOptions) withNews(cmd *cobra.Command, fn func(context.Context, pb.NewsServiceClient) error) error {
	return o.withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
		return fn(ctx, pb.NewNewsServiceClient(conn))
	})
}
