// ABOUTME: bulletin-admin posts subcommands
// ABOUTME: list (optionally by user), get, create, update and delete against PostService

package cli

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

type postFlags struct {
	userID int64
	title  string
	body   string
}

func (f *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.userID, "user", 0, "author user id")
	cmd.Flags().StringVar(&f.title, "title", "", "post title")
	cmd.Flags().StringVar(&f.body, "body", "", "post body")
}

func (f *postFlags) build(postID int64) *pb.Post {
	return &pb.Post{Id: postID, UserId: f.userID, Title: f.title, Body: f.body}
}

// NewPostsCommand creates the posts command group.
func NewPostsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}

	var listUser int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally only those of one user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withPosts(cmd, func(ctx context.Context, c pb.PostServiceClient) error {
				out, err := c.ListPosts(ctx, &pb.PostFilter{UserId: listUser})
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).posts(out.GetPosts()...)
			})
		},
	}
	list.Flags().Int64Var(&listUser, "user", 0, "only posts by this user id")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				postID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withPosts(cmd, func(ctx context.Context, c pb.PostServiceClient) error {
					p, err := c.GetPost(ctx, &pb.PostID{Id: postID})
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).posts(p)
				})
			},
		},
		newPostWriteCommand(opts, "create", "Create a post"),
		newPostWriteCommand(opts, "update", "Replace a post; omitted fields become empty"),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				postID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withPosts(cmd, func(ctx context.Context, c pb.PostServiceClient) error {
					if _, err := c.DeletePost(ctx, &pb.PostID{Id: postID}); err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).deleted("post", postID)
				})
			},
		},
	)

	return cmd
}

// newPostWriteCommand builds "create" (no id argument) or "update <id>".
func newPostWriteCommand(opts *RootOptions, name, short string) *cobra.Command {
	flags := &postFlags{}
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var postID int64
			if name == "update" {
				v, err := parseID(args[0])
				if err != nil {
					return err
				}
				postID = v
			}
			return opts.withPosts(cmd, func(ctx context.Context, c pb.PostServiceClient) error {
				var (
					p   *pb.Post
					err error
				)
				if name == "update" {
					p, err = c.UpdatePost(ctx, flags.build(postID))
				} else {
					p, err = c.CreatePost(ctx, flags.build(0))
				}
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).posts(p)
			})
		},
	}
	if name == "update" {
		cmd.Use = "update <id>"
		cmd.Args = cobra.ExactArgs(1)
	}
	flags.register(cmd)
	return cmd
}

func (o *RootOptions) withPosts(cmd *cobra.Command, fn func(context.Context, pb.PostServiceClient) error) error {
	return o.withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
		return fn(ctx, pb.NewPostServiceClient(conn))
	})
}
