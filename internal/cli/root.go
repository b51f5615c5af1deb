// ABOUTME: Root cobra command for bulletin-admin with connection and output flags
// ABOUTME: Subcommands talk to a running gateway through the generated gRPC clients

package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Addr    string
	Format  string // "json" | "text"
	Timeout time.Duration
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// defaultAddr returns BULLETIN_GATEWAY_GRPC or the local default.
func defaultAddr() string {
	if addr := os.Getenv("BULLETIN_GATEWAY_GRPC"); addr != "" {
		return addr
	}
	return "localhost:50051"
}

// NewRootCommand creates the root command for the bulletin-admin CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bulletin-admin",
		Short: "Manage news, posts and users on a bulletin gateway",
		Long: `bulletin-admin reads and edits the entities held by a running
bulletin-gateway over gRPC.

Environment:
  BULLETIN_GATEWAY_GRPC   default for --addr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", defaultAddr(), "gateway gRPC address")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per-call timeout")

	cmd.AddCommand(NewNewsCommand(opts))
	cmd.AddCommand(NewPostsCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))

	return cmd
}

// connect opens a client connection to the gateway.
func (o *RootOptions) connect() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(o.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", o.Addr, err)
	}
	return conn, nil
}

// callContext bounds a single RPC by the --timeout flag.
func (o *RootOptions) callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, o.Timeout)
}

// withConn runs fn with a fresh connection and call context.
func (o *RootOptions) withConn(cmd *cobra.Command, fn func(ctx context.Context, conn *grpc.ClientConn) error) error {
	conn, err := o.connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := o.callContext(cmd)
	defer cancel()
	return fn(ctx, conn)
}
