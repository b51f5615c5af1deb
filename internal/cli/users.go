// ABOUTME: bulletin-admin users subcommands
// ABOUTME: Full replacement via update and deep partial merge via patch against UserService

package cli

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// userFlags mirrors every user field, including the nested address and company.
type userFlags struct {
	name, username, email, phone, website string

	street, suite, city, zipcode string
	lat, lng                     string

	company, catchPhrase, bs string
}

var (
	addressFlags = []string{"street", "suite", "city", "zipcode", "lat", "lng"}
	geoFlags     = []string{"lat", "lng"}
	companyFlags = []string{"company", "catch-phrase", "bs"}
)

func (f *userFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "full name")
	fs.StringVar(&f.username, "username", "", "username")
	fs.StringVar(&f.email, "email", "", "email address")
	fs.StringVar(&f.phone, "phone", "", "phone number")
	fs.StringVar(&f.website, "website", "", "website")
	fs.StringVar(&f.street, "street", "", "address street")
	fs.StringVar(&f.suite, "suite", "", "address suite")
	fs.StringVar(&f.city, "city", "", "address city")
	fs.StringVar(&f.zipcode, "zipcode", "", "address zipcode")
	fs.StringVar(&f.lat, "lat", "", "address latitude")
	fs.StringVar(&f.lng, "lng", "", "address longitude")
	fs.StringVar(&f.company, "company", "", "company name")
	fs.StringVar(&f.catchPhrase, "catch-phrase", "", "company catch phrase")
	fs.StringVar(&f.bs, "bs", "", "company bs")
}

// build assembles a user. Nested records are only attached when one of
// their flags was given, so a patch without address flags leaves the
// stored address alone.
func (f *userFlags) build(cmd *cobra.Command, userID int64) *pb.User {
	u := &pb.User{
		Id:       userID,
		Name:     f.name,
		Username: f.username,
		Email:    f.email,
		Phone:    f.phone,
		Website:  f.website,
	}
	if anyChanged(cmd, addressFlags) {
		u.Address = &pb.Address{Street: f.street, Suite: f.suite, City: f.city, Zipcode: f.zipcode}
		if anyChanged(cmd, geoFlags) {
			u.Address.Geo = &pb.Geo{Lat: f.lat, Lng: f.lng}
		}
	}
	if anyChanged(cmd, companyFlags) {
		u.Company = &pb.Company{Name: f.company, CatchPhrase: f.catchPhrase, Bs: f.bs}
	}
	return u
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// NewUsersCommand creates the users command group.
func NewUsersCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [id...]",
			Short: "List users, optionally only the given ids",
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
					out, err := c.ListUsers(ctx, &pb.UserFilter{Ids: ids})
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).users(out.GetUsers()...)
				})
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				userID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
					u, err := c.GetUser(ctx, &pb.UserID{Id: userID})
					if err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).users(u)
				})
			},
		},
		newUserCreateCommand(opts),
		newUserUpdateCommand(opts),
		newUserPatchCommand(opts),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a user; their posts are kept",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				userID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
					if _, err := c.DeleteUser(ctx, &pb.UserID{Id: userID}); err != nil {
						return err
					}
					return newPrinter(cmd.OutOrStdout(), opts).deleted("user", userID)
				})
			},
		},
	)

	return cmd
}

func newUserCreateCommand(opts *RootOptions) *cobra.Command {
	flags := &userFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := flags.build(cmd, 0)
			return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
				created, err := c.CreateUser(ctx, u)
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).users(created)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUserUpdateCommand(opts *RootOptions) *cobra.Command {
	flags := &userFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a user; omitted fields and records are cleared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			u := flags.build(cmd, userID)
			return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
				updated, err := c.UpdateUser(ctx, u)
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).users(updated)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUserPatchCommand(opts *RootOptions) *cobra.Command {
	flags := &userFlags{}
	cmd := &cobra.Command{
		Use:   "patch <id>",
		Short: "Merge the given fields into a user; empty values are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &pb.PatchUserRequest{Id: userID, User: flags.build(cmd, 0)}
			return opts.withUsers(cmd, func(ctx context.Context, c pb.UserServiceClient) error {
				patched, err := c.PatchUser(ctx, req)
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts).users(patched)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func (o *RootOptions) withUsers(cmd *cobra.Command, fn func(context.Context, pb.UserServiceClient) error) error {
	return o.withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
		return fn(ctx, pb.NewUserServiceClient(conn))
	})
}
