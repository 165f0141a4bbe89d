package client

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type membershipKeyFlags struct {
	id         int32
	permission int32
	userID     int32
}

func (f *membershipKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "Membership id")
	flags.Int32VarP(&f.permission, "permission", "", 0, "Permission id")
	flags.Int32VarP(&f.userID, "user-id", "", 0, "User id")
	exactlyOne(cmd, "id", "permission", "user-id")
}

func (f *membershipKeyFlags) request(flags *pflag.FlagSet) *messages.PermissionMembershipRequest {
	switch {
	case flags.Changed("permission"):
		return &messages.PermissionMembershipRequest{
			IdPermissionOrUserId: &messages.PermissionMembershipRequest_Permission{Permission: f.permission},
		}
	case flags.Changed("user-id"):
		return &messages.PermissionMembershipRequest{
			IdPermissionOrUserId: &messages.PermissionMembershipRequest_UserId{UserId: f.userID},
		}
	}
	return &messages.PermissionMembershipRequest{
		IdPermissionOrUserId: &messages.PermissionMembershipRequest_Id{Id: f.id},
	}
}

type membershipFlags struct {
	id         int32
	permission int32
	userID     int32
}

func newMembershipCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "membership",
		Aliases: []string{"permission-membership"},
		Short:   "Grant and revoke permissions",
	}

	list := newCallCmd(o, "list", "List every membership", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.List(ctx, listRequest())
	})

	getKey := &membershipKeyFlags{}
	get := newCallCmd(o, "get", "Get memberships by id, permission or user", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &membershipKeyFlags{}
	del := newCallCmd(o, "delete", "Delete memberships by id, permission or user", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	a := &membershipFlags{}
	add := newCallCmd(o, "add", "Grant a permission to a user", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.Add(ctx, &messages.PermissionMembershipAddRequest{
			Permission: a.permission,
			UserId:     a.userID,
		})
	})
	add.Flags().Int32VarP(&a.permission, "permission", "", 0, "Permission id")
	add.Flags().Int32VarP(&a.userID, "user-id", "", 0, "User id")
	add.MarkFlagRequired("permission")
	add.MarkFlagRequired("user-id")

	u := &membershipFlags{}
	update := newCallCmd(o, "update", "Change the permission or user of a membership", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.Update(ctx, &messages.PermissionMembershipUpdateRequest{
			Id:         u.id,
			Permission: optionalInt32(flags, "permission", u.permission),
			UserId:     optionalInt32(flags, "user-id", u.userID),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "Membership id")
	update.Flags().Int32VarP(&u.permission, "permission", "", 0, "New permission id")
	update.Flags().Int32VarP(&u.userID, "user-id", "", 0, "New user id")
	update.MarkFlagRequired("id")

	userKey := &userKeyFlags{}
	permissions := newCallCmd(o, "user-permissions", "List the permissions granted to a user", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.GetUserPermissions(ctx, userKey.request(flags))
	})
	userKey.register(permissions)

	cmd.AddCommand(list, get, add, update, del, permissions)
	return cmd
}
