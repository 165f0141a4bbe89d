package client

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type permissionKeyFlags struct {
	id   int32
	name string
}

func (f *permissionKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "Permission id")
	flags.StringVarP(&f.name, "name", "", "", "Permission name")
	exactlyOne(cmd, "id", "name")
}

func (f *permissionKeyFlags) request(flags *pflag.FlagSet) *messages.PermissionRequest {
	if flags.Changed("name") {
		return &messages.PermissionRequest{IdOrName: &messages.PermissionRequest_Name{Name: f.name}}
	}
	return &messages.PermissionRequest{IdOrName: &messages.PermissionRequest_Id{Id: f.id}}
}

type permissionFlags struct {
	id          int32
	name        string
	description string
}

func newPermissionCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission",
		Short: "Manage permissions",
	}

	list := newCallCmd(o, "list", "List every permission", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Permissions.List(ctx, listRequest())
	})

	getKey := &permissionKeyFlags{}
	get := newCallCmd(o, "get", "Get a permission by id or name", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Permissions.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &permissionKeyFlags{}
	del := newCallCmd(o, "delete", "Delete a permission by id or name", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Permissions.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	membersKey := &permissionKeyFlags{}
	members := newCallCmd(o, "members", "List the users holding a permission", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Memberships.GetPermissionMembers(ctx, membersKey.request(flags))
	})
	membersKey.register(members)

	a := &permissionFlags{}
	add := newCallCmd(o, "add", "Create a permission", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Permissions.Add(ctx, &messages.PermissionAddRequest{
			Name:        a.name,
			Description: a.description,
		})
	})
	add.Flags().StringVarP(&a.name, "name", "", "", "Permission name")
	add.Flags().StringVarP(&a.description, "description", "", "", "Permission description")
	add.MarkFlagRequired("name")
	add.MarkFlagRequired("description")

	u := &permissionFlags{}
	update := newCallCmd(o, "update", "Change the name or description of a permission", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Permissions.Update(ctx, &messages.PermissionUpdateRequest{
			Id:          u.id,
			Name:        optionalString(flags, "name", u.name),
			Description: optionalString(flags, "description", u.description),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "Permission id")
	update.Flags().StringVarP(&u.name, "name", "", "", "New name")
	update.Flags().StringVarP(&u.description, "description", "", "", "New description")
	update.MarkFlagRequired("id")

	cmd.AddCommand(list, get, add, update, del, members)
	return cmd
}
