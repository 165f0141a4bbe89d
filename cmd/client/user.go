package client

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type userKeyFlags struct {
	id    int32
	email string
}

func (f *userKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "User id")
	flags.StringVarP(&f.email, "email", "", "", "User email")
	exactlyOne(cmd, "id", "email")
}

func (f *userKeyFlags) request(flags *pflag.FlagSet) *messages.UserRequest {
	if flags.Changed("email") {
		return &messages.UserRequest{IdOrEmail: &messages.UserRequest_Email{Email: f.email}}
	}
	return &messages.UserRequest{IdOrEmail: &messages.UserRequest_Id{Id: f.id}}
}

type userFlags struct {
	id       int32
	email    string
	password string
}

func newUserCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	list := newCallCmd(o, "list", "List every user", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Users.List(ctx, listRequest())
	})

	getKey := &userKeyFlags{}
	get := newCallCmd(o, "get", "Get a user by id or email", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Users.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &userKeyFlags{}
	del := newCallCmd(o, "delete", "Delete a user by id or email", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Users.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	a := &userFlags{}
	add := newCallCmd(o, "add", "Create a user", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Users.Add(ctx, &messages.UserAddRequest{
			Email:    a.email,
			Password: a.password,
		})
	})
	add.Flags().StringVarP(&a.email, "email", "", "", "User email")
	add.Flags().StringVarP(&a.password, "password", "", "", "User password, optional")
	add.MarkFlagRequired("email")

	u := &userFlags{}
	update := newCallCmd(o, "update", "Change the email or password of a user", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Users.Update(ctx, &messages.UserUpdateRequest{
			Id:       u.id,
			Email:    optionalString(flags, "email", u.email),
			Password: optionalString(flags, "password", u.password),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "User id")
	update.Flags().StringVarP(&u.email, "email", "", "", "New email")
	update.Flags().StringVarP(&u.password, "password", "", "", "New password")
	update.MarkFlagRequired("id")

	cmd.AddCommand(list, get, add, update, del)
	return cmd
}
