package client

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type routerKeyFlags struct {
	id    int32
	agent int32
}

func (f *routerKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "Router id")
	flags.Int32VarP(&f.agent, "agent", "", 0, "Id of the agent the routers belong to")
	exactlyOne(cmd, "id", "agent")
}

func (f *routerKeyFlags) request(flags *pflag.FlagSet) *messages.RouterRequest {
	if flags.Changed("agent") {
		return &messages.RouterRequest{IdOrAgent: &messages.RouterRequest_Agent{Agent: f.agent}}
	}
	return &messages.RouterRequest{IdOrAgent: &messages.RouterRequest_Id{Id: f.id}}
}

type routerFlags struct {
	id            int32
	agent         int32
	snmpCommunity string
	sshUsername   string
	sshPassword   string
	connType      string
	routerType    string
}

func (f *routerFlags) register(flags *pflag.FlagSet) {
	flags.Int32VarP(&f.agent, "agent", "", 0, "Id of the agent reaching the router")
	flags.StringVarP(&f.snmpCommunity, "snmp-community", "", "", "SNMP community")
	flags.StringVarP(&f.sshUsername, "ssh-username", "", "", "SSH username")
	flags.StringVarP(&f.sshPassword, "ssh-password", "", "", "SSH password")
	flags.StringVarP(&f.connType, "conn-type", "", "", "Connection type")
	flags.StringVarP(&f.routerType, "router-type", "", "", "Router type")
}

func newRouterCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "router",
		Short: "Manage routers",
	}

	list := newCallCmd(o, "list", "List every router", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Routers.List(ctx, listRequest())
	})

	getKey := &routerKeyFlags{}
	get := newCallCmd(o, "get", "Get routers by id or agent", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Routers.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &routerKeyFlags{}
	del := newCallCmd(o, "delete", "Delete routers by id or agent", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Routers.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	a := &routerFlags{}
	add := newCallCmd(o, "add", "Register a router", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Routers.Add(ctx, &messages.RouterAddRequest{
			Agent:         a.agent,
			SnmpCommunity: optionalString(flags, "snmp-community", a.snmpCommunity),
			SshUsername:   optionalString(flags, "ssh-username", a.sshUsername),
			SshPassword:   optionalString(flags, "ssh-password", a.sshPassword),
			ConnType:      optionalString(flags, "conn-type", a.connType),
			RouterType:    optionalString(flags, "router-type", a.routerType),
		})
	})
	a.register(add.Flags())
	add.MarkFlagRequired("agent")

	u := &routerFlags{}
	update := newCallCmd(o, "update", "Change the given fields of a router", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Routers.Update(ctx, &messages.RouterUpdateRequest{
			Id:            u.id,
			Agent:         optionalInt32(flags, "agent", u.agent),
			SnmpCommunity: optionalString(flags, "snmp-community", u.snmpCommunity),
			SshUsername:   optionalString(flags, "ssh-username", u.sshUsername),
			SshPassword:   optionalString(flags, "ssh-password", u.sshPassword),
			ConnType:      optionalString(flags, "conn-type", u.connType),
			RouterType:    optionalString(flags, "router-type", u.routerType),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "Router id")
	u.register(update.Flags())
	update.MarkFlagRequired("id")

	cmd.AddCommand(list, get, add, update, del)
	return cmd
}
