package client

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type tunnelKeyFlags struct {
	id     int32
	router int32
}

func (f *tunnelKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "Tunnel id")
	flags.Int32VarP(&f.router, "router", "", 0, "Id of the router the tunnels are configured on")
	exactlyOne(cmd, "id", "router")
}

func (f *tunnelKeyFlags) request(flags *pflag.FlagSet) *messages.TunnelRequest {
	if flags.Changed("router") {
		return &messages.TunnelRequest{IdOrRouter: &messages.TunnelRequest_Router{Router: f.router}}
	}
	return &messages.TunnelRequest{IdOrRouter: &messages.TunnelRequest_Id{Id: f.id}}
}

type tunnelFlags struct {
	id           int32
	version      int32
	router       int32
	ip           string
	dynamicIP    bool
	ipClass      int32
	hostname     string
	description  string
	source       string
	cost         int32
	tunnelType   string
	topologyType string
}

func (f *tunnelFlags) register(flags *pflag.FlagSet) {
	flags.Int32VarP(&f.version, "version", "", 0, "Tunnel version")
	flags.Int32VarP(&f.router, "router", "", 0, "Id of the router")
	flags.StringVarP(&f.ip, "ip", "", "", "Tunnel address")
	flags.BoolVarP(&f.dynamicIP, "dynamic-ip", "", false, "Whether the address is dynamic")
	flags.Int32VarP(&f.ipClass, "ip-class", "", 0, "Prefix length of the address")
	flags.StringVarP(&f.hostname, "hostname", "", "", "Remote hostname")
	flags.StringVarP(&f.description, "description", "", "", "Tunnel description")
	flags.StringVarP(&f.source, "source", "", "", "Source interface or address")
	flags.Int32VarP(&f.cost, "cost", "", 0, "Routing cost")
	flags.StringVarP(&f.tunnelType, "tunnel-type", "", "", "Tunnel type")
	flags.StringVarP(&f.topologyType, "topology-type", "", "", "Topology type")
}

func newTunnelCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tunnel",
		Short: "Manage tunnels",
	}

	list := newCallCmd(o, "list", "List every tunnel", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Tunnels.List(ctx, listRequest())
	})

	getKey := &tunnelKeyFlags{}
	get := newCallCmd(o, "get", "Get tunnels by id or router", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Tunnels.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &tunnelKeyFlags{}
	del := newCallCmd(o, "delete", "Delete tunnels by id or router", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Tunnels.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	a := &tunnelFlags{}
	add := newCallCmd(o, "add", "Configure a tunnel", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Tunnels.Add(ctx, &messages.TunnelAddRequest{
			Version:      a.version,
			Router:       a.router,
			Ip:           a.ip,
			DynamicIp:    a.dynamicIP,
			IpClass:      a.ipClass,
			Hostname:     a.hostname,
			Description:  a.description,
			Source:       a.source,
			Cost:         a.cost,
			TunnelType:   a.tunnelType,
			TopologyType: a.topologyType,
		})
	})
	a.register(add.Flags())
	for _, name := range []string{"router", "ip", "hostname", "description", "source"} {
		add.MarkFlagRequired(name)
	}

	u := &tunnelFlags{}
	update := newCallCmd(o, "update", "Change the given fields of a tunnel", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Tunnels.Update(ctx, &messages.TunnelUpdateRequest{
			Id:           u.id,
			Version:      optionalInt32(flags, "version", u.version),
			Router:       optionalInt32(flags, "router", u.router),
			Ip:           optionalString(flags, "ip", u.ip),
			DynamicIp:    optionalBool(flags, "dynamic-ip", u.dynamicIP),
			IpClass:      optionalInt32(flags, "ip-class", u.ipClass),
			Hostname:     optionalString(flags, "hostname", u.hostname),
			Description:  optionalString(flags, "description", u.description),
			Source:       optionalString(flags, "source", u.source),
			Cost:         optionalInt32(flags, "cost", u.cost),
			TunnelType:   optionalString(flags, "tunnel-type", u.tunnelType),
			TopologyType: optionalString(flags, "topology-type", u.topologyType),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "Tunnel id")
	u.register(update.Flags())
	update.MarkFlagRequired("id")

	cmd.AddCommand(list, get, add, update, del)
	return cmd
}
