package cmd

import (
	"github.com/kfsoftware/tunnel-manager/cmd/client"
	"github.com/kfsoftware/tunnel-manager/cmd/server"
	"github.com/spf13/cobra"
)

const (
	tunnelManagerDesc = `
tunnel-manager keeps the inventory of agents, routers and the tunnels
configured on them, together with the users and permissions that own them.
The server exposes that inventory over gRPC; the client subcommands call it.
Detailed help for each command is available with 'tunnel-manager help <command>'.
`
)

func NewCmdTunnelManager() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tunnel-manager",
		Short:        "manage agents, routers and tunnels",
		Long:         tunnelManagerDesc,
		SilenceUsage: true,
	}
	cmd.AddCommand(client.NewClientCmd())
	cmd.AddCommand(server.NewServerCmd())

	return cmd
}
