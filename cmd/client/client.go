package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const defaultServer = "localhost:50051"

type clientOptions struct {
	server  string
	timeout time.Duration
}

func (o *clientOptions) validate() error {
	if o.server == "" {
		return errors.New("--server is required")
	}
	if o.timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}

// call dials the server, runs fn and prints its reply as JSON.
func (o *clientOptions) call(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (proto.Message, error)) error {
	if err := o.validate(); err != nil {
		return err
	}
	c, err := client.NewClient(o.server)
	if err != nil {
		return err
	}
	defer c.Close()
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	res, err := fn(ctx, c)
	if err != nil {
		log.Debug().Err(err).Msgf("%s failed", cmd.CommandPath())
		return err
	}
	b, err := protojson.MarshalOptions{Multiline: true, EmitUnpopulated: true}.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

// newCallCmd builds a subcommand issuing a single RPC.
func newCallCmd(o *clientOptions, use, short string, fn func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, func(ctx context.Context, c *client.Client) (proto.Message, error) {
				return fn(ctx, c, cmd.Flags())
			})
		},
	}
}

func listRequest() *messages.ListRequest {
	return &messages.ListRequest{}
}

// exactlyOne requires one and only one of the key flags.
func exactlyOne(cmd *cobra.Command, names ...string) {
	cmd.MarkFlagsOneRequired(names...)
	cmd.MarkFlagsMutuallyExclusive(names...)
}

func optionalString(flags *pflag.FlagSet, name, value string) *string {
	if flags.Changed(name) {
		return proto.String(value)
	}
	return nil
}

func optionalInt32(flags *pflag.FlagSet, name string, value int32) *int32 {
	if flags.Changed(name) {
		return proto.Int32(value)
	}
	return nil
}

func optionalBool(flags *pflag.FlagSet, name string, value bool) *bool {
	if flags.Changed(name) {
		return proto.Bool(value)
	}
	return nil
}

func NewClientCmd() *cobra.Command {
	o := &clientOptions{}
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running tunnel-manager server",
	}
	server := os.Getenv("TUNNEL_MANAGER_ADDR")
	if server == "" {
		server = defaultServer
	}
	persistentFlags := cmd.PersistentFlags()
	persistentFlags.StringVarP(&o.server, "server", "s", server, "Address of the tunnel-manager gRPC server (env TUNNEL_MANAGER_ADDR)")
	persistentFlags.DurationVarP(&o.timeout, "timeout", "", 10*time.Second, "Deadline for each call")

	cmd.AddCommand(
		newAgentCmd(o),
		newRouterCmd(o),
		newTunnelCmd(o),
		newUserCmd(o),
		newPermissionCmd(o),
		newMembershipCmd(o),
	)
	return cmd
}
