package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/kfsoftware/tunnel-manager/pkg/client"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
)

type agentKeyFlags struct {
	id    int32
	uuid  string
	owner int32
}

func (f *agentKeyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int32VarP(&f.id, "id", "", 0, "Agent id")
	flags.StringVarP(&f.uuid, "uuid", "", "", "Agent uuid")
	flags.Int32VarP(&f.owner, "owner", "", 0, "Id of the owning user")
	exactlyOne(cmd, "id", "uuid", "owner")
}

func (f *agentKeyFlags) request(flags *pflag.FlagSet) *messages.AgentRequest {
	switch {
	case flags.Changed("uuid"):
		return &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Uuid{Uuid: f.uuid}}
	case flags.Changed("owner"):
		return &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Owner{Owner: f.owner}}
	}
	return &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Id{Id: f.id}}
}

type agentFlags struct {
	id          int32
	uuid        string
	description string
	owner       int32
}

func newAgentCmd(o *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents",
	}

	list := newCallCmd(o, "list", "List every agent", func(ctx context.Context, c *client.Client, _ *pflag.FlagSet) (proto.Message, error) {
		return c.Agents.List(ctx, listRequest())
	})

	getKey := &agentKeyFlags{}
	get := newCallCmd(o, "get", "Get agents by id, uuid or owner", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Agents.Get(ctx, getKey.request(flags))
	})
	getKey.register(get)

	deleteKey := &agentKeyFlags{}
	del := newCallCmd(o, "delete", "Delete agents by id, uuid or owner", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Agents.Delete(ctx, deleteKey.request(flags))
	})
	deleteKey.register(del)

	a := &agentFlags{}
	add := newCallCmd(o, "add", "Register an agent", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		agentUUID := a.uuid
		if !flags.Changed("uuid") {
			agentUUID = uuid.NewString()
		}
		return c.Agents.Add(ctx, &messages.AgentAddRequest{
			Uuid:        agentUUID,
			Description: a.description,
			Owner:       a.owner,
		})
	})
	add.Flags().StringVarP(&a.uuid, "uuid", "", "", "Agent uuid, generated when omitted")
	add.Flags().StringVarP(&a.description, "description", "", "", "Agent description")
	add.Flags().Int32VarP(&a.owner, "owner", "", 0, "Id of the owning user")
	add.MarkFlagRequired("owner")

	u := &agentFlags{}
	update := newCallCmd(o, "update", "Change the given fields of an agent", func(ctx context.Context, c *client.Client, flags *pflag.FlagSet) (proto.Message, error) {
		return c.Agents.Update(ctx, &messages.AgentUpdateRequest{
			Id:          u.id,
			Uuid:        optionalString(flags, "uuid", u.uuid),
			Description: optionalString(flags, "description", u.description),
			Owner:       optionalInt32(flags, "owner", u.owner),
		})
	})
	update.Flags().Int32VarP(&u.id, "id", "", 0, "Agent id")
	update.Flags().StringVarP(&u.uuid, "uuid", "", "", "New uuid")
	update.Flags().StringVarP(&u.description, "description", "", "", "New description")
	update.Flags().Int32VarP(&u.owner, "owner", "", 0, "New owner id")
	update.MarkFlagRequired("id")

	cmd.AddCommand(list, get, add, update, del)
	return cmd
}
