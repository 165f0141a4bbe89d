package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const requestIDHeader = "x-request-id"

// Client bundles the typed clients of every tunnel-manager service over a
// single connection.
type Client struct {
	conn        *grpc.ClientConn
	Agents      messages.AgentClient
	Routers     messages.RouterClient
	Tunnels     messages.TunnelClient
	Users       messages.UserClient
	Permissions messages.PermissionClient
	Memberships messages.PermissionMembershipClient
}

func NewClient(serverAddress string, opts ...grpc.DialOption) (*Client, error) {
	log.Debug().Msgf("Connecting to %s", serverAddress)
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)
	conn, err := grpc.NewClient(serverAddress, opts...)
	if err != nil {
		log.Trace().Msgf("Failed to create client for %s: %v", serverAddress, err)
		return nil, errors.Wrapf(err, "failed to connect to %s", serverAddress)
	}
	return &Client{
		conn:        conn,
		Agents:      messages.NewAgentClient(conn),
		Routers:     messages.NewRouterClient(conn),
		Tunnels:     messages.NewTunnelClient(conn),
		Users:       messages.NewUserClient(conn),
		Permissions: messages.NewPermissionClient(conn),
		Memberships: messages.NewPermissionMembershipClient(conn),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// requestIDInterceptor tags each call so client and server logs can be joined.
func requestIDInterceptor(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	requestID := uuid.NewString()
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, requestID)
	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	log.Debug().
		Str("requestId", requestID).
		Str("method", method).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("Call finished")
	return err
}
