package client

import (
	"context"
	"net"
	"testing"

	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type userServer struct {
	messages.UnimplementedUserServer
	requestIDs chan string
}

func (s *userServer) List(ctx context.Context, _ *messages.ListRequest) (*messages.UsersData, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	id := ""
	if values := md.Get(requestIDHeader); len(values) > 0 {
		id = values[0]
	}
	s.requestIDs <- id
	return &messages.UsersData{Users: []*messages.UserData{{Id: 1, Email: "a@x.io"}}}, nil
}

func TestClientSendsRequestID(t *testing.T) {
	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	srv := &userServer{requestIDs: make(chan string, 1)}
	messages.RegisterUserServer(server, srv)
	go server.Serve(listener)
	defer server.Stop()

	c, err := NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	}))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer c.Close()

	res, err := c.Users.List(context.Background(), &messages.ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(res.GetUsers()) != 1 || res.GetUsers()[0].GetEmail() != "a@x.io" {
		t.Fatalf("unexpected users: %v", res.GetUsers())
	}
	if id := <-srv.requestIDs; id == "" {
		t.Fatalf("expected a request id header")
	}
}
