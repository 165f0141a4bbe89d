package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testServer struct {
	conn      *grpc.ClientConn
	adminAddr string
	pool      *sql.DB
	repos     *store.Repositories
}

func newTestStore(t *testing.T) (*store.Repositories, *sql.DB) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.Config())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	pool, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get pool: %v", err)
	}
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { pool.Close() })
	if err := db.Migrate(context.Background(), gormDB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.NewRepositories(gormDB), pool
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()
	passwordCost = bcrypt.MinCost
	repos, pool := newTestStore(t)

	grpcListener := bufconn.Listen(1024 * 1024)
	adminListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	i := NewServerInstance(repos, pool, grpcListener, adminListener, []string{"*"})
	started := make(chan error, 1)
	go func() {
		started <- i.Start()
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := i.Stop(ctx); err != nil {
			t.Errorf("failed to stop server: %v", err)
		}
		if err := <-started; err != nil {
			t.Errorf("server exited with error: %v", err)
		}
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return grpcListener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &testServer{
		conn:      conn,
		adminAddr: adminListener.Addr().String(),
		pool:      pool,
		repos:     repos,
	}
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, err)
	}
}

func assertProto(t *testing.T, want, got proto.Message) {
	t.Helper()
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestUserAndAgentScenario(t *testing.T) {
	s := startTestServer(t)
	ctx := context.Background()
	users := messages.NewUserClient(s.conn)
	agents := messages.NewAgentClient(s.conn)

	user, err := users.Add(ctx, &messages.UserAddRequest{Email: "a@x.io", Password: "secret"})
	if err != nil {
		t.Fatalf("Add user failed: %v", err)
	}
	assertProto(t, &messages.UserData{Id: 1, Email: "a@x.io"}, user)

	_, err = users.Add(ctx, &messages.UserAddRequest{Email: "a@x.io", Password: "other"})
	assertCode(t, err, codes.Internal)

	stored, err := s.repos.Users.Get(ctx, store.UserByID(1))
	if err != nil {
		t.Fatalf("failed to read user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored[0].Password), []byte("secret")); err != nil {
		t.Fatalf("password not stored as bcrypt hash of the first add: %v", err)
	}

	agent, err := agents.Add(ctx, &messages.AgentAddRequest{Uuid: "u-1", Description: "edge", Owner: 1})
	if err != nil {
		t.Fatalf("Add agent failed: %v", err)
	}
	wantAgent := &messages.AgentData{Id: 1, Uuid: "u-1", Description: "edge", Owner: 1}
	assertProto(t, wantAgent, agent)

	byOwner, err := agents.Get(ctx, &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Owner{Owner: 1}})
	if err != nil {
		t.Fatalf("Get agents by owner failed: %v", err)
	}
	assertProto(t, &messages.AgentsData{Agents: []*messages.AgentData{wantAgent}}, byOwner)

	deleted, err := agents.Delete(ctx, &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Uuid{Uuid: "u-1"}})
	if err != nil {
		t.Fatalf("Delete agent failed: %v", err)
	}
	if deleted.GetAffected() != 1 {
		t.Fatalf("expected 1 deleted agent, got %d", deleted.GetAffected())
	}

	byUUID, err := agents.Get(ctx, &messages.AgentRequest{IdUuidOrOwner: &messages.AgentRequest_Uuid{Uuid: "u-1"}})
	if err != nil {
		t.Fatalf("Get agents by uuid failed: %v", err)
	}
	if len(byUUID.GetAgents()) != 0 {
		t.Fatalf("expected no agents, got %v", byUUID.GetAgents())
	}

	_, err = users.Get(ctx, &messages.UserRequest{IdOrEmail: &messages.UserRequest_Id{Id: 99}})
	assertCode(t, err, codes.NotFound)

	byEmail, err := users.Get(ctx, &messages.UserRequest{IdOrEmail: &messages.UserRequest_Email{Email: "a@x.io"}})
	if err != nil {
		t.Fatalf("Get user by email failed: %v", err)
	}
	assertProto(t, &messages.UserData{Id: 1, Email: "a@x.io"}, byEmail)

	_, err = agents.Add(ctx, &messages.AgentAddRequest{Uuid: "u-2", Owner: 42})
	assertCode(t, err, codes.Internal)
}

func TestUserAddWithEmailOnly(t *testing.T) {
	s := startTestServer(t)
	ctx := context.Background()
	users := messages.NewUserClient(s.conn)

	user, err := users.Add(ctx, &messages.UserAddRequest{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Add user failed: %v", err)
	}
	assertProto(t, &messages.UserData{Id: 1, Email: "a@example.com"}, user)

	stored, err := s.repos.Users.Get(ctx, store.UserByID(1))
	if err != nil {
		t.Fatalf("failed to read user: %v", err)
	}
	if stored[0].Password != "" {
		t.Fatalf("expected no password, got %q", stored[0].Password)
	}

	_, err = users.Add(ctx, &messages.UserAddRequest{Email: "a@example.com"})
	assertCode(t, err, codes.Internal)

	if _, err := users.Update(ctx, &messages.UserUpdateRequest{Id: 1, Password: proto.String("secret")}); err != nil {
		t.Fatalf("Update user failed: %v", err)
	}
	stored, err = s.repos.Users.Get(ctx, store.UserByID(1))
	if err != nil {
		t.Fatalf("failed to read user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored[0].Password), []byte("secret")); err != nil {
		t.Fatalf("password not set by update: %v", err)
	}
}

func TestUpdates(t *testing.T) {
	s := startTestServer(t)
	ctx := context.Background()
	users := messages.NewUserClient(s.conn)
	agents := messages.NewAgentClient(s.conn)
	routers := messages.NewRouterClient(s.conn)
	tunnels := messages.NewTunnelClient(s.conn)

	if _, err := users.Add(ctx, &messages.UserAddRequest{Email: "a@x.io", Password: "secret"}); err != nil {
		t.Fatalf("Add user failed: %v", err)
	}
	if _, err := agents.Add(ctx, &messages.AgentAddRequest{Uuid: "u-1", Description: "edge", Owner: 1}); err != nil {
		t.Fatalf("Add agent failed: %v", err)
	}
	router, err := routers.Add(ctx, &messages.RouterAddRequest{Agent: 1, ConnType: proto.String("ssh")})
	if err != nil {
		t.Fatalf("Add router failed: %v", err)
	}
	assertProto(t, &messages.RouterData{Id: 1, Agent: 1, ConnType: proto.String("ssh")}, router)

	_, err = agents.Update(ctx, &messages.AgentUpdateRequest{Id: 1})
	assertCode(t, err, codes.InvalidArgument)
	_, err = agents.Update(ctx, &messages.AgentUpdateRequest{Description: proto.String("core")})
	assertCode(t, err, codes.InvalidArgument)
	_, err = agents.Update(ctx, &messages.AgentUpdateRequest{Id: 1, Uuid: proto.String("")})
	assertCode(t, err, codes.InvalidArgument)
	_, err = agents.Update(ctx, &messages.AgentUpdateRequest{Id: 9, Description: proto.String("core")})
	assertCode(t, err, codes.NotFound)

	agent, err := agents.Update(ctx, &messages.AgentUpdateRequest{Id: 1, Description: proto.String("")})
	if err != nil {
		t.Fatalf("Update agent failed: %v", err)
	}
	assertProto(t, &messages.AgentData{Id: 1, Uuid: "u-1", Owner: 1}, agent)

	updatedRouter, err := routers.Update(ctx, &messages.RouterUpdateRequest{Id: 1, SshUsername: proto.String("admin")})
	if err != nil {
		t.Fatalf("Update router failed: %v", err)
	}
	assertProto(t, &messages.RouterData{
		Id: 1, Agent: 1, ConnType: proto.String("ssh"), SshUsername: proto.String("admin"),
	}, updatedRouter)

	clearedRouter, err := routers.Update(ctx, &messages.RouterUpdateRequest{Id: 1, ConnType: proto.String("")})
	if err != nil {
		t.Fatalf("Update router failed: %v", err)
	}
	assertProto(t, &messages.RouterData{Id: 1, Agent: 1, SshUsername: proto.String("admin")}, clearedRouter)

	tunnel, err := tunnels.Add(ctx, &messages.TunnelAddRequest{
		Version: 1, Router: 1, Ip: "10.0.0.1", DynamicIp: true, IpClass: 24,
		Hostname: "gw", Description: "uplink", Source: "eth0", Cost: 5,
		TunnelType: "gre", TopologyType: "hub",
	})
	if err != nil {
		t.Fatalf("Add tunnel failed: %v", err)
	}
	updatedTunnel, err := tunnels.Update(ctx, &messages.TunnelUpdateRequest{Id: tunnel.GetId(), DynamicIp: proto.Bool(false)})
	if err != nil {
		t.Fatalf("Update tunnel failed: %v", err)
	}
	want := proto.Clone(tunnel).(*messages.TunnelData)
	want.DynamicIp = false
	assertProto(t, want, updatedTunnel)

	byRouter, err := tunnels.Get(ctx, &messages.TunnelRequest{IdOrRouter: &messages.TunnelRequest_Router{Router: 1}})
	if err != nil {
		t.Fatalf("Get tunnels by router failed: %v", err)
	}
	assertProto(t, &messages.TunnelsData{Tunnels: []*messages.TunnelData{want}}, byRouter)

	user, err := users.Update(ctx, &messages.UserUpdateRequest{Id: 1, Password: proto.String("changed")})
	if err != nil {
		t.Fatalf("Update user failed: %v", err)
	}
	assertProto(t, &messages.UserData{Id: 1, Email: "a@x.io"}, user)
	stored, err := s.repos.Users.Get(ctx, store.UserByID(1))
	if err != nil {
		t.Fatalf("failed to read user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored[0].Password), []byte("changed")); err != nil {
		t.Fatalf("password not re-hashed: %v", err)
	}
}

func TestPermissionMemberships(t *testing.T) {
	s := startTestServer(t)
	ctx := context.Background()
	users := messages.NewUserClient(s.conn)
	permissions := messages.NewPermissionClient(s.conn)
	memberships := messages.NewPermissionMembershipClient(s.conn)

	for _, email := range []string{"alice@x.io", "bob@x.io"} {
		if _, err := users.Add(ctx, &messages.UserAddRequest{Email: email, Password: "pw"}); err != nil {
			t.Fatalf("Add user %s failed: %v", email, err)
		}
	}
	admin, err := permissions.Add(ctx, &messages.PermissionAddRequest{Name: "admin", Description: "all"})
	if err != nil {
		t.Fatalf("Add permission failed: %v", err)
	}
	_, err = permissions.Add(ctx, &messages.PermissionAddRequest{Name: "admin", Description: "again"})
	assertCode(t, err, codes.Internal)
	_, err = permissions.Add(ctx, &messages.PermissionAddRequest{Name: "audit"})
	assertCode(t, err, codes.InvalidArgument)

	got, err := permissions.Get(ctx, &messages.PermissionRequest{IdOrName: &messages.PermissionRequest_Name{Name: "admin"}})
	if err != nil {
		t.Fatalf("Get permission failed: %v", err)
	}
	assertProto(t, admin, got)

	membership, err := memberships.Add(ctx, &messages.PermissionMembershipAddRequest{Permission: admin.GetId(), UserId: 2})
	if err != nil {
		t.Fatalf("Add membership failed: %v", err)
	}
	assertProto(t, &messages.PermissionMembershipData{Id: 1, Permission: admin.GetId(), UserId: 2}, membership)

	members, err := memberships.GetPermissionMembers(ctx, &messages.PermissionRequest{IdOrName: &messages.PermissionRequest_Id{Id: admin.GetId()}})
	if err != nil {
		t.Fatalf("GetPermissionMembers failed: %v", err)
	}
	assertProto(t, &messages.UsersData{Users: []*messages.UserData{{Id: 2, Email: "bob@x.io"}}}, members)

	perms, err := memberships.GetUserPermissions(ctx, &messages.UserRequest{IdOrEmail: &messages.UserRequest_Email{Email: "alice@x.io"}})
	if err != nil {
		t.Fatalf("GetUserPermissions failed: %v", err)
	}
	if len(perms.GetPermissions()) != 0 {
		t.Fatalf("expected alice to hold no permissions, got %v", perms.GetPermissions())
	}

	deleted, err := memberships.Delete(ctx, &messages.PermissionMembershipRequest{
		IdPermissionOrUserId: &messages.PermissionMembershipRequest_UserId{UserId: 2},
	})
	if err != nil {
		t.Fatalf("Delete membership failed: %v", err)
	}
	if deleted.GetAffected() != 1 {
		t.Fatalf("expected 1 deleted membership, got %d", deleted.GetAffected())
	}
	list, err := memberships.List(ctx, &messages.ListRequest{})
	if err != nil {
		t.Fatalf("List memberships failed: %v", err)
	}
	if len(list.GetMemberships()) != 0 {
		t.Fatalf("expected no memberships, got %v", list.GetMemberships())
	}
}

func TestHealthAndAdmin(t *testing.T) {
	s := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hc := healthgrpc.NewHealthClient(s.conn)
	var (
		res *healthgrpc.HealthCheckResponse
		err error
	)
	// Start marks services SERVING on its own goroutine.
	for {
		res, err = hc.Check(ctx, &healthgrpc.HealthCheckRequest{Service: messages.Agent_ServiceDesc.ServiceName})
		if err == nil && res.GetStatus() == healthgrpc.HealthCheckResponse_SERVING {
			break
		}
		select {
		case <-ctx.Done():
			t.Fatalf("agent service never became healthy: %v %v", res, err)
		case <-time.After(10 * time.Millisecond):
		}
	}

	resp, err := http.Get("http://" + s.adminAddr + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode /healthz: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected /healthz body: %v", body)
	}

	if _, err := messages.NewUserClient(s.conn).List(ctx, &messages.ListRequest{}); err != nil {
		t.Fatalf("List users failed: %v", err)
	}
	metricsResp, err := http.Get("http://" + s.adminAddr + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer metricsResp.Body.Close()
	raw, err := io.ReadAll(metricsResp.Body)
	if err != nil {
		t.Fatalf("failed to read /metrics: %v", err)
	}
	if !strings.Contains(string(raw), `tunnel_manager_grpc_requests_total{code="OK",method="/tunnelmanager.v1.User/List"} 1`) {
		t.Fatalf("request counter missing from /metrics:\n%s", raw)
	}

	statsResp, err := http.Get("http://" + s.adminAddr + "/stats")
	if err != nil {
		t.Fatalf("GET /stats failed: %v", err)
	}
	defer statsResp.Body.Close()
	var stats map[string]interface{}
	if err := json.NewDecoder(statsResp.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode /stats: %v", err)
	}
	if stats["maxOpenConnections"] != float64(1) {
		t.Fatalf("unexpected /stats body: %v", stats)
	}
}

func TestStartReturnsWhenOneServerFails(t *testing.T) {
	repos, pool := newTestStore(t)
	grpcListener := bufconn.Listen(1024 * 1024)
	grpcListener.Close()
	adminListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	i := NewServerInstance(repos, pool, grpcListener, adminListener, nil)

	done := make(chan error, 1)
	go func() {
		done <- i.Start()
	}()
	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected an error from Start")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Start kept running after the gRPC server failed")
	}
	if _, err := http.Get("http://" + adminListener.Addr().String() + "/healthz"); err == nil {
		t.Fatalf("admin server still answering after the gRPC server failed")
	}
}
