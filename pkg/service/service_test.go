package service

import (
	"context"
	"testing"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"
)

// countingRepo fails every call and records how many reached it.
type countingRepo[M any, K store.Key] struct {
	calls int
	err   error
}

func (r *countingRepo[M, K]) All(context.Context) ([]M, error) {
	r.calls++
	return nil, r.err
}

func (r *countingRepo[M, K]) Get(context.Context, K) ([]M, error) {
	r.calls++
	return nil, r.err
}

func (r *countingRepo[M, K]) Add(context.Context, *M) (*M, error) {
	r.calls++
	return nil, r.err
}

func (r *countingRepo[M, K]) Update(context.Context, int32, store.Changes) (*M, error) {
	r.calls++
	return nil, r.err
}

func (r *countingRepo[M, K]) Delete(context.Context, K) (int64, error) {
	r.calls++
	return 0, r.err
}

type countingMembershipRepo struct {
	countingRepo[db.PermissionMembership, store.MembershipKey]
}

func (r *countingMembershipRepo) PermissionMembers(context.Context, store.PermissionKey) ([]db.User, error) {
	r.calls++
	return nil, r.err
}

func (r *countingMembershipRepo) UserPermissions(context.Context, store.UserKey) ([]db.Permission, error) {
	r.calls++
	return nil, r.err
}

func errorMessage(err error) string {
	return status.Convert(err).Message()
}

func TestMissingKeyNeverReachesStore(t *testing.T) {
	ctx := context.Background()
	agents := &countingRepo[db.Agent, store.AgentKey]{}
	routers := &countingRepo[db.Router, store.RouterKey]{}
	tunnels := &countingRepo[db.Tunnel, store.TunnelKey]{}
	users := &countingRepo[db.User, store.UserKey]{}
	permissions := &countingRepo[db.Permission, store.PermissionKey]{}
	memberships := &countingMembershipRepo{}

	agentSvc := NewAgentService(agents)
	routerSvc := NewRouterService(routers)
	tunnelSvc := NewTunnelService(tunnels)
	userSvc := NewUserService(users)
	permissionSvc := NewPermissionService(permissions)
	membershipSvc := NewPermissionMembershipService(memberships)

	calls := []struct {
		name string
		call func() error
		msg  string
	}{
		{"agent get", func() error { _, err := agentSvc.Get(ctx, &messages.AgentRequest{}); return err }, "Agent id, uuid or owner required"},
		{"agent delete", func() error { _, err := agentSvc.Delete(ctx, &messages.AgentRequest{}); return err }, "Agent id, uuid or owner required"},
		{"router get", func() error { _, err := routerSvc.Get(ctx, &messages.RouterRequest{}); return err }, "Router id or agent required"},
		{"router delete", func() error { _, err := routerSvc.Delete(ctx, &messages.RouterRequest{}); return err }, "Router id or agent required"},
		{"tunnel get", func() error { _, err := tunnelSvc.Get(ctx, &messages.TunnelRequest{}); return err }, "Tunnel id or router required"},
		{"tunnel delete", func() error { _, err := tunnelSvc.Delete(ctx, &messages.TunnelRequest{}); return err }, "Tunnel id or router required"},
		{"user get", func() error { _, err := userSvc.Get(ctx, &messages.UserRequest{}); return err }, "User id or email required"},
		{"user delete", func() error { _, err := userSvc.Delete(ctx, &messages.UserRequest{}); return err }, "User id or email required"},
		{"permission get", func() error { _, err := permissionSvc.Get(ctx, &messages.PermissionRequest{}); return err }, "Permission id or name required"},
		{"permission delete", func() error { _, err := permissionSvc.Delete(ctx, &messages.PermissionRequest{}); return err }, "Permission id or name required"},
		{"membership get", func() error {
			_, err := membershipSvc.Get(ctx, &messages.PermissionMembershipRequest{})
			return err
		}, "Permission membership id, permission or user id required"},
		{"membership delete", func() error {
			_, err := membershipSvc.Delete(ctx, &messages.PermissionMembershipRequest{})
			return err
		}, "Permission membership id, permission or user id required"},
		{"permission members", func() error {
			_, err := membershipSvc.GetPermissionMembers(ctx, &messages.PermissionRequest{})
			return err
		}, "Permission id or name required"},
		{"user permissions", func() error {
			_, err := membershipSvc.GetUserPermissions(ctx, &messages.UserRequest{})
			return err
		}, "User id or email required"},
	}
	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assertCode(t, err, codes.InvalidArgument)
			if got := errorMessage(err); got != tt.msg {
				t.Fatalf("expected message %q, got %q", tt.msg, got)
			}
		})
	}
	for name, n := range map[string]int{
		"agent":      agents.calls,
		"router":     routers.calls,
		"tunnel":     tunnels.calls,
		"user":       users.calls,
		"permission": permissions.calls,
		"membership": memberships.calls,
	} {
		if n != 0 {
			t.Fatalf("%s repository saw %d calls, want 0", name, n)
		}
	}
}

func TestInvalidWritesNeverReachStore(t *testing.T) {
	ctx := context.Background()
	agents := &countingRepo[db.Agent, store.AgentKey]{}
	tunnels := &countingRepo[db.Tunnel, store.TunnelKey]{}
	users := &countingRepo[db.User, store.UserKey]{}
	memberships := &countingMembershipRepo{}
	agentSvc := NewAgentService(agents)
	tunnelSvc := NewTunnelService(tunnels)
	userSvc := NewUserService(users)
	membershipSvc := NewPermissionMembershipService(memberships)

	calls := []struct {
		name string
		call func() error
	}{
		{"agent without uuid", func() error {
			_, err := agentSvc.Add(ctx, &messages.AgentAddRequest{Owner: 1})
			return err
		}},
		{"agent without owner", func() error {
			_, err := agentSvc.Add(ctx, &messages.AgentAddRequest{Uuid: "u-1"})
			return err
		}},
		{"agent update without id", func() error {
			_, err := agentSvc.Update(ctx, &messages.AgentUpdateRequest{Description: proto.String("x")})
			return err
		}},
		{"agent update without fields", func() error {
			_, err := agentSvc.Update(ctx, &messages.AgentUpdateRequest{Id: 1})
			return err
		}},
		{"agent update clearing owner", func() error {
			_, err := agentSvc.Update(ctx, &messages.AgentUpdateRequest{Id: 1, Owner: proto.Int32(0)})
			return err
		}},
		{"tunnel without hostname", func() error {
			_, err := tunnelSvc.Add(ctx, &messages.TunnelAddRequest{Router: 1, Ip: "10.0.0.1", Description: "d", Source: "s"})
			return err
		}},
		{"tunnel update clearing ip", func() error {
			_, err := tunnelSvc.Update(ctx, &messages.TunnelUpdateRequest{Id: 1, Ip: proto.String("")})
			return err
		}},
		{"user without email", func() error {
			_, err := userSvc.Add(ctx, &messages.UserAddRequest{Password: "secret"})
			return err
		}},
		{"user update with empty password", func() error {
			_, err := userSvc.Update(ctx, &messages.UserUpdateRequest{Id: 1, Password: proto.String("")})
			return err
		}},
		{"membership without user", func() error {
			_, err := membershipSvc.Add(ctx, &messages.PermissionMembershipAddRequest{Permission: 1})
			return err
		}},
	}
	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, tt.call(), codes.InvalidArgument)
		})
	}
	if n := agents.calls + tunnels.calls + users.calls + memberships.calls; n != 0 {
		t.Fatalf("repositories saw %d calls, want 0", n)
	}
}

func TestStoreErrorsMapToCodes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", errors.Wrap(gorm.ErrRecordNotFound, "agent id=3"), codes.NotFound},
		{"duplicate", gorm.ErrDuplicatedKey, codes.Internal},
		{"unknown", errors.New("boom"), codes.Internal},
		{"out of range", errors.New(`sql: Scan error on column index 0, name "id": value out of range`), codes.OutOfRange},
		{"nothing to update", store.ErrNothingToUpdate, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &countingRepo[db.Agent, store.AgentKey]{err: tt.err}
			svc := NewAgentService(repo)
			_, err := svc.Update(ctx, &messages.AgentUpdateRequest{Id: 3, Description: proto.String("core")})
			assertCode(t, err, tt.want)
			if repo.calls != 1 {
				t.Fatalf("expected one store call, got %d", repo.calls)
			}
			if tt.want == codes.Internal && errorMessage(err) != "agent request failed" {
				t.Fatalf("store message leaked to caller: %q", errorMessage(err))
			}
		})
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/tunnelmanager.v1.Agent/List"}
	resp, err := recoveryInterceptor(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		panic("boom")
	})
	if resp != nil {
		t.Fatalf("expected no response, got %v", resp)
	}
	assertCode(t, err, codes.Internal)
}
