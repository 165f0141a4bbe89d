package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.Config())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get pool: %v", err)
	}
	// every connection to :memory: is a different database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.Migrate(context.Background(), gormDB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewRepositories(gormDB)
}

func mustAddUser(t *testing.T, repos *Repositories, email string) *db.User {
	t.Helper()
	u, err := repos.Users.Add(context.Background(), &db.User{Email: email, Password: "hash"})
	if err != nil {
		t.Fatalf("failed to add user %s: %v", email, err)
	}
	return u
}

func mustAddAgent(t *testing.T, repos *Repositories, uuid string, owner int32) *db.Agent {
	t.Helper()
	a, err := repos.Agents.Add(context.Background(), &db.Agent{UUID: uuid, Description: "edge", Owner: owner})
	if err != nil {
		t.Fatalf("failed to add agent %s: %v", uuid, err)
	}
	return a
}

var ignoreRefs = cmpopts.IgnoreFields(db.Agent{}, "OwnerRef")

func TestAllOnEmptyTable(t *testing.T) {
	repos := newTestRepositories(t)
	agents, err := repos.Agents.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if agents == nil || len(agents) != 0 {
		t.Fatalf("expected an empty non-nil slice, got %#v", agents)
	}
}

func TestAddThenGet(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
	added := mustAddAgent(t, repos, "u-1", u.ID)

	got, err := repos.Agents.Get(ctx, AgentByID(added.ID))
	if err != nil {
		t.Fatalf("Get by id failed: %v", err)
	}
	want := []db.Agent{{ID: added.ID, UUID: "u-1", Description: "edge", Owner: u.ID}}
	if diff := cmp.Diff(want, got, ignoreRefs); diff != "" {
		t.Fatalf("unexpected agents (-want +got):\n%s", diff)
	}
}

func TestGetMultiValuedKeys(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	first := mustAddAgent(t, repos, "u-1", u.ID)
	second := mustAddAgent(t, repos, "u-2", u.ID)

	byOwner, err := repos.Agents.Get(ctx, AgentByOwner(u.ID))
	if err != nil {
		t.Fatalf("Get by owner failed: %v", err)
	}
	if len(byOwner) != 2 || byOwner[0].ID != first.ID || byOwner[1].ID != second.ID {
		t.Fatalf("expected agents %d and %d ordered by id, got %+v", first.ID, second.ID, byOwner)
	}

	none, err := repos.Agents.Get(ctx, AgentByUUID("missing"))
	if err != nil {
		t.Fatalf("Get by unknown uuid should not fail: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no agents, got %+v", none)
	}
}

func TestGetUniqueKeyNotFound(t *testing.T) {
	repos := newTestRepositories(t)
	_, err := repos.Users.Get(context.Background(), UserByEmail("nobody@x.io"))
	if kind := Translate(err); kind != KindNotFound {
		t.Fatalf("expected NotFound, got %s (%v)", kind, err)
	}
	_, err = repos.Permissions.Get(context.Background(), PermissionByID(42))
	if kind := Translate(err); kind != KindNotFound {
		t.Fatalf("expected NotFound, got %s (%v)", kind, err)
	}
}

func TestDuplicateEmailKeepsFirstRow(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	first := mustAddUser(t, repos, "a@x.io")

	_, err := repos.Users.Add(ctx, &db.User{Email: "a@x.io", Password: "other"})
	if err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
	if kind := Translate(err); kind != KindInternal {
		t.Fatalf("expected Internal, got %s (%v)", kind, err)
	}
	users, err := repos.Users.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != first.ID || users[0].Password != "hash" {
		t.Fatalf("first user changed: %+v", users)
	}
}

func TestForeignKeyViolation(t *testing.T) {
	repos := newTestRepositories(t)
	_, err := repos.Agents.Add(context.Background(), &db.Agent{UUID: "u-1", Description: "edge", Owner: 99})
	if err == nil {
		t.Fatalf("expected missing owner to be rejected")
	}
	if kind := Translate(err); kind != KindInternal {
		t.Fatalf("expected Internal, got %s (%v)", kind, err)
	}
}

func TestUpdateSingleColumn(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	a := mustAddAgent(t, repos, "u-1", u.ID)

	updated, err := repos.Agents.Update(ctx, a.ID, Changes{}.Set(AgentDescription, "core"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	want := &db.Agent{ID: a.ID, UUID: "u-1", Description: "core", Owner: u.ID}
	if diff := cmp.Diff(want, updated, ignoreRefs); diff != "" {
		t.Fatalf("unexpected agent (-want +got):\n%s", diff)
	}
}

func TestUpdateReadsBackInOneStatement(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")

	queries := 0
	err := repos.Users.db.Callback().Query().Register("test:count_queries", func(*gorm.DB) {
		queries++
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}
	updated, err := repos.Users.Update(ctx, u.ID, Changes{}.Set(UserEmail, "b@x.io"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if queries != 0 {
		t.Fatalf("expected no follow-up select, got %d", queries)
	}
	want := &db.User{ID: u.ID, Email: "b@x.io", Password: "hash"}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("unexpected user (-want +got):\n%s", diff)
	}
}

func TestUpdateNullableAndFalseValues(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	a := mustAddAgent(t, repos, "u-1", u.ID)
	r, err := repos.Routers.Add(ctx, &db.Router{Agent: a.ID})
	if err != nil {
		t.Fatalf("failed to add router: %v", err)
	}
	if r.SnmpCommunity != nil {
		t.Fatalf("expected null snmp community, got %q", *r.SnmpCommunity)
	}
	updated, err := repos.Routers.Update(ctx, r.ID, Changes{}.Set(RouterSnmpCommunity, "public"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.SnmpCommunity == nil || *updated.SnmpCommunity != "public" || updated.SSHUsername != nil {
		t.Fatalf("unexpected router after update: %+v", updated)
	}

	tun, err := repos.Tunnels.Add(ctx, &db.Tunnel{
		Version: 1, Router: r.ID, IP: "10.0.0.1", DynamicIP: true, IPClass: 24,
		Hostname: "gw", Description: "uplink", Source: "eth0", Cost: 10,
		TunnelType: "gre", TopologyType: "hub",
	})
	if err != nil {
		t.Fatalf("failed to add tunnel: %v", err)
	}
	updatedTunnel, err := repos.Tunnels.Update(ctx, tun.ID, Changes{}.Set(TunnelDynamicIP, false))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updatedTunnel.DynamicIP || updatedTunnel.Hostname != "gw" || updatedTunnel.Cost != 10 {
		t.Fatalf("unexpected tunnel after update: %+v", updatedTunnel)
	}
}

func TestUpdateNothingLeavesRow(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")

	_, err := repos.Users.Update(ctx, u.ID, Changes{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
	got, err := repos.Users.Get(ctx, UserByID(u.ID))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if diff := cmp.Diff([]db.User{*u}, got); diff != "" {
		t.Fatalf("user changed (-want +got):\n%s", diff)
	}
}

func TestUpdateRejectsUnknownColumn(t *testing.T) {
	repos := newTestRepositories(t)
	u := mustAddUser(t, repos, "a@x.io")
	_, err := repos.Users.Update(context.Background(), u.ID, Changes{}.Set(Column("id"), 7))
	if !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	repos := newTestRepositories(t)
	_, err := repos.Permissions.Update(context.Background(), 5, Changes{}.Set(PermissionName, "admin"))
	if kind := Translate(err); kind != KindNotFound {
		t.Fatalf("expected NotFound, got %s (%v)", kind, err)
	}
}

func TestUpdateClearsNullableColumn(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	a := mustAddAgent(t, repos, "u-1", u.ID)
	community := "public"
	r, err := repos.Routers.Add(ctx, &db.Router{Agent: a.ID, SnmpCommunity: &community})
	if err != nil {
		t.Fatalf("failed to add router: %v", err)
	}
	updated, err := repos.Routers.Update(ctx, r.ID, Changes{}.Set(RouterSnmpCommunity, nil))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.SnmpCommunity != nil {
		t.Fatalf("expected null snmp community, got %q", *updated.SnmpCommunity)
	}
}

func TestScanOverflowIsOutOfRange(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	err := repos.Users.db.WithContext(ctx).
		Exec("INSERT INTO users (id, email, password) VALUES (?, ?, ?)", int64(99999999999), "big@x.io", "").
		Error
	if err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	_, err = repos.Users.All(ctx)
	if kind := Translate(err); kind != KindOutOfRange {
		t.Fatalf("expected OutOfRange, got %s (%v)", kind, err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	u := mustAddUser(t, repos, "a@x.io")
	mustAddAgent(t, repos, "u-1", u.ID)
	mustAddAgent(t, repos, "u-1", u.ID)

	affected, err := repos.Agents.Delete(ctx, AgentByUUID("u-1"))
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", affected)
	}
	agents, err := repos.Agents.Get(ctx, AgentByUUID("u-1"))
	if err != nil || len(agents) != 0 {
		t.Fatalf("expected no agents after delete, got %+v (%v)", agents, err)
	}

	affected, err = repos.Agents.Delete(ctx, AgentByUUID("u-1"))
	if err != nil || affected != 0 {
		t.Fatalf("expected a no-op delete, got %d (%v)", affected, err)
	}

	if _, err := repos.Users.Delete(ctx, UserByID(u.ID)); err != nil {
		t.Fatalf("Delete user failed: %v", err)
	}
	_, err = repos.Users.Get(ctx, UserByID(u.ID))
	if kind := Translate(err); kind != KindNotFound {
		t.Fatalf("expected NotFound, got %s (%v)", kind, err)
	}
}

func TestMembershipJoins(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	alice := mustAddUser(t, repos, "alice@x.io")
	bob := mustAddUser(t, repos, "bob@x.io")
	mustAddUser(t, repos, "carol@x.io")
	admin, err := repos.Permissions.Add(ctx, &db.Permission{Name: "admin", Description: "all"})
	if err != nil {
		t.Fatalf("failed to add permission: %v", err)
	}
	read, err := repos.Permissions.Add(ctx, &db.Permission{Name: "read", Description: "read only"})
	if err != nil {
		t.Fatalf("failed to add permission: %v", err)
	}
	for _, m := range []db.PermissionMembership{
		{Permission: admin.ID, UserID: alice.ID},
		{Permission: read.ID, UserID: alice.ID},
		{Permission: read.ID, UserID: bob.ID},
	} {
		m := m
		if _, err := repos.Memberships.Add(ctx, &m); err != nil {
			t.Fatalf("failed to add membership: %v", err)
		}
	}

	members, err := repos.Memberships.PermissionMembers(ctx, PermissionByName("read"))
	if err != nil {
		t.Fatalf("PermissionMembers failed: %v", err)
	}
	if diff := cmp.Diff([]db.User{*alice, *bob}, members); diff != "" {
		t.Fatalf("unexpected members (-want +got):\n%s", diff)
	}

	perms, err := repos.Memberships.UserPermissions(ctx, UserByEmail("alice@x.io"))
	if err != nil {
		t.Fatalf("UserPermissions failed: %v", err)
	}
	if diff := cmp.Diff([]db.Permission{*admin, *read}, perms); diff != "" {
		t.Fatalf("unexpected permissions (-want +got):\n%s", diff)
	}

	byUser, err := repos.Memberships.Get(ctx, MembershipByUser(bob.ID))
	if err != nil {
		t.Fatalf("Get by user failed: %v", err)
	}
	if len(byUser) != 1 || byUser[0].Permission != read.ID {
		t.Fatalf("unexpected memberships for bob: %+v", byUser)
	}

	_, err = repos.Memberships.Add(ctx, &db.PermissionMembership{Permission: 77, UserID: bob.ID})
	if kind := Translate(err); kind != KindInternal {
		t.Fatalf("expected Internal for unknown permission, got %s (%v)", kind, err)
	}
}
