package store

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	UserEmail    Column = "email"
	UserPassword Column = "password"

	AgentUUID        Column = "uuid"
	AgentDescription Column = "description"
	AgentOwner       Column = "owner"

	RouterAgent         Column = "agent"
	RouterSnmpCommunity Column = "snmp_community"
	RouterSSHUsername   Column = "ssh_username"
	RouterSSHPassword   Column = "ssh_password"
	RouterConnType      Column = "conn_type"
	RouterRouterType    Column = "router_type"

	TunnelVersion      Column = "version"
	TunnelRouter       Column = "router"
	TunnelIP           Column = "ip"
	TunnelDynamicIP    Column = "dynamic_ip"
	TunnelIPClass      Column = "ip_class"
	TunnelHostname     Column = "hostname"
	TunnelDescription  Column = "description"
	TunnelSource       Column = "source"
	TunnelCost         Column = "cost"
	TunnelTunnelType   Column = "tunnel_type"
	TunnelTopologyType Column = "topology_type"

	PermissionName        Column = "name"
	PermissionDescription Column = "description"

	MembershipPermission Column = "permission"
	MembershipUserID     Column = "user_id"
)

var (
	Users = Entity{
		Name:    "user",
		Columns: []Column{UserEmail, UserPassword},
	}
	Agents = Entity{
		Name:    "agent",
		Columns: []Column{AgentUUID, AgentDescription, AgentOwner},
	}
	Routers = Entity{
		Name: "router",
		Columns: []Column{
			RouterAgent, RouterSnmpCommunity, RouterSSHUsername,
			RouterSSHPassword, RouterConnType, RouterRouterType,
		},
	}
	Tunnels = Entity{
		Name: "tunnel",
		Columns: []Column{
			TunnelVersion, TunnelRouter, TunnelIP, TunnelDynamicIP,
			TunnelIPClass, TunnelHostname, TunnelDescription, TunnelSource,
			TunnelCost, TunnelTunnelType, TunnelTopologyType,
		},
	}
	Permissions = Entity{
		Name:    "permission",
		Columns: []Column{PermissionName, PermissionDescription},
	}
	PermissionMemberships = Entity{
		Name:    "permission membership",
		Columns: []Column{MembershipPermission, MembershipUserID},
	}
)

type (
	UserRepository       = Repository[db.User, UserKey]
	AgentRepository      = Repository[db.Agent, AgentKey]
	RouterRepository     = Repository[db.Router, RouterKey]
	TunnelRepository     = Repository[db.Tunnel, TunnelKey]
	PermissionRepository = Repository[db.Permission, PermissionKey]
)

// MembershipRepository adds the user/permission join queries to the
// permission_membership table.
type MembershipRepository struct {
	*Repository[db.PermissionMembership, MembershipKey]
}

// PermissionMembers returns the users holding the permission selected by key.
func (r *MembershipRepository) PermissionMembers(ctx context.Context, key PermissionKey) ([]db.User, error) {
	l := key.lookup()
	users := []db.User{}
	err := r.db.WithContext(ctx).
		Distinct("users.*").
		Joins("JOIN permission_membership ON permission_membership.user_id = users.id").
		Joins("JOIN permissions ON permissions.id = permission_membership.permission").
		Where(clause.Eq{Column: clause.Column{Table: "permissions", Name: l.column}, Value: l.value}).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permission members")
	}
	return users, nil
}

// UserPermissions returns the permissions granted to the user selected by key.
func (r *MembershipRepository) UserPermissions(ctx context.Context, key UserKey) ([]db.Permission, error) {
	l := key.lookup()
	permissions := []db.Permission{}
	err := r.db.WithContext(ctx).
		Distinct("permissions.*").
		Joins("JOIN permission_membership ON permission_membership.permission = permissions.id").
		Joins("JOIN users ON users.id = permission_membership.user_id").
		Where(clause.Eq{Column: clause.Column{Table: "users", Name: l.column}, Value: l.value}).
		Order("permissions.id").
		Find(&permissions).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user permissions")
	}
	return permissions, nil
}

// Repositories bundles one repository per table over a shared pool.
type Repositories struct {
	Users       *UserRepository
	Agents      *AgentRepository
	Routers     *RouterRepository
	Tunnels     *TunnelRepository
	Permissions *PermissionRepository
	Memberships *MembershipRepository
}

func NewRepositories(gormDB *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewRepository[db.User, UserKey](gormDB, Users),
		Agents:      NewRepository[db.Agent, AgentKey](gormDB, Agents),
		Routers:     NewRepository[db.Router, RouterKey](gormDB, Routers),
		Tunnels:     NewRepository[db.Tunnel, TunnelKey](gormDB, Tunnels),
		Permissions: NewRepository[db.Permission, PermissionKey](gormDB, Permissions),
		Memberships: &MembershipRepository{
			Repository: NewRepository[db.PermissionMembership, MembershipKey](gormDB, PermissionMemberships),
		},
	}
}
