package store

// lookup is the WHERE condition a key resolves to. column is always one of
// the constants below, never caller supplied.
type lookup struct {
	column string
	value  interface{}
	// unique keys match at most one row; an empty result is NotFound.
	unique bool
}

// Key selects rows of one entity by exactly one of its alternate keys.
type Key interface {
	lookup() lookup
}

type UserKey interface {
	Key
	userKey()
}

type (
	UserByID    int32
	UserByEmail string
)

func (k UserByID) lookup() lookup    { return lookup{column: "id", value: int32(k), unique: true} }
func (k UserByEmail) lookup() lookup { return lookup{column: "email", value: string(k), unique: true} }
func (UserByID) userKey()            {}
func (UserByEmail) userKey()         {}

type AgentKey interface {
	Key
	agentKey()
}

type (
	AgentByID    int32
	AgentByUUID  string
	AgentByOwner int32
)

func (k AgentByID) lookup() lookup    { return lookup{column: "id", value: int32(k), unique: true} }
func (k AgentByUUID) lookup() lookup  { return lookup{column: "uuid", value: string(k)} }
func (k AgentByOwner) lookup() lookup { return lookup{column: "owner", value: int32(k)} }
func (AgentByID) agentKey()           {}
func (AgentByUUID) agentKey()         {}
func (AgentByOwner) agentKey()        {}

type RouterKey interface {
	Key
	routerKey()
}

type (
	RouterByID    int32
	RouterByAgent int32
)

func (k RouterByID) lookup() lookup    { return lookup{column: "id", value: int32(k), unique: true} }
func (k RouterByAgent) lookup() lookup { return lookup{column: "agent", value: int32(k)} }
func (RouterByID) routerKey()          {}
func (RouterByAgent) routerKey()       {}

type TunnelKey interface {
	Key
	tunnelKey()
}

type (
	TunnelByID     int32
	TunnelByRouter int32
)

func (k TunnelByID) lookup() lookup     { return lookup{column: "id", value: int32(k), unique: true} }
func (k TunnelByRouter) lookup() lookup { return lookup{column: "router", value: int32(k)} }
func (TunnelByID) tunnelKey()           {}
func (TunnelByRouter) tunnelKey()       {}

type PermissionKey interface {
	Key
	permissionKey()
}

type (
	PermissionByID   int32
	PermissionByName string
)

func (k PermissionByID) lookup() lookup   { return lookup{column: "id", value: int32(k), unique: true} }
func (k PermissionByName) lookup() lookup { return lookup{column: "name", value: string(k), unique: true} }
func (PermissionByID) permissionKey()     {}
func (PermissionByName) permissionKey()   {}

type MembershipKey interface {
	Key
	membershipKey()
}

type (
	MembershipByID         int32
	MembershipByPermission int32
	MembershipByUser       int32
)

func (k MembershipByID) lookup() lookup {
	return lookup{column: "id", value: int32(k), unique: true}
}
func (k MembershipByPermission) lookup() lookup {
	return lookup{column: "permission", value: int32(k)}
}
func (k MembershipByUser) lookup() lookup {
	return lookup{column: "user_id", value: int32(k)}
}
func (MembershipByID) membershipKey()         {}
func (MembershipByPermission) membershipKey() {}
func (MembershipByUser) membershipKey()       {}
