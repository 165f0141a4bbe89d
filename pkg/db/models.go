package db

// User is an account. Password holds a bcrypt hash, empty when none was set.
type User struct {
	ID       int32  `gorm:"column:id;primaryKey"`
	Email    string `gorm:"column:email;type:varchar;not null;uniqueIndex"`
	Password string `gorm:"column:password;type:varchar;not null"`
}

func (User) TableName() string {
	return "users"
}

// Agent is a management endpoint owned by a user.
type Agent struct {
	ID          int32  `gorm:"column:id;primaryKey"`
	UUID        string `gorm:"column:uuid;type:varchar;not null"`
	Description string `gorm:"column:description;type:varchar;not null"`
	Owner       int32  `gorm:"column:owner;not null"`
	OwnerRef    *User  `gorm:"foreignKey:Owner;references:ID"`
}

func (Agent) TableName() string {
	return "agents"
}

// Router is a network device reached through an agent.
type Router struct {
	ID            int32   `gorm:"column:id;primaryKey"`
	Agent         int32   `gorm:"column:agent;not null"`
	SnmpCommunity *string `gorm:"column:snmp_community;type:varchar"`
	SSHUsername   *string `gorm:"column:ssh_username;type:varchar"`
	SSHPassword   *string `gorm:"column:ssh_password;type:varchar"`
	ConnType      *string `gorm:"column:conn_type;type:varchar"`
	RouterType    *string `gorm:"column:router_type;type:varchar"`
	AgentRef      *Agent  `gorm:"foreignKey:Agent;references:ID"`
}

func (Router) TableName() string {
	return "routers"
}

type Permission struct {
	ID          int32  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;type:varchar;not null;uniqueIndex"`
	Description string `gorm:"column:description;type:varchar;not null"`
}

func (Permission) TableName() string {
	return "permissions"
}

// PermissionMembership grants a permission to a user.
type PermissionMembership struct {
	ID            int32       `gorm:"column:id;primaryKey"`
	Permission    int32       `gorm:"column:permission;not null"`
	UserID        int32       `gorm:"column:user_id;not null"`
	PermissionRef *Permission `gorm:"foreignKey:Permission;references:ID"`
	UserRef       *User       `gorm:"foreignKey:UserID;references:ID"`
}

func (PermissionMembership) TableName() string {
	return "permission_membership"
}

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Permission{},
		&Agent{},
		&Router{},
		&Tunnel{},
		&PermissionMembership{},
	}
}
