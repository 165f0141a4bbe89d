package db

// Tunnel is a GRE/VPN link configured on a router.
type Tunnel struct {
	ID           int32   `gorm:"column:id;primaryKey"`
	Version      int32   `gorm:"column:version;not null"`
	Router       int32   `gorm:"column:router;not null"`
	IP           string  `gorm:"column:ip;type:varchar;not null"`
	DynamicIP    bool    `gorm:"column:dynamic_ip;not null"`
	IPClass      int32   `gorm:"column:ip_class;not null"`
	Hostname     string  `gorm:"column:hostname;type:varchar;not null"`
	Description  string  `gorm:"column:description;type:varchar;not null"`
	Source       string  `gorm:"column:source;type:varchar;not null"`
	Cost         int32   `gorm:"column:cost;not null"`
	TunnelType   string  `gorm:"column:tunnel_type;type:varchar;not null"`
	TopologyType string  `gorm:"column:topology_type;type:varchar;not null"`
	RouterRef    *Router `gorm:"foreignKey:Router;references:ID"`
}

func (Tunnel) TableName() string {
	return "tunnels"
}
