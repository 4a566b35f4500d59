package enums

// Role is the operator role that gates visibility and management rights.
type Role string

const (
	RoleOwner          Role = "owner"
	RoleWarehouseAdmin Role = "warehouse_admin"
	RoleWorker         Role = "worker"
)

var validRoles = []Role{
	RoleOwner,
	RoleWarehouseAdmin,
	RoleWorker,
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return isOneOf(validRoles, r) }

func ParseRole(value string) (Role, error) { return parseOneOf("role", validRoles, value) }
