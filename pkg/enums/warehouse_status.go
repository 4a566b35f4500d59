package enums

// WarehouseStatus tracks whether a warehouse accepts stock and attendance writes.
type WarehouseStatus string

const (
	WarehouseStatusActive   WarehouseStatus = "active"
	WarehouseStatusDisabled WarehouseStatus = "disabled"
)

var validWarehouseStatuses = []WarehouseStatus{
	WarehouseStatusActive,
	WarehouseStatusDisabled,
}

func (w WarehouseStatus) String() string { return string(w) }

func (w WarehouseStatus) IsValid() bool { return isOneOf(validWarehouseStatuses, w) }

func ParseWarehouseStatus(value string) (WarehouseStatus, error) {
	return parseOneOf("warehouse status", validWarehouseStatuses, value)
}
