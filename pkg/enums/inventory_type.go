package enums

// InventoryType classifies stock by production stage.
type InventoryType string

const (
	InventoryTypeRawMaterial  InventoryType = "raw_material"
	InventoryTypeWIP          InventoryType = "wip"
	InventoryTypeFinishedGood InventoryType = "finished_good"
	InventoryTypeWaste        InventoryType = "waste"
)

var validInventoryTypes = []InventoryType{
	InventoryTypeRawMaterial,
	InventoryTypeWIP,
	InventoryTypeFinishedGood,
	InventoryTypeWaste,
}

func (i InventoryType) String() string { return string(i) }

func (i InventoryType) IsValid() bool { return isOneOf(validInventoryTypes, i) }

func ParseInventoryType(value string) (InventoryType, error) {
	return parseOneOf("inventory type", validInventoryTypes, value)
}
