package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
)

// User is an operator account. Admins and workers carry an assigned warehouse.
type User struct {
	ID                  string              `json:"id"`
	YNumber             string              `json:"y_number"`
	FullName            string              `json:"full_name"`
	Email               string              `json:"email"`
	Role                enums.Role          `json:"role"`
	AssignedWarehouseID string              `json:"assigned_warehouse_id,omitempty"`
	HourlyRate          decimal.NullDecimal `json:"hourly_rate"`
}

// Rate returns the hourly rate, or zero when none is set.
func (u User) Rate() decimal.Decimal {
	if !u.HourlyRate.Valid {
		return decimal.Zero
	}
	return u.HourlyRate.Decimal
}

func (u User) IsOwner() bool { return u.Role == enums.RoleOwner }
