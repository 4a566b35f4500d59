package models

import "github.com/angelmondragon/factoryops-backend/pkg/enums"

type Customer struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Type          enums.CustomerType `json:"type"`
	ContactPerson string             `json:"contact_person"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
}
