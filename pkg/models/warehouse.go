package models

import "github.com/angelmondragon/factoryops-backend/pkg/enums"

type Warehouse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Location    string                `json:"location"`
	Status      enums.WarehouseStatus `json:"status"`
	WorkerCount int                   `json:"worker_count"`
}

func (w Warehouse) IsActive() bool { return w.Status == enums.WarehouseStatusActive }
