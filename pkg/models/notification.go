package models

import (
	"time"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
)

type Notification struct {
	ID        string                 `json:"id"`
	Message   string                 `json:"message"`
	Kind      enums.NotificationKind `json:"kind"`
	Timestamp time.Time              `json:"timestamp"`
}
