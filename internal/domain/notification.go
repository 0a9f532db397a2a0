package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifOfficePendingApproval NotificationType = "office_pending_approval"
	NotifOfficeApproved        NotificationType = "office_approved"
	NotifOfficeRejected        NotificationType = "office_rejected"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
