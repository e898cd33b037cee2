package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog maps to audit_logs. Rows are append-only.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey"                          json:"id"`
	UserID    *uint          `gorm:"index"                               json:"user_id"`
	Action    string         `gorm:"type:varchar(255);not null"          json:"action"`
	Table     string         `gorm:"column:table_name;type:varchar(255)" json:"table_name"`
	RecordID  *uint          `json:"record_id"`
	OldValues datatypes.JSON `json:"old_values"`
	NewValues datatypes.JSON `json:"new_values"`
	IPAddress *string        `gorm:"type:varchar(45)"                    json:"ip_address"`
	UserAgent *string        `gorm:"type:text"                           json:"user_agent"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime;index"       json:"created_at"`
}

// TableName table name.
func (AuditLog) TableName() string { return "audit_logs" }
