package dbmysql

import (
	"time"
)

// Source types of a notification.
const (
	SourceComment     = "comment"
	SourcePublication = "publication"
)

// Notification tells a user that one of their records was moderated.
type Notification struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	SourceID   uint64    `gorm:"column:source_id;not null;index" json:"source_id"`
	SourceType string    `gorm:"column:source_type;size:20;not null" json:"source_type"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	Read       bool      `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
