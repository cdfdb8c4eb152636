package dbmysql

import (
	"time"
)

// Image kinds.
const (
	ImageKindProfile     = "profile"
	ImageKindPublication = "publication"
)

// Image is the metadata row of an uploaded picture. The bytes live in
// GridFS under StorageID.
type Image struct {
	ID            uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID        uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	PublicationID *uint64   `gorm:"column:publication_id;index" json:"publication_id,omitempty"`
	Kind          string    `gorm:"column:kind;size:20;not null" json:"kind"`
	Filename      string    `gorm:"column:filename;size:255" json:"filename"`
	MimeType      string    `gorm:"column:mime_type;size:100;not null" json:"mime_type"`
	Size          int64     `gorm:"column:size;not null" json:"size"`
	StorageID     string    `gorm:"column:storage_id;size:24;not null" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
