package dbmysql

import (
	"strings"
	"time"
)

// Moderation is embedded by every record a moderator can hide.
// Hidden is true exactly when BannedAt is set.
type Moderation struct {
	Hidden    bool       `gorm:"column:hidden;not null;default:false;index" json:"hidden"`
	BannedAt  *time.Time `gorm:"column:banned_at" json:"banned_at"`
	BanReason *string    `gorm:"column:ban_reason;type:text" json:"ban_reason"`
}

// State gives generic code access to the embedded moderation fields.
func (m *Moderation) State() *Moderation {
	return m
}

// Hide marks the record hidden at the given time. A blank reason keeps
// whatever reason was stored before.
func (m *Moderation) Hide(at time.Time, reason string) {
	m.Hidden = true
	m.BannedAt = &at
	if r := strings.TrimSpace(reason); r != "" {
		m.BanReason = &r
	}
}

// Show clears the hidden flag and all ban metadata.
func (m *Moderation) Show() {
	m.Hidden = false
	m.BannedAt = nil
	m.BanReason = nil
}
