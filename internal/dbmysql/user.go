package dbmysql

import (
	"time"
)

// Seeded role ids.
const (
	RoleAdministrator uint64 = 1
	RoleUser          uint64 = 2
)

type Role struct {
	ID   uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;size:50;not null" json:"name"`
}

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	Phone        string    `gorm:"column:phone;size:20" json:"phone"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	RoleID       uint64    `gorm:"column:role_id;not null;index" json:"role_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
