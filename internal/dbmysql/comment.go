package dbmysql

import (
	"time"
)

type Comment struct {
	ID            uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	UserID        uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	PublicationID uint64    `gorm:"column:publication_id;not null;index" json:"publication_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Moderation
}

func (c *Comment) GetID() uint64             { return c.ID }
func (c *Comment) OwnerID() uint64           { return c.UserID }
func (c *Comment) ParentID() uint64          { return c.PublicationID }
func (c *Comment) Body() string              { return c.Content }
func (c *Comment) SetBody(body string)       { c.Content = body }
func (c *Comment) SetCreatedAt(at time.Time) { c.CreatedAt = at }
