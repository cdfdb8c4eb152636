package dbmysql

import (
	"time"
)

type Publication struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;size:200;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL    *string   `gorm:"column:image_url;size:500" json:"image_url"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	TopicID     uint64    `gorm:"column:topic_id;not null;index" json:"topic_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Moderation
}

func (p *Publication) GetID() uint64             { return p.ID }
func (p *Publication) OwnerID() uint64           { return p.UserID }
func (p *Publication) ParentID() uint64          { return p.TopicID }
func (p *Publication) Body() string              { return p.Description }
func (p *Publication) SetBody(body string)       { p.Description = body }
func (p *Publication) SetCreatedAt(at time.Time) { p.CreatedAt = at }
