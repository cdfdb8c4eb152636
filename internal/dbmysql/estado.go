package dbmysql

// Estado is a named lifecycle state referenced by topics.
type Estado struct {
	ID   uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;size:100;not null" json:"name"`
}
