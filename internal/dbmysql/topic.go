package dbmysql

type Topic struct {
	ID       uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;uniqueIndex;size:200;not null" json:"name"`
	EstadoID uint64 `gorm:"column:estado_id;not null;index" json:"estado_id"`
}
