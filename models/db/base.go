package dbmodels

import (
	"time"
)

// BaseModel общие поля записей. id генерируется на стороне postgres (uuid-ossp)
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
