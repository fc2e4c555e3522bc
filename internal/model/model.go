package model

import (
	"time"
)

type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Models 需要自动迁移的模型，被引用的表在前
func Models() []any {
	return []any{
		&Camper{},
		&Activity{},
		&Signup{},
	}
}
