package types

import (
	"time"
)

type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	UserName  string    `gorm:"not null;column:user_name" json:"user_name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
