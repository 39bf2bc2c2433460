package model

import "time"

type Admin struct {
	IDAdmin   uint      `json:"idadmin" gorm:"column:idadmin;primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Mail      string    `json:"mail"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Admin) TableName() string {
	return "admin"
}
