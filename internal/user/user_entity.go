package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}

type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password   string    `gorm:"column:password;type:text;not null"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:employee;index"`
	Phone      string    `gorm:"column:phone;type:varchar(50)"`
	Position   string    `gorm:"column:position;type:varchar(100)"`
	Department string    `gorm:"column:department;type:varchar(100)"`
	JoinDate   time.Time `gorm:"column:join_date;type:date;not null"`
	Address    string    `gorm:"column:address;type:text"`
	HourlyRate float64   `gorm:"column:hourly_rate;type:numeric(12,2);not null;default:0;check:chk_users_hourly_rate,hourly_rate >= 0"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
