package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
	StatusOnLeave = "on-leave"

	DefaultProject = "General"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusOnLeave:
		return true
	default:
		return false
	}
}

// Attendance is one (user, calendar day) record. TotalSeconds is derived from
// CheckOut - CheckIn and is never taken from input.
type Attendance struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_day,priority:1"`
	WorkDate     time.Time  `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_user_day,priority:2;index"`
	CheckIn      time.Time  `gorm:"column:check_in;type:timestamptz;not null"`
	CheckOut     *time.Time `gorm:"column:check_out;type:timestamptz;check:chk_attendance_checkout,check_out IS NULL OR check_out >= check_in"`
	TotalSeconds int64      `gorm:"column:total_seconds;not null;default:0"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:present"`
	Project      string     `gorm:"column:project;type:varchar(100);not null;default:General"`
	Notes        string     `gorm:"column:notes;type:text"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	User         *UserRef   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// recompute sets TotalSeconds to the whole seconds between check-in and check-out.
func (a *Attendance) recompute() {
	if a.CheckOut == nil {
		a.TotalSeconds = 0
		return
	}
	a.TotalSeconds = int64(a.CheckOut.Sub(a.CheckIn) / time.Second)
}

type UserRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"column:name"`
	Email string    `gorm:"column:email"`
}

func (UserRef) TableName() string {
	return "users"
}
