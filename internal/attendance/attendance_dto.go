package attendance

import (
	"time"

	"go-attendance/internal/shared/timeutil"
)

type CheckInRequest struct {
	Project string `json:"project" binding:"omitempty,max=100"`
}

type CheckOutRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateRequest is the admin edit. Nil fields are left unchanged.
type UpdateRequest struct {
	Status   *string    `json:"status" binding:"omitempty,oneof=present absent half-day on-leave"`
	Project  *string    `json:"project" binding:"omitempty,min=1,max=100"`
	Notes    *string    `json:"notes"`
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Response struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"userId"`
	User               *UserSummary `json:"user,omitempty"`
	Date               string       `json:"date"`
	CheckIn            time.Time    `json:"checkIn"`
	CheckOut           *time.Time   `json:"checkOut"`
	TotalTimeInSeconds int64        `json:"totalTimeInSeconds"`
	Status             string       `json:"status"`
	Project            string       `json:"project"`
	Notes              string       `json:"notes,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

func ToResponse(a Attendance) Response {
	resp := Response{
		ID:                 a.ID.String(),
		UserID:             a.UserID.String(),
		Date:               a.WorkDate.Format(timeutil.DateLayout),
		CheckIn:            a.CheckIn,
		CheckOut:           a.CheckOut,
		TotalTimeInSeconds: a.TotalSeconds,
		Status:             a.Status,
		Project:            a.Project,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
	if a.User != nil {
		resp.User = &UserSummary{
			ID:    a.User.ID.String(),
			Name:  a.User.Name,
			Email: a.User.Email,
		}
	}
	return resp
}

func ToListResponse(rows []Attendance) []Response {
	out := make([]Response, len(rows))
	for i, a := range rows {
		out[i] = ToResponse(a)
	}
	return out
}
