package user

import "time"

// Response is the public view of an account; the password hash never leaves the store.
type Response struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	Position   string    `json:"position,omitempty"`
	Department string    `json:"department,omitempty"`
	JoinDate   string    `json:"joinDate,omitempty"`
	Address    string    `json:"address,omitempty"`
	HourlyRate float64   `json:"hourlyRate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToResponse(u User) Response {
	resp := Response{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Position:   u.Position,
		Department: u.Department,
		Address:    u.Address,
		HourlyRate: u.HourlyRate,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if !u.JoinDate.IsZero() {
		resp.JoinDate = u.JoinDate.Format("2006-01-02")
	}
	return resp
}

func ToListResponse(users []User) []Response {
	out := make([]Response, len(users))
	for i, u := range users {
		out[i] = ToResponse(u)
	}
	return out
}
