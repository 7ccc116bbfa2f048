package employee

// UpdateEmployeeRequest is the admin edit; any account field may change.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=1"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Password   *string  `json:"password" binding:"omitempty,min=6"`
	Role       *string  `json:"role"`
	Phone      *string  `json:"phone"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	JoinDate   *string  `json:"joinDate"`
	Address    *string  `json:"address"`
	HourlyRate *float64 `json:"hourlyRate"`
	Status     *string  `json:"status"`
}

// Actor is the authenticated caller.
type Actor struct {
	ID   string
	Role string
}
