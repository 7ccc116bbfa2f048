package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest lists the only fields an account may change on itself.
type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
	JoinDate   *string `json:"joinDate"`
}

type AdminRegisterRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Role       string   `json:"role" binding:"omitempty,oneof=admin employee"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	JoinDate   string   `json:"joinDate"`
	Address    string   `json:"address"`
	HourlyRate *float64 `json:"hourlyRate" binding:"omitempty,gte=0"`
	Status     string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type SessionUser struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
