package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SessionUser struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Email  *string `json:"email"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
