// User model definition
package auth

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type UpdateProfileRequest struct {
	UserName             string `json:"user_name"`
	PreferredTranslation string `json:"preferred_translation"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	PushPace             string `json:"push_pace"`
}

type User struct {
	ID                   int       `json:"id"`
	UserName             string    `json:"user_name,omitempty"`
	Email                string    `json:"email"`
	Password             string    `json:"-"`
	Role                 string    `json:"role"`
	PreferredTranslation string    `json:"preferred_translation,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	PushPace             string    `json:"push_pace,omitempty"`
	IsProfileCompleted   bool      `json:"is_profile_completed,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
	Token                string    `json:"token,omitempty"`
}
