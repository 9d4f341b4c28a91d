package domain

import "time"

// User is the domain model for shop customers.
type User struct {
	ID           string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the password-free projection of a user, safe to hand to any
// caller that only needs identity attributes.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile strips credential material from a user record.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
