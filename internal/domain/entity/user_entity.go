package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt digest, never the plain text.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserView is the public projection of a User. It is what the API returns
// and what the cache stores.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View returns the projection of u without the password hash.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Ready reports whether u carries everything storage needs.
func (u *User) Ready() bool {
	return u.Name != "" && u.Email != "" && u.Password != ""
}
