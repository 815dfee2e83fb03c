package models

import "time"

const DefaultAvatar = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y"

type User struct {
	ID               string `json:"_id" bson:"_id,omitempty"`
	Name             string `json:"name" bson:"name"`
	OrganisationName string `json:"organisation_name,omitempty" bson:"organisation_name,omitempty"`
	Email            string `json:"email" bson:"email"`
	Avatar           string `json:"avatar" bson:"avatar"`

	// bcrypt hash, never serialized
	Password string `json:"-" bson:"password,omitempty"`
	Role     string `json:"role" bson:"role"`

	ForgotPasswordResetToken   string     `json:"-" bson:"forgot_password_reset_token,omitempty"`
	ForgotPasswordResetExpires *time.Time `json:"-" bson:"forgot_password_reset_expires,omitempty"`

	LastLoginAt time.Time `json:"last_login_at" bson:"last_login_at"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UserRef is the trimmed member shape embedded in project responses.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
