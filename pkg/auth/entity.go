package auth

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// Profile holds what a job seeker shows to recruiters.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
}

// User is a domain entity representing a portal account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CanApply reports whether the profile has a resume and at least one skill.
func (u User) CanApply() bool {
	return u.Profile.Resume != "" && len(u.Profile.Skills) > 0
}
