package models

import "time"

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

// UserType is the role a user plays on the platform.
type UserType string

const (
	UserTypeAdmin      UserType = "ADMIN"
	UserTypeStudent    UserType = "STUDENT"
	UserTypeInstructor UserType = "INSTRUCTOR"
)

// User represents a registered platform user.
type User struct {
	UserID         string     `json:"userId" gorm:"primaryKey;type:varchar(36)"`
	Username       string     `json:"username" gorm:"uniqueIndex;type:varchar(255);not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password       string     `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	FullName       string     `json:"fullName" gorm:"type:varchar(150)"`
	UserStatus     UserStatus `json:"userStatus" gorm:"type:varchar(20);not null"`
	UserType       UserType   `json:"userType" gorm:"type:varchar(20);not null"`
	PhoneNumber    string     `json:"phoneNumber" gorm:"type:varchar(20)"`
	Cpf            string     `json:"cpf" gorm:"type:varchar(20)"`
	ImageURL       string     `json:"imageUrl" gorm:"column:image_url"`
	CreationDate   time.Time  `json:"creationDate" gorm:"not null"`
	LastUpdateDate time.Time  `json:"lastUpdateDate" gorm:"not null"`
}

// TableName overrides the gorm default.
func (User) TableName() string { return "tb_users" }

// RegistrationRequest is the payload of POST /auth/signup.
type RegistrationRequest struct {
	Username    string `json:"username" validate:"required,usernameconstraint"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Cpf         string `json:"cpf"`
}

// ProfileUpdateRequest is the payload of PUT /users/:userId.
type ProfileUpdateRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Cpf         string `json:"cpf"`
}

// PasswordUpdateRequest is the payload of PUT /users/:userId/password.
type PasswordUpdateRequest struct {
	Password    string `json:"password" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
}

// ImageUpdateRequest is the payload of PUT /users/:userId/image.
type ImageUpdateRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}
