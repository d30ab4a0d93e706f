package models

// ActionType tells consumers what happened to the user.
type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// UserEvent is published whenever a user is created, changed or removed.
type UserEvent struct {
	UserID      string     `json:"userId"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	UserStatus  UserStatus `json:"userStatus"`
	UserType    UserType   `json:"userType"`
	PhoneNumber string     `json:"phoneNumber"`
	Cpf         string     `json:"cpf"`
	ImageURL    string     `json:"imageUrl"`
	ActionType  ActionType `json:"actionType"`
}

// NewUserEvent copies the public fields of u into an event.
func NewUserEvent(u *User, action ActionType) UserEvent {
	return UserEvent{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		UserStatus:  u.UserStatus,
		UserType:    u.UserType,
		PhoneNumber: u.PhoneNumber,
		Cpf:         u.Cpf,
		ImageURL:    u.ImageURL,
		ActionType:  action,
	}
}
