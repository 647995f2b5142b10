package models

import "github.com/isprava/concierge/ent"

// GoogleLoginRequest carries the verified Google profile forwarded by the
// frontend after the OAuth dance completes.
type GoogleLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserView is the API representation of a staff user.
type UserView struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	ACLs  []string `json:"acls"`
	Admin bool     `json:"admin"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// NewUserView converts an ent staff user to its API representation.
func NewUserView(u *ent.StaffUser) UserView {
	acls := u.Acls
	if acls == nil {
		acls = []string{}
	}
	return UserView{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		ACLs:  acls,
		Admin: u.Admin,
	}
}
