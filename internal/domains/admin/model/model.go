package model

import "hotelier/config"

// Identity is the single administrator account. It is built from config at
// startup, there is no admin table.
type Identity struct {
	Name     string
	Role     string
	Username string
	Password string
}

func NewIdentity(cfg *config.Config) *Identity {
	return &Identity{
		Name:     cfg.Admin.Name,
		Role:     cfg.Admin.Role,
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}
}

// Login reports whether the given credentials match exactly.
func (i *Identity) Login(username, password string) bool {
	return username == i.Username && password == i.Password
}
