package model

// Admin is an owner account allowed to manage the roster and upload files
type Admin struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
