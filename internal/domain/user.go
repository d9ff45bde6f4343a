package domain

import "github.com/google/uuid"

type User struct {
	Id       UserId
	Name     string
	Email    Email
	PassHash string // opaque to the core; hashing belongs to the auth boundary
	Boards   []BoardId
}

func NewUser(name string, email Email, passHash string) *User {
	return &User{
		Id:       uuid.New(),
		Name:     name,
		Email:    email,
		PassHash: passHash,
		Boards:   []BoardId{},
	}
}
