package dto

import "time"

type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCreateDTO struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email,max=120"`
}

type UserUpdateDTO struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=80"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
}
