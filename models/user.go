package models

import "time"

// User is a business-owner account. Customers book without an account.
type User struct {
	ID           string     `bson:"id" json:"id"`
	Email        string     `bson:"email" json:"email"`
	Name         string     `bson:"name" json:"name"`
	BusinessID   string     `bson:"business_id,omitempty" json:"business_id,omitempty"`
	Role         string     `bson:"role" json:"role"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required"`
	BusinessID string `json:"business_id"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Token is the authentication response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
