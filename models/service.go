package models

import "time"

// Service is something a business offers for booking. Duration is in minutes
// and, together with the price, is snapshotted onto appointments at booking
// time; later edits never touch existing appointments.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"business_id" json:"business_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ServiceCreate is the payload for creating or updating a service.
type ServiceCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}
