package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCoAdmin UserRole = "co-admin"
	RoleStudent UserRole = "student"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'student'"`
	Phone        string    `json:"phone"`
	Active       bool      `json:"active" gorm:"default:true"`
	JoiningDate  string    `json:"joining_date"`
	Shifts       string    `json:"shifts"` // comma-separated shift names, e.g. "Morning,Evening"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
