package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents the users table
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:20;not null" json:"firstName"`
	LastName  string `gorm:"size:20;not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:30;default:'USER'" json:"role"`

	// One-time password-reset code, cleared after a successful reset
	VerificationCode      *string    `gorm:"size:10" json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`

	// Most recently issued session token (single-session model)
	Token *string `gorm:"size:512" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO, never carries the password hash or reset code
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// RoleRequest represents the role_requests table: a user's proposal to
// change their own role, subject to administrative approval.
type RoleRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	RequestContent string    `gorm:"size:30;not null" json:"requestContent"`
	Status         string    `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
}

func (RoleRequest) TableName() string {
	return "role_requests"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RoleRequest{},
	)
}
