package models

import (
	"time"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;type:varchar(100)"`
	Phone     string    `gorm:"not null;uniqueIndex;type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
	LastLogin time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		LastLogin: m.LastLogin,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Phone = u.Phone
	m.CreatedAt = u.CreatedAt
	m.LastLogin = u.LastLogin
}
