package models

import (
	"github.com/samplestore/backend/internal/domain/identity"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	AggregateModel
	Email string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name  string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email: m.Email,
		Name:  m.Name,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// UserModelFromDomain converts a domain User to a persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	model := &UserModel{
		Email: u.Email,
		Name:  u.Name,
	}
	model.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return model
}
