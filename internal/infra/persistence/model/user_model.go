// Package model holds the GORM-specific structs mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. Identifiers are integer sequences
// assigned by the database.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(50);not null"`
	BirthDate time.Time `gorm:"not null"`
	ProfileID int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table, seeded reference data.
type ProfileModel struct {
	ID         int64  `gorm:"primaryKey"`
	Role       string `gorm:"type:varchar(50);not null"`
	Permission int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
