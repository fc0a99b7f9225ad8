package models

// User represents a registered account. Users are never mutated or deleted;
// their id is the stable identity referenced by images and embedded in tokens.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Password     string `gorm:"-" json:"password"`
}
