package domain

// User Model. Password holds only the bcrypt hash, never the plaintext;
// Token is the opaque session credential and is NULL while logged out.
type User struct {
	Username string    `gorm:"primaryKey;size:100"`
	Name     string    `gorm:"size:100;not null"`
	Password string    `gorm:"size:100;not null"`
	Token    *string   `gorm:"size:100"`
	Contacts []Contact `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE;"`
}
