package domain

// Contact Model. Username is the foreign key to the owning User; only
// the first name is mandatory.
type Contact struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:100;not null;index"`
	FirstName string    `gorm:"size:100;not null"`
	LastName  *string   `gorm:"size:100"`
	Email     *string   `gorm:"size:100"`
	Phone     *string   `gorm:"size:20"`
	Addresses []Address `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE;"`
}
