package domain

// Address Model. ContactID is the foreign key to the owning Contact;
// only the country is mandatory.
type Address struct {
	ID         uint    `gorm:"primaryKey"`
	ContactID  uint    `gorm:"not null;index"`
	Street     *string `gorm:"size:255"`
	City       *string `gorm:"size:100"`
	Province   *string `gorm:"size:100"`
	PostalCode *string `gorm:"size:10"`
	Country    string  `gorm:"size:100;not null"`
}
