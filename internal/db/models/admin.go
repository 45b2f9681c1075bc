package models

// Admin is a named administrator record. It carries no authorization
// semantics; admin access is gated by the shared secret, not by rows in this
// table.
type Admin struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (Admin) TableName() string {
	return "admins"
}
