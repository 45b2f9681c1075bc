package models

import (
	"time"
)

// Catalogue is a named grouping of products. Deleting a catalogue removes
// every product that references it.
//
// Column names are camelCase to stay compatible with the schema the previous
// deployments created.
type Catalogue struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Description   *string   `gorm:"column:description"`
	CoverImageURL *string   `gorm:"column:coverImageUrl"`
	CreatedAt     time.Time `gorm:"column:createdAt"`

	Products []Product `gorm:"foreignKey:CatalogueID;constraint:OnDelete:CASCADE"`
}

func (Catalogue) TableName() string {
	return "catalogue"
}
