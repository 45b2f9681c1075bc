package models

import (
	"encoding/json"
	"time"
)

// Product is a sellable item belonging to exactly one catalogue.
//
// ImageURLs is stored as a single JSON-serialized text blob and rehydrated to
// an ordered slice on every read. Weight is free-form text, not a parsed
// number.
type Product struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	CatalogueID uint      `gorm:"column:catalogueId;not null"`
	ProductName string    `gorm:"column:productName;not null"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price;not null"`
	Material    *string   `gorm:"column:material"`
	Weight      *string   `gorm:"column:weight"`
	ImageURLs   string    `gorm:"column:imageUrls;type:text"`
	IsAvailable bool      `gorm:"column:isAvailable;not null"`
	CreatedAt   time.Time `gorm:"column:createdAt"`
}

func (Product) TableName() string {
	return "product"
}

// ImageURLList decodes the stored image-URL blob. An absent or malformed blob
// decodes to an empty slice, never an error: rows written by older revisions
// may hold arbitrary text.
func (p *Product) ImageURLList() []string {
	if p.ImageURLs == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(p.ImageURLs), &urls); err != nil || urls == nil {
		return []string{}
	}
	return urls
}

// SetImageURLs serializes urls into the stored text representation. A nil
// slice serializes as the empty sequence.
func (p *Product) SetImageURLs(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		p.ImageURLs = "[]"
		return
	}
	p.ImageURLs = string(b)
}
