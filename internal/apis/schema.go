package apis

import (
	"time"

	"github.com/nathmakers/storesrv/internal/db/models"
)

// The request types below are the structured-JSON input codec. Optional
// fields absent from the payload stay nil, which is distinct from the
// form-encoded admin codec where absent means empty string.

// ProductFields are the caller-settable product fields shared by the
// top-level and catalogue-nested product payloads.
type ProductFields struct {
	ProductName string   `json:"productName" validate:"required"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Material    *string  `json:"material"`
	Weight      *string  `json:"weight"`
	ImageURLs   []string `json:"imageUrls"`
	IsAvailable *bool    `json:"isAvailable"`
}

type ProductRequest struct {
	CatalogueID uint `json:"catalogueId" validate:"required"`
	ProductFields
}

type CatalogueRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   *string         `json:"description"`
	CoverImageURL *string         `json:"coverImageUrl"`
	Products      []ProductFields `json:"products" validate:"dive"`
}

// Model converts the decoded fields into the shared entity representation.
// An absent availability flag defaults to available.
func (f *ProductFields) Model() models.Product {
	p := models.Product{
		ProductName: f.ProductName,
		Description: f.Description,
		Price:       f.Price,
		Material:    f.Material,
		Weight:      f.Weight,
		IsAvailable: true,
	}
	if f.IsAvailable != nil {
		p.IsAvailable = *f.IsAvailable
	}
	p.SetImageURLs(f.ImageURLs)
	return p
}

func (r *ProductRequest) Model() *models.Product {
	p := r.ProductFields.Model()
	p.CatalogueID = r.CatalogueID
	return &p
}

func (r *CatalogueRequest) Model() *models.Catalogue {
	c := &models.Catalogue{
		Name:          r.Name,
		Description:   r.Description,
		CoverImageURL: r.CoverImageURL,
	}
	for i := range r.Products {
		c.Products = append(c.Products, r.Products[i].Model())
	}
	return c
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	CatalogueID uint      `json:"catalogueId"`
	ProductName string    `json:"productName"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Material    *string   `json:"material"`
	Weight      *string   `json:"weight"`
	ImageURLs   []string  `json:"imageUrls"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CatalogueResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	CoverImageURL *string           `json:"coverImageUrl"`
	CreatedAt     time.Time         `json:"createdAt"`
	Products      []ProductResponse `json:"products,omitempty"`
}

type AdminRequest struct {
	Name string `json:"name" validate:"required"`
}

type AdminResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func productResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CatalogueID: p.CatalogueID,
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price,
		Material:    p.Material,
		Weight:      p.Weight,
		ImageURLs:   p.ImageURLList(),
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}

func catalogueResponse(c *models.Catalogue) CatalogueResponse {
	rsp := CatalogueResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		CoverImageURL: c.CoverImageURL,
		CreatedAt:     c.CreatedAt,
	}
	for i := range c.Products {
		rsp.Products = append(rsp.Products, productResponse(&c.Products[i]))
	}
	return rsp
}
