package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nathmakers/storesrv/internal/db/models"
)

// The form codec is the second input codec next to the JSON API. It differs
// deliberately: optional text fields absent from a form post decode to the
// empty string, not to "no value", because that is what HTML forms submit.

func strPtr(s string) *string {
	return &s
}

func catalogueFromForm(r *http.Request) *models.Catalogue {
	return &models.Catalogue{
		Name:          r.FormValue("name"),
		Description:   strPtr(r.FormValue("description")),
		CoverImageURL: strPtr(r.FormValue("coverImageUrl")),
	}
}

func productFromForm(r *http.Request) *models.Product {
	catalogueID, _ := strconv.ParseUint(r.FormValue("catalogueId"), 10, 32)
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)

	p := &models.Product{
		CatalogueID: uint(catalogueID),
		ProductName: r.FormValue("productName"),
		Description: strPtr(r.FormValue("description")),
		Price:       price,
		Material:    strPtr(r.FormValue("material")),
		Weight:      strPtr(r.FormValue("weight")),
		IsAvailable: r.FormValue("isAvailable") != "",
	}
	p.SetImageURLs(splitImageURLs(r.FormValue("imageUrls")))
	return p
}

// splitImageURLs parses the one-URL-per-line textarea value.
func splitImageURLs(raw string) []string {
	urls := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
