package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetImageURLs(t *testing.T) {
	var p Product

	p.SetImageURLs(nil)
	assert.Equal(t, "[]", p.ImageURLs)

	p.SetImageURLs([]string{"https://img.example/a.jpg", "https://img.example/b.jpg"})
	assert.Equal(t, `["https://img.example/a.jpg","https://img.example/b.jpg"]`, p.ImageURLs)
}

func TestImageURLList(t *testing.T) {
	cases := []struct {
		name   string
		stored string
		want   []string
	}{
		{"empty blob", "", []string{}},
		{"empty array", "[]", []string{}},
		{"json null", "null", []string{}},
		{"malformed", "{broken", []string{}},
		{"wrong type", `{"a":1}`, []string{}},
		{"ordered", `["x","y","z"]`, []string{"x", "y", "z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{ImageURLs: tc.stored}
			assert.Equal(t, tc.want, p.ImageURLList())
		})
	}
}
