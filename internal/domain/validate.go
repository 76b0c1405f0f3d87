package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ProductForm is raw product input as entered by the operator.
type ProductForm struct {
	Name      string
	UnitPrice string
	ImageURL  string
}

// Validate checks the form field by field and returns the cleaned payload.
// It runs before any network call; a failure surfaces immediately as a
// ValidationError naming every offending field.
func (f ProductForm) Validate() (ProductInput, error) {
	fields := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		fields["name"] = "product name is required"
	case len(name) < 2:
		fields["name"] = "product name must be at least 2 characters"
	}

	var price float64
	if f.UnitPrice == "" {
		fields["unit_price"] = "unit price is required"
	} else {
		parsed, err := strconv.ParseFloat(f.UnitPrice, 64)
		switch {
		case err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0):
			fields["unit_price"] = "unit price must be a valid number"
		case parsed <= 0:
			fields["unit_price"] = "unit price must be positive"
		default:
			price = parsed
		}
	}

	image := strings.TrimSpace(f.ImageURL)
	if image == "" {
		fields["image_url"] = "image URL is required"
	} else if u, err := url.Parse(image); err != nil || u.Scheme == "" || u.Host == "" {
		fields["image_url"] = "image URL must be a valid URL"
	}

	if len(fields) > 0 {
		return ProductInput{}, &ValidationError{Fields: fields}
	}
	return ProductInput{Name: name, UnitPrice: price, ImageURL: image}, nil
}
