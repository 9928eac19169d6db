// Package model defines the domain types shared across the range mapping engine.
package model

import (
	"strings"
	"time"
)

// CatalogProduct represents one row of the reference catalog. Products are
// immutable once loaded; the catalog index owns them and never mutates them
// after build.
type CatalogProduct struct {
	EndOfCommercialisation *time.Time `json:"end_of_commercialisation,omitempty"`
	EndOfService           *time.Time `json:"end_of_service,omitempty"`
	Identifier             string     `json:"identifier"`
	RangeLabel             string     `json:"range_label"`
	SubRangeLabel          string     `json:"sub_range_label"`
	Description            string     `json:"description"`
	CategoryCode           string     `json:"category_code"`
	Brand                  string     `json:"brand"`
	DeviceType             string     `json:"device_type"`
	CommercialStatus       string     `json:"commercial_status"`
}

// IsObsolete reports whether the product's lifecycle status marks it as no
// longer commercialized.
func (p *CatalogProduct) IsObsolete() bool {
	return StatusIsObsolete(p.CommercialStatus)
}

// IsActive reports whether the product's lifecycle status marks it as
// currently commercialized.
func (p *CatalogProduct) IsActive() bool {
	return StatusIsActive(p.CommercialStatus)
}

var obsoleteMarkers = []string{
	"OBSOLETE",
	"END OF LIFE",
	"END-OF-LIFE",
	"WITHDRAWN",
	"DISCONTINUED",
	"PHASE OUT",
}

var activeMarkers = []string{
	"COMMERCIALISED",
	"COMMERCIALIZED",
	"ACTIVE",
	"AVAILABLE",
}

// StatusIsObsolete reports whether a lifecycle status string indicates an
// obsolete or end-of-life product.
func StatusIsObsolete(status string) bool {
	return statusContainsAny(status, obsoleteMarkers)
}

// StatusIsActive reports whether a lifecycle status string indicates a
// currently commercialized product. Unknown statuses are neither obsolete
// nor active.
func StatusIsActive(status string) bool {
	return statusContainsAny(status, activeMarkers)
}

func statusContainsAny(status string, markers []string) bool {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "" {
		return false
	}
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
