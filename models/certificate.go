package models

import "time"

// Certificate represents a gift certificate offered for purchase.
// Price is stored in minor currency units, Duration in days of validity.
//
// Invariants enforced on create and after every partial update:
// Name is non-empty, Price >= 0, Duration > 0.
type Certificate struct {
	// ID is the internal unique identifier of the certificate.
	ID int64 `json:"id"`

	// Name is the unique display name among active certificates.
	Name string `json:"name"`

	// Description is an optional free-form text shown to buyers.
	Description string `json:"description"`

	// Price is the certificate price in minor currency units.
	Price int64 `json:"price"`

	// Duration is the validity period in days after purchase.
	Duration int `json:"duration"`

	// CreateDate is set by the database on insert.
	CreateDate time.Time `json:"create_date"`

	// LastUpdateDate is bumped by the database on every update.
	LastUpdateDate time.Time `json:"last_update_date"`

	// Tags is the set of tags associated with the certificate.
	// Tag names are unique within the set.
	Tags []Tag `json:"tags"`

	// Links holds the hypermedia next-action links for this certificate.
	// Derived on the way out of the API; never persisted.
	Links []Link `json:"links,omitempty"`
}

// TableName returns the name of the database table
// associated with the Certificate model.
func (c Certificate) TableName() string {
	return "certificates"
}

// CertificatePatch represents a partial update of a certificate.
// Only non-nil fields are applied (merge-patch semantics); a nil Tags
// slice leaves the tag set unchanged, an empty non-nil slice clears it.
type CertificatePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Tags        []Tag   `json:"tags,omitempty"`
}

// Apply returns a copy of c with every present patch field overriding
// the prior value. The receiver's certificate is never mutated.
func (p CertificatePatch) Apply(c Certificate) Certificate {
	merged := c

	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	if p.Duration != nil {
		merged.Duration = *p.Duration
	}
	if p.Tags != nil {
		merged.Tags = p.Tags
	}

	return merged
}

// IsEmpty reports whether the patch carries no fields at all.
// An empty patch applied to a certificate is a no-op.
func (p CertificatePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Duration == nil && p.Tags == nil
}
