package models

import "time"

// Order records a certificate purchase by a user. CertificateName and
// Cost are snapshots taken at purchase time: later certificate edits do
// not change past orders. Orders never change after creation.
type Order struct {
	// ID is the internal unique identifier of the order.
	ID int64 `json:"id"`

	// UserID is the owner of the order. An order always belongs to
	// exactly one user.
	UserID int64 `json:"user_id"`

	// CertificateID references the purchased certificate.
	CertificateID int64 `json:"certificate_id"`

	// CertificateName is the certificate name at purchase time.
	CertificateName string `json:"certificate_name"`

	// Cost equals the certificate price at the time of the order,
	// in minor currency units.
	Cost int64 `json:"cost"`

	// PurchaseDate is set by the database on insert.
	PurchaseDate time.Time `json:"purchase_date"`

	// Links holds the hypermedia next-action links for this order.
	Links []Link `json:"links,omitempty"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
