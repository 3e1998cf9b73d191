package validators

import "github.com/avolkova/gift-certificates/models"

// ValidateCertificate checks the certificate invariants: non-empty name,
// non-negative price, positive duration. It is applied to new
// certificates and to the merged value after a partial update.
//
// Returns the first violated invariant or nil.
func ValidateCertificate(c models.Certificate) error {
	if c.Name == "" {
		return ErrEmptyCertificateName
	}
	if c.Price < 0 {
		return ErrNegativePrice
	}
	if c.Duration <= 0 {
		return ErrNonPositiveDuration
	}

	return nil
}

// ValidateUser checks the user invariants on signup: non-empty login and
// non-empty display name.
func ValidateUser(u models.User) error {
	if u.Login == "" {
		return ErrEmptyUserLogin
	}
	if u.Name == "" {
		return ErrEmptyUserName
	}

	return nil
}
