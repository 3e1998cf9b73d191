package validators

import (
	"testing"

	"github.com/avolkova/gift-certificates/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCertificate() models.Certificate {
	return models.Certificate{
		Name:        "Yoga",
		Description: "Ten yoga classes",
		Price:       4990,
		Duration:    90,
	}
}

func TestValidateCertificate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Certificate)
		wantErr error
	}{
		{name: "success: all invariants hold", mutate: func(c *models.Certificate) {}},
		{name: "success: zero price is allowed", mutate: func(c *models.Certificate) { c.Price = 0 }},
		{name: "error: empty name", mutate: func(c *models.Certificate) { c.Name = "" }, wantErr: ErrEmptyCertificateName},
		{name: "error: negative price", mutate: func(c *models.Certificate) { c.Price = -1 }, wantErr: ErrNegativePrice},
		{name: "error: zero duration", mutate: func(c *models.Certificate) { c.Duration = 0 }, wantErr: ErrNonPositiveDuration},
		{name: "error: negative duration", mutate: func(c *models.Certificate) { c.Duration = -30 }, wantErr: ErrNonPositiveDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCertificate()
			tt.mutate(&c)

			err := ValidateCertificate(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "success", user: models.User{Login: "john", Name: "John"}},
		{name: "error: empty login", user: models.User{Name: "John"}, wantErr: ErrEmptyUserLogin},
		{name: "error: empty name", user: models.User{Login: "john"}, wantErr: ErrEmptyUserName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.user)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
