// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package service

import (
	"context"

	"github.com/avolkova/gift-certificates/internal/links"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/store"
	"github.com/avolkova/gift-certificates/internal/validators"
	"github.com/avolkova/gift-certificates/models"
)

type certificateService struct {
	certificateRepository store.CertificateRepository
	links                 *links.Provider

	logger *logger.Logger
}

func NewCertificateService(certificateRepository store.CertificateRepository, linkProvider *links.Provider, logger *logger.Logger) CertificateService {
	return &certificateService{
		certificateRepository: certificateRepository,
		links:                 linkProvider,
		logger:                logger,
	}
}

// Create checks the certificate invariants and persists the new
// certificate. Validation failure means the store is never invoked.
func (s *certificateService) Create(ctx context.Context, certificate models.Certificate) error {
	if err := validators.ValidateCertificate(certificate); err != nil {
		return err
	}

	_, err := s.certificateRepository.Create(ctx, certificate)
	return err
}

// FindAll validates pagination, delegates the filtered query to the
// store, and enriches every result in the original order.
func (s *certificateService) FindAll(ctx context.Context, tagNames []string, partName string, page, size int) ([]models.Certificate, error) {
	if err := validators.ValidatePagination(page, size); err != nil {
		return nil, err
	}

	certificates, err := s.certificateRepository.FindAll(ctx, store.CertificateFilter{
		TagNames: tagNames,
		PartName: partName,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	for i := range certificates {
		certificates[i] = s.links.Certificate(certificates[i])
	}

	return certificates, nil
}

func (s *certificateService) FindByID(ctx context.Context, id int64) (models.Certificate, error) {
	if err := validators.ValidateID(id); err != nil {
		return models.Certificate{}, err
	}

	certificate, err := s.certificateRepository.FindByID(ctx, id)
	if err != nil {
		return models.Certificate{}, err
	}

	return s.links.Certificate(certificate), nil
}

// UpdateByID applies merge-patch semantics: load an immutable snapshot,
// compute the merged value, re-validate the invariants, then perform a
// single atomic write. No shared mutable intermediate state is visible
// to concurrent callers.
//
// An empty patch short-circuits after the snapshot load so a no-op
// update returns the entity unchanged, links included.
func (s *certificateService) UpdateByID(ctx context.Context, id int64, patch models.CertificatePatch) (models.Certificate, error) {
	if err := validators.ValidateID(id); err != nil {
		return models.Certificate{}, err
	}

	snapshot, err := s.certificateRepository.FindByID(ctx, id)
	if err != nil {
		return models.Certificate{}, err
	}

	if patch.IsEmpty() {
		return s.links.Certificate(snapshot), nil
	}

	merged := patch.Apply(snapshot)
	if err := validators.ValidateCertificate(merged); err != nil {
		return models.Certificate{}, err
	}

	updated, err := s.certificateRepository.Update(ctx, merged, patch.Tags != nil)
	if err != nil {
		return models.Certificate{}, err
	}

	return s.links.Certificate(updated), nil
}

// DeleteByID removes the certificate and its tag associations. A repeat
// call for the same id propagates the store's not-found error: deletion
// succeeds at most once.
func (s *certificateService) DeleteByID(ctx context.Context, id int64) error {
	if err := validators.ValidateID(id); err != nil {
		return err
	}

	return s.certificateRepository.Delete(ctx, id)
}
