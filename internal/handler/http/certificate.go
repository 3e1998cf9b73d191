package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/utils"
	"github.com/avolkova/gift-certificates/models"
)

func (h *Handler) createCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var certificate models.Certificate
	if err := json.NewDecoder(r.Body).Decode(&certificate); err != nil {
		log.Err(err).Str("func", "*Handler.createCertificate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CertificateService.Create(r.Context(), certificate); err != nil {
		log.Err(err).Str("func", "*Handler.createCertificate").Msg("error creating certificate")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, size, err := h.pagination(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCertificates").Msg("invalid pagination params")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	tagNames := r.URL.Query()[paramTagName]
	partName := r.URL.Query().Get(paramPartName)

	certificates, err := h.services.CertificateService.FindAll(r.Context(), tagNames, partName, page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCertificates").Msg("error listing certificates")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, certificates, http.StatusOK)
}

func (h *Handler) getCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCertificate").Msg("invalid certificate id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	certificate, err := h.services.CertificateService.FindByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCertificate").Msg("error fetching certificate")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, certificate, http.StatusOK)
}

func (h *Handler) patchCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchCertificate").Msg("invalid certificate id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	var patch models.CertificatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.patchCertificate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CertificateService.UpdateByID(r.Context(), id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchCertificate").Msg("error updating certificate")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteCertificate").Msg("invalid certificate id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.services.CertificateService.DeleteByID(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCertificate").Msg("error deleting certificate")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
