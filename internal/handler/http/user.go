package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/utils"
	"github.com/avolkova/gift-certificates/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.signup").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Signup(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signup").Msg("error registering user")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("id", created.ID).Msg("user successfully registered")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, size, err := h.pagination(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("invalid pagination params")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	users, err := h.services.UserService.FindAll(r.Context(), page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) listUsersByMostCost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, size, err := h.pagination(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsersByMostCost").Msg("invalid pagination params")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	users, err := h.services.UserService.FindByMostCost(r.Context(), page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsersByMostCost").Msg("error listing users by spend")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("invalid user id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	user, err := h.services.UserService.FindByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("error fetching user")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUserOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserOrder").Msg("invalid user id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	orderID, err := idParam(r, "orderId")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserOrder").Msg("invalid order id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	order, err := h.services.OrderService.FindByUserID(r.Context(), userID, orderID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserOrder").Msg("error fetching order")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := idParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUserOrders").Msg("invalid user id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	page, size, err := h.pagination(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUserOrders").Msg("invalid pagination params")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	orders, err := h.services.OrderService.FindAllByUserID(r.Context(), userID, page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUserOrders").Msg("error listing orders")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}
