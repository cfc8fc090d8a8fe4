package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/pkg/response"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

type PayoutHandler struct {
	service   PayoutService
	validator *validator.Validate
}

func NewPayoutHandler(service PayoutService) *PayoutHandler {
	return &PayoutHandler{
		service:   service,
		validator: utils.NewValidator(),
	}
}

// GetSellerBalance handles GET /api/v1/sellers/{sellerId}/balance
func (h *PayoutHandler) GetSellerBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.GetSellerBalance(r.Context(), mux.Vars(r)["sellerId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, balance)
}

// CreatePayout handles POST /api/v1/sellers/{sellerId}/payouts
func (h *PayoutHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePayoutRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, err)
		return
	}

	payout, err := h.service.CreatePayout(r.Context(), mux.Vars(r)["sellerId"], &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, payout)
}
