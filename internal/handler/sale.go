package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/pkg/response"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

type SaleHandler struct {
	service   SaleService
	validator *validator.Validate
}

func NewSaleHandler(service SaleService) *SaleHandler {
	return &SaleHandler{
		service:   service,
		validator: utils.NewValidator(),
	}
}

// Checkout handles POST /api/v1/sales
func (h *SaleHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, err)
		return
	}

	receipt, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, receipt)
}

// GetSale handles GET /api/v1/sales/{saleId}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.GetSale(r.Context(), mux.Vars(r)["saleId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, sale)
}
