package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/segyhp/consignment-engine/internal/domain"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
	"github.com/segyhp/consignment-engine/pkg/response"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

type RentalHandler struct {
	service   RentalService
	validator *validator.Validate
}

func NewRentalHandler(service RentalService) *RentalHandler {
	return &RentalHandler{
		service:   service,
		validator: utils.NewValidator(),
	}
}

// QuotePeriod handles POST /api/v1/rentals/quote
func (h *RentalHandler) QuotePeriod(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRentalRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, err)
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		response.FromError(w, customError.WrapValidation("%v", err))
		return
	}

	period, err := h.service.QuotePeriod(r.Context(), start, req.OpenDays)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, domain.RentalPeriodResponse{
		StartDate:         utils.FormatDate(period.StartDate),
		EndDate:           utils.FormatDate(period.EndDate),
		RequestedOpenDays: period.RequestedOpenDays,
		CalendarDaySpan:   period.CalendarDaySpan,
	})
}

// CountOpenDays handles GET /api/v1/open-days/count?start=&end=
func (h *RentalHandler) CountOpenDays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := utils.ParseDate(query.Get("start"))
	if err != nil {
		response.FromError(w, customError.WrapValidation("start: %v", err))
		return
	}
	end, err := utils.ParseDate(query.Get("end"))
	if err != nil {
		response.FromError(w, customError.WrapValidation("end: %v", err))
		return
	}

	response.Success(w, domain.OpenDaysCountResponse{
		StartDate: utils.FormatDate(start),
		EndDate:   utils.FormatDate(end),
		OpenDays:  h.service.CountOpenDays(r.Context(), start, end),
	})
}

// CreateRental handles POST /api/v1/rentals
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRentalRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, err)
		return
	}

	rental, err := h.service.CreateRental(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, rental)
}

// GetRental handles GET /api/v1/rentals/{rentalId}
func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.service.GetRental(r.Context(), mux.Vars(r)["rentalId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, rental)
}

// ListSellerRentals handles GET /api/v1/sellers/{sellerId}/rentals
func (h *RentalHandler) ListSellerRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.ListSellerRentals(r.Context(), mux.Vars(r)["sellerId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, rentals)
}
