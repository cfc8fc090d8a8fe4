package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/pkg/response"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

type SettingsHandler struct {
	service   SettingsService
	validator *validator.Validate
}

func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service:   service,
		validator: utils.NewValidator(),
	}
}

// GetOpenDays handles GET /api/v1/settings/open-days
func (h *SettingsHandler) GetOpenDays(w http.ResponseWriter, r *http.Request) {
	response.Success(w, domain.OpenDaysSettings{Days: h.service.GetOpenDays(r.Context())})
}

// UpdateOpenDays handles PUT /api/v1/settings/open-days
func (h *SettingsHandler) UpdateOpenDays(w http.ResponseWriter, r *http.Request) {
	var req domain.OpenDaysSettings
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, err)
		return
	}

	days, err := h.service.UpdateOpenDays(r.Context(), req.Days)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, domain.OpenDaysSettings{Days: days})
}
