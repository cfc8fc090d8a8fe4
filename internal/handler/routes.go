package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Health   *HealthHandler
	Rental   *RentalHandler
	Sale     *SaleHandler
	Payout   *PayoutHandler
	Settings *SettingsHandler
}

// NewRouter wires every endpoint onto a mux router. Nil handlers are skipped.
func NewRouter(h Handlers, middlewares ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares...)

	if h.Health != nil {
		router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
		router.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	if h.Settings != nil {
		api.HandleFunc("/settings/open-days", h.Settings.GetOpenDays).Methods(http.MethodGet)
		api.HandleFunc("/settings/open-days", h.Settings.UpdateOpenDays).Methods(http.MethodPut)
	}

	if h.Rental != nil {
		api.HandleFunc("/open-days/count", h.Rental.CountOpenDays).Methods(http.MethodGet)
		api.HandleFunc("/rentals/quote", h.Rental.QuotePeriod).Methods(http.MethodPost)
		api.HandleFunc("/rentals", h.Rental.CreateRental).Methods(http.MethodPost)
		api.HandleFunc("/rentals/{rentalId}", h.Rental.GetRental).Methods(http.MethodGet)
		api.HandleFunc("/sellers/{sellerId}/rentals", h.Rental.ListSellerRentals).Methods(http.MethodGet)
	}

	if h.Sale != nil {
		api.HandleFunc("/sales", h.Sale.Checkout).Methods(http.MethodPost)
		api.HandleFunc("/sales/{saleId}", h.Sale.GetSale).Methods(http.MethodGet)
	}

	if h.Payout != nil {
		api.HandleFunc("/sellers/{sellerId}/balance", h.Payout.GetSellerBalance).Methods(http.MethodGet)
		api.HandleFunc("/sellers/{sellerId}/payouts", h.Payout.CreatePayout).Methods(http.MethodPost)
	}

	return router
}
