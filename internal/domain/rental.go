package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RentalStatusActive    = "active"
	RentalStatusExpired   = "expired"
	RentalStatusCancelled = "cancelled"
)

// Cubby is a rentable display slot in the shop.
type Cubby struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Label     string    `json:"label" db:"label"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Rental represents a seller's rental of a cubby between two calendar dates
type Rental struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CubbyID   uuid.UUID `json:"cubby_id" db:"cubby_id"`
	SellerID  string    `json:"seller_id" db:"seller_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	OpenDays  int       `json:"open_days" db:"open_days"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RentalPeriod is the computed span of a rental counted in shop-open days.
// Only StartDate and EndDate are ever persisted.
type RentalPeriod struct {
	StartDate         time.Time `json:"start_date"`
	RequestedOpenDays int       `json:"requested_open_days"`
	EndDate           time.Time `json:"end_date"`
	CalendarDaySpan   int       `json:"calendar_day_span"`
}

// DTOs for requests and responses

type QuoteRentalRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	OpenDays  int    `json:"open_days" validate:"required,gt=0"`
}

type CreateRentalRequest struct {
	CubbyID   string `json:"cubby_id" validate:"required,uuid"`
	SellerID  string `json:"seller_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	OpenDays  int    `json:"open_days" validate:"required,gt=0"`
}

type RentalPeriodResponse struct {
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	RequestedOpenDays int    `json:"requested_open_days"`
	CalendarDaySpan   int    `json:"calendar_day_span"`
}

type OpenDaysCountResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	OpenDays  int    `json:"open_days"`
}

type OpenDaysSettings struct {
	Days map[string]bool `json:"days" validate:"required"`
}
