package dto

import (
	"time"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// CustomerNotificationDTO one refill reminder.
type CustomerNotificationDTO struct {
	ID             string    `json:"id"`
	PhoneNo        string    `json:"phone_no"`
	BatchNo        string    `json:"batch_no"`
	IntervalMonths int       `json:"interval_months"`
	EndDate        time.Time `json:"end_date"`
	NextDate       time.Time `json:"next_date"`
}

// AddNotificationRequest body for POST /api/notifications.
// NextDate is derived server-side: now plus the interval.
type AddNotificationRequest struct {
	PhoneNo        string    `json:"phone_no"`
	BatchNo        string    `json:"batch_no"`
	IntervalMonths int       `json:"interval_months"`
	EndDate        time.Time `json:"end_date"`
}

// UpdateNotificationRequest body for PUT /api/notifications/:id.
type UpdateNotificationRequest struct {
	PhoneNo        string    `json:"phone_no"`
	BatchNo        string    `json:"batch_no"`
	IntervalMonths int       `json:"interval_months"`
	EndDate        time.Time `json:"end_date"`
	NextDate       time.Time `json:"next_date"`
}

// DispatchResultDTO outcome of a reminder dispatch run.
type DispatchResultDTO struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// NewCustomerNotification maps an entity to its DTO.
func NewCustomerNotification(n entity.CustomerNotification) CustomerNotificationDTO {
	return CustomerNotificationDTO{
		ID:             n.ID,
		PhoneNo:        n.PhoneNo,
		BatchNo:        n.BatchNo,
		IntervalMonths: n.IntervalMonths,
		EndDate:        n.EndDate,
		NextDate:       n.NextDate,
	}
}

// NewCustomerNotifications maps a slice of entities to DTOs.
func NewCustomerNotifications(ns []entity.CustomerNotification) []CustomerNotificationDTO {
	out := make([]CustomerNotificationDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, NewCustomerNotification(n))
	}
	return out
}
