// Package notification manages customer refill reminders: CRUD over the
// reminder records plus the dispatch pass that sends due SMS messages and
// reschedules each reminder by its interval.
package notification

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
	"github.com/lemlem-pharmacy/backend/pkg/logger"
)

// Reminders whose NextDate fell inside the last three days are still
// dispatched, so a skipped scheduler run does not silently drop them.
const dispatchLookbackDays = 3

// Ethiopian phone numbers: +2519xxxxxxxx or 09xxxxxxxx, spaces tolerated
// anywhere ("+251 91 234 5678" is accepted).
var phonePattern = regexp.MustCompile(`^((\+\s*2\s*5\s*1\s*9\s*([0-9]\s*){8})|(0\s*9\s*([0-9]\s*){8}))$`)

// UseCase orchestrates reminder persistence, message enrichment from the
// batch master data, and SMS dispatch.
type UseCase struct {
	notifications repository.NotificationRepository
	customers     repository.CustomerRepository
	medicines     repository.MedicineRepository
	sms           SMSSender
	log           *logger.Logger
	now           func() time.Time
}

// NewUseCase builds the notification usecase.
func NewUseCase(
	notifications repository.NotificationRepository,
	customers repository.CustomerRepository,
	medicines repository.MedicineRepository,
	sms SMSSender,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		notifications: notifications,
		customers:     customers,
		medicines:     medicines,
		sms:           sms,
		log:           log,
		now:           time.Now,
	}
}

// ValidPhone reports whether the phone number is in the accepted format.
func ValidPhone(phoneNo string) bool {
	return phonePattern.MatchString(phoneNo)
}

// List returns every reminder.
func (uc *UseCase) List(ctx context.Context) ([]dto.CustomerNotificationDTO, error) {
	ns, err := uc.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerNotifications(ns), nil
}

// GetByID returns one reminder.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CustomerNotificationDTO, error) {
	n, err := uc.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCustomerNotification(*n)
	return &out, nil
}

// ListByBatchNo returns the reminders registered against one batch.
func (uc *UseCase) ListByBatchNo(ctx context.Context, batchNo string) ([]dto.CustomerNotificationDTO, error) {
	if batchNo == "" {
		return nil, domain.ErrInvalidArgument
	}
	ns, err := uc.notifications.ListByBatchNo(ctx, batchNo)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerNotifications(ns), nil
}

// ListByPhoneNo returns the reminders registered for one customer phone.
func (uc *UseCase) ListByPhoneNo(ctx context.Context, phoneNo string) ([]dto.CustomerNotificationDTO, error) {
	if !ValidPhone(phoneNo) {
		return nil, domain.ErrInvalidPhone
	}
	ns, err := uc.notifications.ListByPhoneNo(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerNotifications(ns), nil
}

// Search matches a free-text phrase against phone and batch number.
func (uc *UseCase) Search(ctx context.Context, phrase string) ([]dto.CustomerNotificationDTO, error) {
	ns, err := uc.notifications.Search(ctx, phrase)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerNotifications(ns), nil
}

// Add registers a reminder. The first send is scheduled one interval from
// now; the batch must exist so dispatch can name the medicine later.
func (uc *UseCase) Add(ctx context.Context, req dto.AddNotificationRequest) (*dto.CustomerNotificationDTO, error) {
	if !ValidPhone(req.PhoneNo) {
		return nil, domain.ErrInvalidPhone
	}
	if req.IntervalMonths <= 0 || req.BatchNo == "" {
		return nil, domain.ErrInvalidArgument
	}
	m, err := uc.medicines.GetByBatchNo(ctx, req.BatchNo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	n := &entity.CustomerNotification{
		ID:             uuid.New().String(),
		PhoneNo:        req.PhoneNo,
		BatchNo:        req.BatchNo,
		IntervalMonths: req.IntervalMonths,
		EndDate:        req.EndDate,
		NextDate:       uc.now().AddDate(0, req.IntervalMonths, 0),
	}
	if err := uc.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	out := dto.NewCustomerNotification(*n)
	return &out, nil
}

// Update rewrites a reminder's schedule and recipient.
func (uc *UseCase) Update(ctx context.Context, id string, req dto.UpdateNotificationRequest) (*dto.CustomerNotificationDTO, error) {
	if !ValidPhone(req.PhoneNo) {
		return nil, domain.ErrInvalidPhone
	}
	if req.IntervalMonths <= 0 || req.BatchNo == "" {
		return nil, domain.ErrInvalidArgument
	}
	existing, err := uc.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	n := &entity.CustomerNotification{
		ID:             id,
		PhoneNo:        req.PhoneNo,
		BatchNo:        req.BatchNo,
		IntervalMonths: req.IntervalMonths,
		EndDate:        req.EndDate,
		NextDate:       req.NextDate,
	}
	if err := uc.notifications.Update(ctx, n); err != nil {
		return nil, err
	}
	out := dto.NewCustomerNotification(*n)
	return &out, nil
}

// Delete removes a reminder.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.notifications.Delete(ctx, id)
}

// DispatchDue sends the SMS for every reminder whose NextDate fell inside
// the lookback window and advances it by its interval. Reminders past their
// end date are skipped. A failed send leaves the reminder untouched so the
// next run retries it.
func (uc *UseCase) DispatchDue(ctx context.Context) (*dto.DispatchResultDTO, error) {
	now := uc.now()
	due, err := uc.notifications.ListDue(ctx, now.AddDate(0, 0, -dispatchLookbackDays), now)
	if err != nil {
		return nil, err
	}

	result := &dto.DispatchResultDTO{}
	for _, n := range due {
		if n.NextDate.After(n.EndDate) {
			result.Skipped++
			continue
		}
		if err := uc.dispatchOne(ctx, n); err != nil {
			uc.log.Error().Err(err).Str("id", n.ID).Str("batch_no", n.BatchNo).
				Msg("reminder dispatch failed")
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result, nil
}

func (uc *UseCase) dispatchOne(ctx context.Context, n entity.CustomerNotification) error {
	m, err := uc.medicines.GetByBatchNo(ctx, n.BatchNo)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("reminder %s: %w", n.ID, domain.ErrNotFound)
	}

	name := "customer"
	c, err := uc.customers.GetByPhoneNo(ctx, n.PhoneNo)
	switch {
	case err != nil:
		uc.log.Warn().Err(err).Str("id", n.ID).
			Msg("customer lookup failed, sending with generic greeting")
	case c != nil:
		name = c.Name
	}

	msg := fmt.Sprintf(
		"Dear %s,\nPlease get your %s on %s.\nSincerely,\nLemlem Pharmacy",
		name, m.Description, n.NextDate.Format("2006-01-02"),
	)
	if err := uc.sms.Send(ctx, n.PhoneNo, msg); err != nil {
		return err
	}

	n.NextDate = n.NextDate.AddDate(0, n.IntervalMonths, 0)
	if err := uc.notifications.Update(ctx, &n); err != nil {
		return err
	}
	uc.log.Info().Str("id", n.ID).Str("batch_no", n.BatchNo).
		Time("next_date", n.NextDate).Msg("reminder sent and rescheduled")
	return nil
}
