package repository

import (
	"context"
	"time"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// NotificationRepository persists refill reminders. Unlike the ledger ports
// this one writes: the reminder scheduler advances NextDate after each
// dispatch.
type NotificationRepository interface {
	List(ctx context.Context) ([]entity.CustomerNotification, error)
	GetByID(ctx context.Context, id string) (*entity.CustomerNotification, error)
	ListByBatchNo(ctx context.Context, batchNo string) ([]entity.CustomerNotification, error)
	ListByPhoneNo(ctx context.Context, phoneNo string) ([]entity.CustomerNotification, error)
	Search(ctx context.Context, phrase string) ([]entity.CustomerNotification, error)
	Create(ctx context.Context, n *entity.CustomerNotification) error
	Update(ctx context.Context, n *entity.CustomerNotification) error
	Delete(ctx context.Context, id string) error

	// ListDue returns reminders whose NextDate falls in [from, to].
	ListDue(ctx context.Context, from, to time.Time) ([]entity.CustomerNotification, error)
}

// CustomerRepository resolves reminder recipients.
type CustomerRepository interface {
	GetByPhoneNo(ctx context.Context, phoneNo string) (*entity.Customer, error)
}
