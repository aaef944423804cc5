package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
)

var (
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
	_ repository.CustomerRepository     = (*NotificationRepo)(nil)
)

const notificationColumns = `id, phone_no, batch_no, interval_months, end_date, next_date`

// NotificationRepo persistence adapter for refill reminders and their
// recipients.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository builds the notification persistence adapter.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// List returns every reminder, next send first.
func (r *NotificationRepo) List(ctx context.Context) ([]entity.CustomerNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM customer_notifications ORDER BY next_date, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// GetByID returns one reminder, or nil when it does not exist.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.CustomerNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM customer_notifications WHERE id = $1`
	var n entity.CustomerNotification
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.PhoneNo, &n.BatchNo, &n.IntervalMonths, &n.EndDate, &n.NextDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// ListByBatchNo returns the reminders registered against one batch.
func (r *NotificationRepo) ListByBatchNo(ctx context.Context, batchNo string) ([]entity.CustomerNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM customer_notifications WHERE batch_no = $1 ORDER BY next_date, id`
	rows, err := r.pool.Query(ctx, query, batchNo)
	if err != nil {
		return nil, fmt.Errorf("list notifications by batch: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// ListByPhoneNo returns the reminders registered for one phone number.
func (r *NotificationRepo) ListByPhoneNo(ctx context.Context, phoneNo string) ([]entity.CustomerNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM customer_notifications WHERE phone_no = $1 ORDER BY next_date, id`
	rows, err := r.pool.Query(ctx, query, phoneNo)
	if err != nil {
		return nil, fmt.Errorf("list notifications by phone: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// Search matches a phrase against phone and batch number.
func (r *NotificationRepo) Search(ctx context.Context, phrase string) ([]entity.CustomerNotification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM customer_notifications
		WHERE phone_no ILIKE '%' || $1 || '%' OR batch_no ILIKE '%' || $1 || '%'
		ORDER BY next_date, id`
	rows, err := r.pool.Query(ctx, query, phrase)
	if err != nil {
		return nil, fmt.Errorf("search notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// Create inserts a reminder.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.CustomerNotification) error {
	query := `
		INSERT INTO customer_notifications (id, phone_no, batch_no, interval_months, end_date, next_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, n.ID, n.PhoneNo, n.BatchNo, n.IntervalMonths, n.EndDate, n.NextDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Update rewrites a reminder.
func (r *NotificationRepo) Update(ctx context.Context, n *entity.CustomerNotification) error {
	query := `
		UPDATE customer_notifications
		SET phone_no = $2, batch_no = $3, interval_months = $4, end_date = $5, next_date = $6
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, n.ID, n.PhoneNo, n.BatchNo, n.IntervalMonths, n.EndDate, n.NextDate)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a reminder.
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customer_notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDue returns reminders whose next send falls in [from, to].
func (r *NotificationRepo) ListDue(ctx context.Context, from, to time.Time) ([]entity.CustomerNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM customer_notifications WHERE next_date BETWEEN $1 AND $2 ORDER BY next_date, id`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list due notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// GetByPhoneNo resolves a reminder recipient, or nil when unknown.
func (r *NotificationRepo) GetByPhoneNo(ctx context.Context, phoneNo string) (*entity.Customer, error) {
	query := `SELECT id, name, phone_no FROM customers WHERE phone_no = $1`
	var c entity.Customer
	err := r.pool.QueryRow(ctx, query, phoneNo).Scan(&c.ID, &c.Name, &c.PhoneNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return &c, nil
}

func scanNotifications(rows pgx.Rows) ([]entity.CustomerNotification, error) {
	var out []entity.CustomerNotification
	for rows.Next() {
		var n entity.CustomerNotification
		if err := rows.Scan(
			&n.ID, &n.PhoneNo, &n.BatchNo, &n.IntervalMonths, &n.EndDate, &n.NextDate,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
