package notification

import "context"

// SMSSender is the transport boundary for reminder messages. Implemented in
// infrastructure against the configured SMS gateway.
type SMSSender interface {
	Send(ctx context.Context, phoneNo, message string) error
}
