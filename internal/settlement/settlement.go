// Package settlement implements the order payment workflow: recording a
// payment confirmation and transitioning the order from unpaid to paid.
package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/highway/highway/internal/metrics"
	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/payments"
	"github.com/highway/highway/internal/store"
)

// Amounts are sent to the provider in minor currency units.
const minorUnitFactor = 100

// currencyUSD is the only currency the platform charges in.
const currencyUSD = "usd"

// PaymentStore persists payment records.
type PaymentStore interface {
	InsertPayment(ctx context.Context, payment model.Payment) (*store.InsertResult, error)
}

// OrderStore applies the paid transition to orders.
type OrderStore interface {
	MarkOrderPaid(ctx context.Context, id, transactionID string) (*model.Order, error)
}

// PaymentInput carries the client-reported payment confirmation.
type PaymentInput struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount,omitempty"`
	Email         string  `json:"email,omitempty"`
}

// Service coordinates payment records, order transitions and the
// payment provider.
type Service struct {
	payments PaymentStore
	orders   OrderStore
	intents  payments.IntentCreator
	logger   *slog.Logger
	metrics  metrics.Recorder

	// newPaymentID is overridable for tests.
	newPaymentID func() string
}

// NewService creates a settlement Service.
func NewService(paymentStore PaymentStore, orderStore OrderStore, intents payments.IntentCreator, logger *slog.Logger, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Service{
		payments:     paymentStore,
		orders:       orderStore,
		intents:      intents,
		logger:       logger,
		metrics:      recorder,
		newPaymentID: func() string { return ulid.Make().String() },
	}
}

// Settle records a payment for the order and marks the order paid,
// returning the updated order.
//
// The two writes are not atomic: if the order update fails after the
// payment record was inserted, the payment record remains as an orphan.
// There is also no re-settlement guard; settling the same order twice
// inserts two payment records and reapplies the same order update.
func (s *Service) Settle(ctx context.Context, orderID string, input PaymentInput) (*model.Order, error) {
	payment := model.Payment{
		PaymentID:     s.newPaymentID(),
		OrderID:       orderID,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
		Email:         input.Email,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := s.payments.InsertPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	order, err := s.orders.MarkOrderPaid(ctx, orderID, input.TransactionID)
	if err != nil {
		// The payment record inserted above is not rolled back.
		s.logger.Error("order update failed after payment was recorded",
			slog.String("order_id", orderID),
			slog.String("payment_id", payment.PaymentID),
			slog.String("transaction_id", input.TransactionID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.metrics.IncOrderSettled()
	s.logger.Info("order settled",
		slog.String("order_id", orderID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("transaction_id", input.TransactionID),
	)

	return order, nil
}

// CreateIntent asks the payment provider for a client secret covering
// the given price. The price arrives in major units and is converted
// to minor units for the provider.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * minorUnitFactor))

	secret, err := s.intents.CreateIntent(ctx, amount, currencyUSD)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	s.metrics.IncPaymentIntentCreated()
	return secret, nil
}
