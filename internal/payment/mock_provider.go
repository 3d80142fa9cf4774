package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// MockPaymentService accepts every payment. It is used when no Stripe key is
// configured and in integration tests.
type MockPaymentService struct {
	logger *slog.Logger
}

func NewMockPaymentService(logger *slog.Logger) *MockPaymentService {
	return &MockPaymentService{
		logger: logger,
	}
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, totalAmount int) error {
	m.logger.InfoContext(ctx, "mock payment accepted",
		"payment_id", "pi_mock_"+uuid.NewString(),
		"account_id", accountID,
		"amount", totalAmount,
	)

	return nil
}
