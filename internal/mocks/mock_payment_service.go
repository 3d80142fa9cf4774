package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
	domain.PaymentService
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, totalAmount int) error {
	args := m.Called(ctx, accountID, totalAmount)
	return args.Error(0)
}
