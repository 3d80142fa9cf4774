package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type StripePaymentService struct {
	currency string
}

func NewStripePaymentService(currency string) *StripePaymentService {
	return &StripePaymentService{
		currency: currency,
	}
}

func (s *StripePaymentService) MakePayment(_ context.Context, accountID int64, totalAmount int) error {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toMinorUnits(totalAmount)),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(fmt.Sprintf("Cinema tickets for account %d", accountID)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("account_id", strconv.FormatInt(accountID, 10))

	_, err := paymentintent.New(params)
	if err != nil {
		return fmt.Errorf("stripe payment intent: %w", err)
	}

	return nil
}

// toMinorUnits converts whole currency units into the smallest unit Stripe
// expects (e.g. pounds to pence).
func toMinorUnits(amount int) int64 {
	return decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromInt(100)).IntPart()
}
