package handlers

import "emporia-backend/payment"

type mockPayment struct {
	CreateIntentFn func(amount int64, currency string) (*payment.Intent, error)
	Calls          []struct {
		Amount   int64
		Currency string
	}
}

func newMockPayment() *mockPayment {
	return &mockPayment{}
}

func (m *mockPayment) CreateIntent(amount int64, currency string) (*payment.Intent, error) {
	m.Calls = append(m.Calls, struct {
		Amount   int64
		Currency string
	}{amount, currency})
	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(amount, currency)
	}
	return &payment.Intent{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret_456",
		Status:       "requires_payment_method",
		Amount:       amount,
		Currency:     currency,
	}, nil
}
