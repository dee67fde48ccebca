package paymentdto

import "github.com/prabindersinghh/leorit-order-service/internal/domain"

type EscrowOutput struct {
	OrderID         string                `json:"order_id"`
	PaymentState    domain.PaymentState   `json:"payment_state"`
	TotalAmount     int64                 `json:"total_amount"`
	UpfrontAmount   int64                 `json:"upfront_amount"`
	RemainingAmount int64                 `json:"remaining_amount"`
	Currency        string                `json:"currency"`
	Funded          bool                  `json:"funded"`
	Terminal        bool                  `json:"terminal"`
	NextStates      []domain.PaymentState `json:"next_states"`
}

type SweepOutput struct {
	Checked  int
	Promoted int
}
