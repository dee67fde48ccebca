package domain

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrQCRecordNotFound    = errors.New("qc record not found")
	ErrUnknownOrderState   = errors.New("unknown order state")
	ErrUnknownPaymentState = errors.New("unknown payment state")
	ErrUnknownOrderMode    = errors.New("unknown order mode")
	ErrUnknownQCStage      = errors.New("unknown qc stage")
)
