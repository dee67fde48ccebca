package request

import (
	"encoding/json"
	"fmt"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
)

type CreateOrderRequest struct {
	BuyerID         string         `json:"buyer_id"`
	OrderMode       string         `json:"order_mode" binding:"required"`
	Quantity        int            `json:"quantity" binding:"required,min=1"`
	Fabric          string         `json:"fabric"`
	Color           string         `json:"color"`
	DesignURL       string         `json:"design_url"`
	SizeBreakdown   map[string]int `json:"size_breakdown"`
	ShippingAddress string         `json:"shipping_address"`
	TotalAmount     int64          `json:"total_amount" binding:"min=0"`
	Currency        string         `json:"currency"`
}

func (r *CreateOrderRequest) ToInput() (*orderdto.CreateOrderInput, error) {
	sizes, err := encodeSizes(r.SizeBreakdown)
	if err != nil {
		return nil, err
	}
	return &orderdto.CreateOrderInput{
		BuyerID:         r.BuyerID,
		Mode:            r.OrderMode,
		Quantity:        r.Quantity,
		Fabric:          r.Fabric,
		Color:           r.Color,
		DesignURL:       r.DesignURL,
		SizeBreakdown:   sizes,
		ShippingAddress: r.ShippingAddress,
		TotalAmount:     r.TotalAmount,
		Currency:        r.Currency,
	}, nil
}

// UpdateOrderRequest is a partial update; absent fields are left unchanged.
type UpdateOrderRequest struct {
	Quantity        *int           `json:"quantity"`
	OrderMode       *string        `json:"order_mode"`
	DesignURL       *string        `json:"design_url"`
	TotalAmount     *int64         `json:"total_amount"`
	Fabric          *string        `json:"fabric"`
	Color           *string        `json:"color"`
	SizeBreakdown   map[string]int `json:"size_breakdown"`
	ShippingAddress *string        `json:"shipping_address"`
}

func (r *UpdateOrderRequest) ToPatch() (domain.OrderPatch, error) {
	patch := domain.OrderPatch{
		Quantity:        r.Quantity,
		DesignURL:       r.DesignURL,
		TotalAmount:     r.TotalAmount,
		Fabric:          r.Fabric,
		Color:           r.Color,
		ShippingAddress: r.ShippingAddress,
	}
	if r.OrderMode != nil {
		mode := domain.OrderMode(*r.OrderMode)
		patch.Mode = &mode
	}
	if r.SizeBreakdown != nil {
		sizes, err := encodeSizes(r.SizeBreakdown)
		if err != nil {
			return patch, err
		}
		patch.SizeBreakdown = &sizes
	}
	return patch, nil
}

func encodeSizes(sizes map[string]int) (string, error) {
	if sizes == nil {
		return "", nil
	}
	for size, n := range sizes {
		if n < 0 {
			return "", fmt.Errorf("size %s has a negative quantity", size)
		}
	}
	raw, err := json.Marshal(sizes)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

type AssignManufacturerRequest struct {
	ManufacturerID string `json:"manufacturer_id" binding:"required"`
}

type TransitionRequest struct {
	To string `json:"to" binding:"required"`
}
