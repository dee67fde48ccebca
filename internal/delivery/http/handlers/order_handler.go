package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/request"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/response"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/order"
)

type OrderHandler struct {
	uc order.OrderUsecase
}

func NewOrderHandler(uc order.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.uc.CreateOrder(c.Request.Context(), actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusCreated, response.FromOrder(created))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	h.orderAction(c, h.uc.GetOrder)
}

// ListOrders accepts repeated or comma separated state filters.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	page, err := intQuery(c, "page")
	if err != nil {
		fail(c, http.StatusBadRequest, "page must be a number")
		return
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		fail(c, http.StatusBadRequest, "limit must be a number")
		return
	}
	out, err := h.uc.ListOrders(c.Request.Context(), actor, &orderdto.ListOrdersInput{
		BuyerID:        c.Query("buyer_id"),
		ManufacturerID: c.Query("manufacturer_id"),
		States:         listQuery(c, "state"),
		PaymentStates:  listQuery(c, "payment_state"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	orders := make([]response.OrderResponse, 0, len(out.Orders))
	for _, o := range out.Orders {
		orders = append(orders, response.FromOrder(o))
	}
	success(c, http.StatusOK, response.OrderListResponse{
		Orders: orders,
		Total:  out.Total,
		Page:   out.Page,
		Limit:  out.Limit,
	})
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.uc.UpdateOrderFields(c.Request.Context(), actor, c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) GetTimeline(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	events, err := h.uc.GetOrderTimeline(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrderEvents(events))
}

func (h *OrderHandler) GetNextStates(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.uc.GetNextStates(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, view)
}

func (h *OrderHandler) GetFieldLocks(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.uc.GetFieldLocks(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, view)
}

func (h *OrderHandler) GetExecutionGates(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	gates, err := h.uc.GetExecutionGates(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, gates)
}

func (h *OrderHandler) Submit(c *gin.Context)      { h.orderAction(c, h.uc.SubmitOrder) }
func (h *OrderHandler) LockSpecs(c *gin.Context)   { h.orderAction(c, h.uc.LockSpecs) }
func (h *OrderHandler) StartSample(c *gin.Context) { h.orderAction(c, h.uc.StartSample) }
func (h *OrderHandler) UnlockBulk(c *gin.Context)  { h.orderAction(c, h.uc.UnlockBulk) }
func (h *OrderHandler) StartBulk(c *gin.Context)   { h.orderAction(c, h.uc.StartBulkProduction) }
func (h *OrderHandler) Dispatch(c *gin.Context)    { h.orderAction(c, h.uc.DispatchOrder) }
func (h *OrderHandler) Deliver(c *gin.Context)     { h.orderAction(c, h.uc.ConfirmDelivery) }
func (h *OrderHandler) Complete(c *gin.Context)    { h.orderAction(c, h.uc.CompleteOrder) }

func (h *OrderHandler) Assign(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.AssignManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.uc.AssignManufacturer(c.Request.Context(), actor, c.Param("id"), req.ManufacturerID)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) Transition(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.uc.TransitionOrder(c.Request.Context(), actor, c.Param("id"), domain.OrderState(req.To))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(updated))
}

type orderCall func(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)

func (h *OrderHandler) orderAction(c *gin.Context, call orderCall) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	o, err := call(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(o))
}

func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func listQuery(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
