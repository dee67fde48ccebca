package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/request"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/response"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/payment"
)

type EscrowHandler struct {
	uc payment.PaymentUsecase
}

func NewEscrowHandler(uc payment.PaymentUsecase) *EscrowHandler {
	return &EscrowHandler{uc: uc}
}

func (h *EscrowHandler) Get(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	escrow, err := h.uc.GetEscrow(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, escrow)
}

func (h *EscrowHandler) Fund(c *gin.Context)       { h.action(c, h.uc.FundEscrow) }
func (h *EscrowHandler) Releasable(c *gin.Context) { h.action(c, h.uc.MarkReleasable) }
func (h *EscrowHandler) Release(c *gin.Context)    { h.action(c, h.uc.ReleasePayment) }

func (h *EscrowHandler) Refund(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.ReasonRequest
	if !bindOptional(c, &req) {
		return
	}
	updated, err := h.uc.RefundPayment(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(updated))
}

func (h *EscrowHandler) action(c *gin.Context, call orderCall) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	updated, err := call(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromOrder(updated))
}
