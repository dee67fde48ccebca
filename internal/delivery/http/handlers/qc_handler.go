package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/request"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/response"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/qc"
)

type QCHandler struct {
	uc qc.QCUsecase
}

func NewQCHandler(uc qc.QCUsecase) *QCHandler {
	return &QCHandler{uc: uc}
}

func (h *QCHandler) Upload(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.UploadQCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	record, err := h.uc.UploadQC(c.Request.Context(), actor, req.ToInput(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusCreated, response.FromQCRecord(record))
}

func (h *QCHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	records, err := h.uc.ListQC(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromQCRecords(records))
}

func (h *QCHandler) Approve(c *gin.Context) {
	h.decide(c, func(ctx context.Context, actor domain.Actor, qcID, _ string) (*domain.QCRecord, error) {
		return h.uc.ApproveQC(ctx, actor, qcID)
	})
}

func (h *QCHandler) Reject(c *gin.Context) {
	h.decide(c, h.uc.RejectQC)
}

func (h *QCHandler) RequestRevision(c *gin.Context) {
	h.decide(c, h.uc.RequestRevision)
}

type qcDecision func(ctx context.Context, actor domain.Actor, qcID, reason string) (*domain.QCRecord, error)

func (h *QCHandler) decide(c *gin.Context, call qcDecision) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.ReasonRequest
	if !bindOptional(c, &req) {
		return
	}
	record, err := call(c.Request.Context(), actor, c.Param("qcId"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, response.FromQCRecord(record))
}

// bindOptional binds a JSON body when one was sent. An empty body is allowed.
func bindOptional(c *gin.Context, obj any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return false
	}
	return true
}
