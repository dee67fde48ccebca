package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/handlers"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Order  *handlers.OrderHandler
	QC     *handlers.QCHandler
	Escrow *handlers.EscrowHandler
}

type Options struct {
	JWTSecret string
	Gatherer  prometheus.Gatherer
	Log       *zap.Logger
}

func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Log != nil {
		r.Use(middleware.Logger(opts.Log))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(opts.JWTSecret))

	orders := api.Group("/orders")
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)
		orders.PATCH("/:id", h.Order.UpdateOrder)
		orders.GET("/:id/events", h.Order.GetTimeline)
		orders.GET("/:id/next-states", h.Order.GetNextStates)
		orders.GET("/:id/locks", h.Order.GetFieldLocks)
		orders.GET("/:id/gates", h.Order.GetExecutionGates)

		orders.POST("/:id/submit", h.Order.Submit)
		orders.POST("/:id/assign", h.Order.Assign)
		orders.POST("/:id/lock-specs", h.Order.LockSpecs)
		orders.POST("/:id/start-sample", h.Order.StartSample)
		orders.POST("/:id/unlock-bulk", h.Order.UnlockBulk)
		orders.POST("/:id/start-bulk", h.Order.StartBulk)
		orders.POST("/:id/dispatch", h.Order.Dispatch)
		orders.POST("/:id/deliver", h.Order.Deliver)
		orders.POST("/:id/complete", h.Order.Complete)
		orders.POST("/:id/transition", h.Order.Transition)

		orders.POST("/:id/qc", h.QC.Upload)
		orders.GET("/:id/qc", h.QC.List)

		orders.GET("/:id/escrow", h.Escrow.Get)
		orders.POST("/:id/escrow/fund", h.Escrow.Fund)
		orders.POST("/:id/escrow/releasable", h.Escrow.Releasable)
		orders.POST("/:id/escrow/release", h.Escrow.Release)
		orders.POST("/:id/escrow/refund", h.Escrow.Refund)
	}

	qc := api.Group("/qc")
	{
		qc.POST("/:qcId/approve", h.QC.Approve)
		qc.POST("/:qcId/reject", h.QC.Reject)
		qc.POST("/:qcId/revision", h.QC.RequestRevision)
	}

	return r
}
