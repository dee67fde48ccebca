package order_test

import (
	"context"
	"testing"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/memory"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
	qcdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/qc"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/order"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/payment"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/qc"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSampleThenBulkLifecycle(t *testing.T) {
	var (
		ctx          = context.Background()
		buyer        = domain.Actor{ID: "b-1", Role: domain.RoleBuyer}
		manufacturer = domain.Actor{ID: "m-1", Role: domain.RoleManufacturer}
		admin        = domain.Actor{ID: "a-1", Role: domain.RoleAdmin}
	)

	store := memory.NewStore()
	lifecycle := usecase.NewLifecycle(store, nil, nil, zap.NewNop())
	orders := order.NewDefaultOrderUsecase(store, store, store, lifecycle)
	qcs := qc.NewDefaultQCUsecase(store, store, lifecycle)
	payments := payment.NewDefaultPaymentUsecase(store, lifecycle)

	must := func(step string) func(*domain.Order, error) *domain.Order {
		return func(o *domain.Order, err error) *domain.Order {
			t.Helper()
			if err != nil {
				t.Fatalf("%s: %v", step, err)
			}
			return o
		}
	}
	mustRecord := func(step string) func(*domain.QCRecord, error) *domain.QCRecord {
		return func(rec *domain.QCRecord, err error) *domain.QCRecord {
			t.Helper()
			if err != nil {
				t.Fatalf("%s: %v", step, err)
			}
			return rec
		}
	}

	o := must("create")(orders.CreateOrder(ctx, buyer, &orderdto.CreateOrderInput{
		Mode:          string(domain.ModeSampleThenBulk),
		Quantity:      250,
		Fabric:        "organic cotton",
		Color:         "navy",
		DesignURL:     "https://files.example/hoodie.ai",
		SizeBreakdown: `{"M":100,"L":150}`,
		TotalAmount:   250000,
	}))
	id := o.ID

	must("submit")(orders.SubmitOrder(ctx, buyer, id))
	must("assign")(orders.AssignManufacturer(ctx, admin, id, manufacturer.ID))
	must("lock specs")(orders.LockSpecs(ctx, buyer, id))
	must("fund")(payments.FundEscrow(ctx, buyer, id))
	must("start sample")(orders.StartSample(ctx, manufacturer, id))

	sample := mustRecord("sample upload")(qcs.UploadQC(ctx, manufacturer, &qcdto.UploadQCInput{
		OrderID:  id,
		Stage:    string(domain.QCStageSample),
		VideoURL: "https://v.example/sample.mp4",
	}))
	mustRecord("sample approve")(qcs.ApproveQC(ctx, buyer, sample.ID))
	must("unlock bulk")(orders.UnlockBulk(ctx, buyer, id))

	sizes := `{"M":50,"L":200}`
	if _, err := orders.UpdateOrderFields(ctx, buyer, id, domain.OrderPatch{SizeBreakdown: &sizes}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("size breakdown edit after bulk unlock: %v", err)
	}

	must("start bulk")(orders.StartBulkProduction(ctx, manufacturer, id))
	bulk := mustRecord("bulk upload")(qcs.UploadQC(ctx, manufacturer, &qcdto.UploadQCInput{
		OrderID:     id,
		Stage:       string(domain.QCStageBulk),
		VideoURL:    "https://v.example/bulk.mp4",
		DefectCount: 2,
	}))
	mustRecord("bulk approve")(qcs.ApproveQC(ctx, admin, bulk.ID))

	if _, err := payments.MarkReleasable(ctx, admin, id); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("releasable before delivery: %v", err)
	}

	must("dispatch")(orders.DispatchOrder(ctx, manufacturer, id))
	must("deliver")(orders.ConfirmDelivery(ctx, buyer, id))

	sweep, err := payments.MarkReleasableOrders(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if sweep.Promoted != 1 {
		t.Fatalf("sweep promoted %d orders", sweep.Promoted)
	}

	if _, err := orders.CompleteOrder(ctx, domain.SystemActor, id); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("complete before release: %v", err)
	}
	must("release")(payments.ReleasePayment(ctx, admin, id))
	o = must("complete")(orders.CompleteOrder(ctx, domain.SystemActor, id))

	if o.State != domain.StateCompleted || o.PaymentState != domain.PaymentReleased {
		t.Fatalf("final order %s/%s", o.State, o.PaymentState)
	}
	if !domain.IsTerminalState(o.State) || !domain.IsTerminalPaymentState(o.PaymentState) {
		t.Fatalf("final states are not terminal")
	}

	events, err := orders.GetOrderTimeline(ctx, buyer, id)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	var visited []string
	for _, e := range events {
		if e.Kind == domain.EventOrderState {
			visited = append(visited, e.To)
		}
	}
	want := []domain.OrderState{
		domain.StateDraft,
		domain.StateSubmitted,
		domain.StateManufacturerAssigned,
		domain.StateSampleInProgress,
		domain.StateSampleQCUploaded,
		domain.StateSampleApproved,
		domain.StateBulkUnlocked,
		domain.StateBulkInProduction,
		domain.StateBulkQCUploaded,
		domain.StateReadyForDispatch,
		domain.StateDispatched,
		domain.StateDelivered,
		domain.StateCompleted,
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %v", visited)
	}
	for i, s := range want {
		if visited[i] != string(s) {
			t.Errorf("step %d = %s, want %s", i, visited[i], s)
		}
		if i > 0 && domain.StateIndex(s) <= domain.StateIndex(want[i-1]) {
			t.Errorf("state index regressed at %s", s)
		}
	}
}
