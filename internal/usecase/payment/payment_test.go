package payment

import (
	"context"
	"testing"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/memory"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	buyer = domain.Actor{ID: "b-1", Role: domain.RoleBuyer}
	admin = domain.Actor{ID: "a-1", Role: domain.RoleAdmin}
)

func newTestUsecase(t *testing.T, orders ...*domain.Order) (*DefaultPaymentUsecase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	for _, o := range orders {
		if err := store.CreateOrder(context.Background(), o, nil); err != nil {
			t.Fatalf("seed order %s: %v", o.ID, err)
		}
	}
	lifecycle := usecase.NewLifecycle(store, nil, nil, zap.NewNop())
	return NewDefaultPaymentUsecase(store, lifecycle), store
}

func newOrder(id string, state domain.OrderState, payment domain.PaymentState) *domain.Order {
	return &domain.Order{
		ID:           id,
		BuyerID:      buyer.ID,
		Mode:         domain.ModeDirectBulk,
		State:        state,
		PaymentState: payment,
		Quantity:     10,
		TotalAmount:  100001,
		Currency:     "INR",
	}
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Fatalf("code = %s, want %s (err: %v)", got, want, err)
	}
}

func TestFundEscrow(t *testing.T) {
	draft := newOrder("o-draft", domain.StateDraft, domain.PaymentInitiated)
	submitted := newOrder("o-1", domain.StateSubmitted, domain.PaymentInitiated)
	uc, _ := newTestUsecase(t, draft, submitted)
	ctx := context.Background()

	_, err := uc.FundEscrow(ctx, buyer, "o-draft")
	assertCode(t, err, codes.FailedPrecondition)

	order, err := uc.FundEscrow(ctx, buyer, "o-1")
	if err != nil {
		t.Fatalf("FundEscrow: %v", err)
	}
	if order.PaymentState != domain.PaymentHeld {
		t.Errorf("payment = %s", order.PaymentState)
	}

	_, err = uc.FundEscrow(ctx, buyer, "o-1")
	assertCode(t, err, codes.FailedPrecondition)
}

func TestMarkReleasableAndRelease(t *testing.T) {
	now := time.Now()
	o := newOrder("o-1", domain.StateDelivered, domain.PaymentHeld)
	o.QCApprovedAt = &now
	o.DeliveredAt = &now
	uc, store := newTestUsecase(t, o)
	ctx := context.Background()

	_, err := uc.MarkReleasable(ctx, buyer, "o-1")
	assertCode(t, err, codes.PermissionDenied)

	// release requires RELEASABLE first
	_, err = uc.ReleasePayment(ctx, admin, "o-1")
	assertCode(t, err, codes.FailedPrecondition)

	if _, err := uc.MarkReleasable(ctx, admin, "o-1"); err != nil {
		t.Fatalf("MarkReleasable: %v", err)
	}

	// no approved bulk QC record exists for the order
	_, err = uc.ReleasePayment(ctx, admin, "o-1")
	assertCode(t, err, codes.FailedPrecondition)

	_, err = store.ProcessOrderOperation(ctx, "o-1", func(tx domain.OrderTx, order *domain.Order) error {
		return tx.SaveQCRecord(&domain.QCRecord{
			ID:            "qc-1",
			OrderID:       "o-1",
			Stage:         domain.QCStageBulk,
			Status:        domain.QCApproved,
			AdminDecision: domain.QCApproved,
			VideoURL:      "https://v.example/bulk.mp4",
		})
	})
	if err != nil {
		t.Fatalf("seed qc: %v", err)
	}

	_, err = uc.ReleasePayment(ctx, buyer, "o-1")
	assertCode(t, err, codes.PermissionDenied)

	order, err := uc.ReleasePayment(ctx, admin, "o-1")
	if err != nil {
		t.Fatalf("ReleasePayment: %v", err)
	}
	if order.PaymentState != domain.PaymentReleased {
		t.Errorf("payment = %s", order.PaymentState)
	}

	_, err = uc.RefundPayment(ctx, admin, "o-1", "buyer cancelled")
	assertCode(t, err, codes.FailedPrecondition)
}

func TestRefundPayment(t *testing.T) {
	uc, store := newTestUsecase(t, newOrder("o-1", domain.StateManufacturerAssigned, domain.PaymentHeld))
	ctx := context.Background()

	_, err := uc.RefundPayment(ctx, buyer, "o-1", "")
	assertCode(t, err, codes.PermissionDenied)

	order, err := uc.RefundPayment(ctx, admin, "o-1", "manufacturer unavailable")
	if err != nil {
		t.Fatalf("RefundPayment: %v", err)
	}
	if order.PaymentState != domain.PaymentRefunded {
		t.Errorf("payment = %s", order.PaymentState)
	}

	events, _ := store.ListOrderEvents(ctx, "o-1")
	last := events[len(events)-1]
	if last.Kind != domain.EventPaymentState || last.Note != "escrow refunded: manufacturer unavailable" {
		t.Errorf("refund event = %+v", last)
	}
}

func TestGetEscrow(t *testing.T) {
	uc, _ := newTestUsecase(t, newOrder("o-1", domain.StateSubmitted, domain.PaymentInitiated))

	out, err := uc.GetEscrow(context.Background(), buyer, "o-1")
	if err != nil {
		t.Fatalf("GetEscrow: %v", err)
	}
	if out.UpfrontAmount != 55000 || out.RemainingAmount != 45001 {
		t.Errorf("split = %d/%d", out.UpfrontAmount, out.RemainingAmount)
	}
	if out.Funded || out.Terminal {
		t.Errorf("initiated escrow reported funded=%v terminal=%v", out.Funded, out.Terminal)
	}

	_, err = uc.GetEscrow(context.Background(), domain.Actor{ID: "b-2", Role: domain.RoleBuyer}, "o-1")
	assertCode(t, err, codes.PermissionDenied)
}

func TestMarkReleasableOrders(t *testing.T) {
	now := time.Now()
	ready := newOrder("o-ready", domain.StateDelivered, domain.PaymentHeld)
	ready.QCApprovedAt = &now
	ready.DeliveredAt = &now
	notDelivered := newOrder("o-waiting", domain.StateReadyForDispatch, domain.PaymentHeld)
	notDelivered.QCApprovedAt = &now
	sampleOnly := newOrder("o-sample", domain.StateSampleApproved, domain.PaymentHeld)
	sampleOnly.Mode = domain.ModeSampleOnly
	sampleOnly.SampleApprovedAt = &now
	unfunded := newOrder("o-unfunded", domain.StateSubmitted, domain.PaymentInitiated)

	uc, store := newTestUsecase(t, ready, notDelivered, sampleOnly, unfunded)
	ctx := context.Background()

	out, err := uc.MarkReleasableOrders(ctx)
	if err != nil {
		t.Fatalf("MarkReleasableOrders: %v", err)
	}
	if out.Checked != 3 || out.Promoted != 2 {
		t.Errorf("sweep = %+v, want 3 checked 2 promoted", out)
	}

	for id, want := range map[string]domain.PaymentState{
		"o-ready":    domain.PaymentReleasable,
		"o-sample":   domain.PaymentReleasable,
		"o-waiting":  domain.PaymentHeld,
		"o-unfunded": domain.PaymentInitiated,
	} {
		order, _ := store.GetOrderByID(ctx, id)
		if order.PaymentState != want {
			t.Errorf("%s payment = %s, want %s", id, order.PaymentState, want)
		}
	}

	events, _ := store.ListOrderEvents(ctx, "o-ready")
	if len(events) != 1 || events[0].ActorRole != domain.RoleSystem {
		t.Errorf("sweep events = %+v", events)
	}

	out, err = uc.MarkReleasableOrders(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if out.Checked != 1 || out.Promoted != 0 {
		t.Errorf("second sweep = %+v, want 1 checked 0 promoted", out)
	}
}
