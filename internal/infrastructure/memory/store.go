// Package memory keeps orders, QC records and events in process memory.
// The service runs on it when no database DSN is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	qc     map[string][]*domain.QCRecord
	events map[string][]*domain.OrderEvent
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		orders: make(map[string]*domain.Order),
		qc:     make(map[string][]*domain.QCRecord),
		events: make(map[string][]*domain.OrderEvent),
		now:    time.Now,
	}
}

func copyOrder(o *domain.Order) *domain.Order {
	c := *o
	return &c
}

func copyQCRecord(r *domain.QCRecord) *domain.QCRecord {
	c := *r
	c.PhotoURLs = append([]string(nil), r.PhotoURLs...)
	return &c
}

func copyEvent(e *domain.OrderEvent) *domain.OrderEvent {
	c := *e
	return &c
}

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order, event *domain.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; ok {
		return fmt.Errorf("create order: duplicate id %s", order.ID)
	}
	now := s.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	s.orders[order.ID] = copyOrder(order)
	if event != nil {
		s.events[order.ID] = append(s.events[order.ID], copyEvent(event))
	}
	return nil
}

func (s *Store) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

func containsState[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (s *Store) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*domain.Order
	for _, o := range s.orders {
		if filter.BuyerID != "" && o.BuyerID != filter.BuyerID {
			continue
		}
		if filter.ManufacturerID != "" && o.ManufacturerID != filter.ManufacturerID {
			continue
		}
		if len(filter.States) > 0 && !containsState(filter.States, o.State) {
			continue
		}
		if len(filter.PaymentStates) > 0 && !containsState(filter.PaymentStates, o.PaymentState) {
			continue
		}
		matched = append(matched, copyOrder(o))
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start >= len(matched) {
			return []*domain.Order{}, total, nil
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

// ProcessOrderOperation serialises all operations on the store. Writes made
// through tx are buffered and only applied when fn succeeds.
func (s *Store) ProcessOrderOperation(
	ctx context.Context,
	orderID string,
	fn func(tx domain.OrderTx, order *domain.Order) error,
) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order := copyOrder(stored)
	tx := &storeTx{store: s, orderID: orderID, saved: make(map[string]*domain.QCRecord)}
	if err := fn(tx, order); err != nil {
		return nil, err
	}

	order.UpdatedAt = s.now()
	s.orders[orderID] = copyOrder(order)
	for _, id := range tx.savedOrder {
		rec := tx.saved[id]
		s.upsertQCRecord(rec)
	}
	s.events[orderID] = append(s.events[orderID], tx.events...)
	return order, nil
}

func (s *Store) upsertQCRecord(rec *domain.QCRecord) {
	records := s.qc[rec.OrderID]
	for i, existing := range records {
		if existing.ID == rec.ID {
			records[i] = rec
			return
		}
	}
	s.qc[rec.OrderID] = append(records, rec)
}

func (s *Store) GetQCRecord(ctx context.Context, qcID string) (*domain.QCRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, records := range s.qc {
		for _, rec := range records {
			if rec.ID == qcID {
				return copyQCRecord(rec), nil
			}
		}
	}
	return nil, domain.ErrQCRecordNotFound
}

func (s *Store) ListQCRecords(ctx context.Context, orderID string) ([]*domain.QCRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*domain.QCRecord, 0, len(s.qc[orderID]))
	for _, rec := range s.qc[orderID] {
		records = append(records, copyQCRecord(rec))
	}
	return records, nil
}

func (s *Store) LatestQCRecord(ctx context.Context, orderID string, stage domain.QCStage) (*domain.QCRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.latestQCRecord(orderID, stage); rec != nil {
		return copyQCRecord(rec), nil
	}
	return nil, nil
}

// latestQCRecord relies on records being appended in upload order.
func (s *Store) latestQCRecord(orderID string, stage domain.QCStage) *domain.QCRecord {
	records := s.qc[orderID]
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Stage == stage {
			return records[i]
		}
	}
	return nil
}

func (s *Store) ListOrderEvents(ctx context.Context, orderID string) ([]*domain.OrderEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]*domain.OrderEvent, 0, len(s.events[orderID]))
	for _, e := range s.events[orderID] {
		events = append(events, copyEvent(e))
	}
	return events, nil
}

type storeTx struct {
	store      *Store
	orderID    string
	saved      map[string]*domain.QCRecord
	savedOrder []string
	events     []*domain.OrderEvent
}

func (t *storeTx) LatestQCRecord(stage domain.QCStage) (*domain.QCRecord, error) {
	// New uploads in this operation are newer than anything stored.
	for i := len(t.savedOrder) - 1; i >= 0; i-- {
		rec := t.saved[t.savedOrder[i]]
		if rec.Stage == stage && !t.store.hasQCRecord(t.orderID, rec.ID) {
			return copyQCRecord(rec), nil
		}
	}
	stored := t.store.latestQCRecord(t.orderID, stage)
	if stored == nil {
		return nil, nil
	}
	if pending, ok := t.saved[stored.ID]; ok {
		return copyQCRecord(pending), nil
	}
	return copyQCRecord(stored), nil
}

func (s *Store) hasQCRecord(orderID, qcID string) bool {
	for _, rec := range s.qc[orderID] {
		if rec.ID == qcID {
			return true
		}
	}
	return false
}

func (t *storeTx) GetQCRecord(qcID string) (*domain.QCRecord, error) {
	if rec, ok := t.saved[qcID]; ok {
		return copyQCRecord(rec), nil
	}
	for _, rec := range t.store.qc[t.orderID] {
		if rec.ID == qcID {
			return copyQCRecord(rec), nil
		}
	}
	return nil, domain.ErrQCRecordNotFound
}

func (t *storeTx) SaveQCRecord(rec *domain.QCRecord) error {
	if rec.OrderID != t.orderID {
		return fmt.Errorf("save qc record: record belongs to order %s", rec.OrderID)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = t.store.now()
	}
	if _, ok := t.saved[rec.ID]; !ok {
		t.savedOrder = append(t.savedOrder, rec.ID)
	}
	t.saved[rec.ID] = copyQCRecord(rec)
	return nil
}

func (t *storeTx) AppendEvent(event *domain.OrderEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = t.store.now()
	}
	t.events = append(t.events, copyEvent(event))
	return nil
}
