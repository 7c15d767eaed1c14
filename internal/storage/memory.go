package storage

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"platepilot/internal/domain"

	"github.com/shopspring/decimal"
)

// MemoryOrderRepository is an in-process order store used by tests and by
// STORE_DRIVER=memory.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	now    func() time.Time
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]domain.Order),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	if o.Items == nil {
		o.Items = []domain.OrderItem{}
	}
	return o
}

func (r *MemoryOrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicateOrderNumber
		}
	}
	now := r.now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	r.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *MemoryOrderRepository) lookup(idOrNumber string) (domain.Order, bool) {
	if o, ok := r.orders[idOrNumber]; ok {
		return o, true
	}
	for _, o := range r.orders {
		if o.OrderNumber == idOrNumber {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (r *MemoryOrderRepository) Get(_ context.Context, idOrNumber string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.lookup(idOrNumber)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	out := cloneOrder(o)
	return &out, nil
}

func matchesFilter(o domain.Order, f domain.OrderFilter) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.Status) {
		return false
	}
	if slices.Contains(f.ExcludeStatuses, o.Status) {
		return false
	}
	if f.RestaurantID != "" && o.RestaurantID != f.RestaurantID {
		return false
	}
	if f.UserID != "" && o.UserID != f.UserID {
		return false
	}
	if f.OrderNumber != "" && o.OrderNumber != f.OrderNumber {
		return false
	}
	if !f.CreatedFrom.IsZero() && o.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedBefore.IsZero() && !o.CreatedAt.Before(f.CreatedBefore) {
		return false
	}
	return true
}

func (r *MemoryOrderRepository) List(_ context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Order{}
	for _, o := range r.orders {
		if matchesFilter(o, f) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if f.OldestFirst {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if f.OldestFirst {
			return a.OrderNumber < b.OrderNumber
		}
		return a.OrderNumber > b.OrderNumber
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *MemoryOrderRepository) Count(_ context.Context, f domain.OrderFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, o := range r.orders {
		if matchesFilter(o, f) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, idOrNumber string, upd domain.OrderUpdate) (*domain.Order, domain.OrderStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.lookup(idOrNumber)
	if !ok {
		return nil, "", domain.ErrOrderNotFound
	}
	previous := o.Status
	if err := upd.Apply(&o); err != nil {
		return nil, "", err
	}
	o.UpdatedAt = r.now()
	r.orders[o.ID] = o

	out := cloneOrder(o)
	return &out, previous, nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, idOrNumber string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.lookup(idOrNumber)
	if !ok {
		return 0, nil
	}
	delete(r.orders, o.ID)
	return 1, nil
}

func (r *MemoryOrderRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.orders))
	r.orders = make(map[string]domain.Order)
	return n, nil
}

func (r *MemoryOrderRepository) TopSellingItems(_ context.Context, limit int) ([]domain.TopItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct{ id, name string }
	totals := make(map[key]*domain.TopItem)
	for _, o := range r.orders {
		if o.Status != domain.StatusDelivered {
			continue
		}
		for _, item := range o.Items {
			k := key{item.ItemID, item.Name}
			t, ok := totals[k]
			if !ok {
				t = &domain.TopItem{ItemID: item.ItemID, Name: item.Name, Revenue: decimal.Zero}
				totals[k] = t
			}
			t.Quantity += item.Quantity
			t.Revenue = t.Revenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	out := make([]domain.TopItem, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type ledgerKey struct {
	date         string
	restaurantID string
}

// MemorySalesLedger keeps the rollup in process with the same idempotency
// semantics as the Postgres ledger.
type MemorySalesLedger struct {
	mu       sync.Mutex
	records  map[ledgerKey]*domain.SalesRecord
	applied  map[string]struct{}
	location *time.Location
}

func NewMemorySalesLedger(loc *time.Location) *MemorySalesLedger {
	if loc == nil {
		loc = time.UTC
	}
	return &MemorySalesLedger{
		records:  make(map[ledgerKey]*domain.SalesRecord),
		applied:  make(map[string]struct{}),
		location: loc,
	}
}

func (l *MemorySalesLedger) key(date time.Time, restaurantID string) ledgerKey {
	return ledgerKey{date: date.In(l.location).Format(domain.DateLayout), restaurantID: restaurantID}
}

func (l *MemorySalesLedger) Apply(_ context.Context, d domain.SalesDelta) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d.OrderID != "" {
		marker := d.OrderID + "|" + string(d.Outcome)
		if _, seen := l.applied[marker]; seen {
			return false, nil
		}
		l.applied[marker] = struct{}{}
	}

	k := l.key(d.Date, d.RestaurantID)
	rec, ok := l.records[k]
	if !ok {
		fresh := domain.EmptySalesRecord(domain.StartOfDay(d.Date, l.location), d.RestaurantID)
		rec = &fresh
		l.records[k] = rec
	}
	rec.Apply(d)
	return true, nil
}

func (l *MemorySalesLedger) Find(_ context.Context, date time.Time, restaurantID string) (*domain.SalesRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[l.key(date, restaurantID)]
	if !ok {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (l *MemorySalesLedger) FindRange(_ context.Context, from, to time.Time, restaurantID string) ([]domain.SalesRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var fromKey, toKey string
	if !from.IsZero() {
		fromKey = from.In(l.location).Format(domain.DateLayout)
	}
	if !to.IsZero() {
		toKey = to.In(l.location).Format(domain.DateLayout)
	}

	out := []domain.SalesRecord{}
	for k, rec := range l.records {
		if fromKey != "" && k.date < fromKey {
			continue
		}
		if toKey != "" && k.date > toKey {
			continue
		}
		if restaurantID != "" && k.restaurantID != restaurantID {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].RestaurantID < out[j].RestaurantID
	})
	return out, nil
}

func (l *MemorySalesLedger) DeleteAll(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = make(map[ledgerKey]*domain.SalesRecord)
	l.applied = make(map[string]struct{})
	return nil
}

// MemoryRebuildLock allows one rebuild at a time within the process.
type MemoryRebuildLock struct {
	mu sync.Mutex
}

func (l *MemoryRebuildLock) Acquire(_ context.Context) (func(), error) {
	if !l.mu.TryLock() {
		return nil, domain.ErrRebuildInProgress
	}
	return l.mu.Unlock, nil
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryOTPStore is a time-bounded code cache; expiry is checked on read.
type MemoryOTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]otpEntry
	now     func() time.Time
}

func NewMemoryOTPStore(ttl time.Duration) *MemoryOTPStore {
	return &MemoryOTPStore{
		ttl:     ttl,
		entries: make(map[string]otpEntry),
		now:     time.Now,
	}
}

func (s *MemoryOTPStore) Save(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phone] = otpEntry{code: code, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryOTPStore) Consume(_ context.Context, phone, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phone]
	if !ok {
		return false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, phone)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}
	delete(s.entries, phone)
	return true, nil
}
