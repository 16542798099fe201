package panel

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/gateway"
	"dairy_admin/internal/store"
)

// spyGate records prompts and answers them all the same way.
type spyGate struct {
	answer bool
	calls  []Action
}

func (g *spyGate) Confirm(ctx context.Context, action Action, message string) bool {
	g.calls = append(g.calls, action)
	return g.answer
}

// deadRemote fails every call the way an unreachable API would.
type deadRemote struct{}

func (deadRemote) List(ctx context.Context) ([]entity.Record, error) {
	return nil, &gateway.NetworkError{Err: errors.New("connection refused")}
}
func (deadRemote) Create(ctx context.Context, fields map[string]any) (entity.Record, error) {
	return entity.Record{}, &gateway.NetworkError{Err: errors.New("connection refused")}
}
func (deadRemote) Update(ctx context.Context, id string, fields map[string]any) error {
	return &gateway.NetworkError{Err: errors.New("connection refused")}
}
func (deadRemote) Delete(ctx context.Context, id string) error {
	return &gateway.NetworkError{Err: errors.New("connection refused")}
}

func newOrdersController(gate Gate) (*Controller, store.Store) {
	st := store.NewMemoryStore()
	return NewController(entity.Orders, st, gate), st
}

func orderValues(customer string) map[string]string {
	return map[string]string{
		"customer": customer,
		"mobile":   "9876543210",
		"product":  "Fresh Milk",
		"quantity": "2",
		"amount":   "120",
		"status":   "pending",
		"address":  "123 Main St",
		"date":     "2024-01-15",
	}
}

func TestListPage_EmptyStoreHasOnePage(t *testing.T) {
	c, _ := newOrdersController(FixedGate(true))

	page := c.ListPage(1, 10)
	assert.Empty(t, page.Records)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalCount)
}

func TestListPage_PartialLastPage(t *testing.T) {
	c, st := newOrdersController(FixedGate(true))
	for i := 0; i < 25; i++ {
		st.Insert(map[string]any{"customer": fmt.Sprintf("c%02d", i)})
	}

	page := c.ListPage(3, 10)
	require.Len(t, page.Records, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, "c20", page.Records[0].String("customer"))
	assert.Equal(t, "c24", page.Records[4].String("customer"))
}

func TestListPage_PartitionHasNoGapsOrOverlaps(t *testing.T) {
	c, st := newOrdersController(FixedGate(true))
	for i := 0; i < 23; i++ {
		st.Insert(map[string]any{"customer": fmt.Sprintf("c%02d", i)})
	}

	var all []string
	for k := 1; k <= c.ListPage(1, 7).TotalPages; k++ {
		for _, rec := range c.ListPage(k, 7).Records {
			all = append(all, rec.String("customer"))
		}
	}
	require.Len(t, all, 23)
	for i, name := range all {
		assert.Equal(t, fmt.Sprintf("c%02d", i), name)
	}
}

func TestListPage_ClampsPageNumber(t *testing.T) {
	c, st := newOrdersController(FixedGate(true))
	for i := 0; i < 5; i++ {
		st.Insert(map[string]any{"customer": "x"})
	}

	assert.Equal(t, 1, c.ListPage(0, 10).Page)
	assert.Equal(t, 1, c.ListPage(99, 10).Page)
	assert.Len(t, c.ListPage(99, 10).Records, 5)
}

func TestSubmit_CreateInsertsWithDefaults(t *testing.T) {
	gate := &spyGate{answer: true}
	c, st := newOrdersController(gate)

	form := c.BeginCreate()
	assert.Equal(t, "pending", form.Values["status"])
	for k, v := range orderValues("John Doe") {
		form.Values[k] = v
	}

	rec, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, []Action{ActionCreate}, gate.calls)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, float64(2), rec.Number("quantity"))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSubmit_EditPreservesIDAndCreatedAt(t *testing.T) {
	c := NewController(entity.Products, store.NewMemoryStore(), FixedGate(true))
	seeded := c.Store().Insert(map[string]any{
		"name": "Fresh Milk", "category": "milk", "price": 60.0, "stock": 50.0,
		"unit": "liter", "description": "", "status": "available", "images": []string{},
	})

	form, err := c.BeginEdit(seeded.ID)
	require.NoError(t, err)
	form.Values["name"] = "Whole Milk"
	form.Values["price"] = "65"

	updated, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, updated.ID)
	assert.Equal(t, seeded.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Whole Milk", updated.String("name"))
	assert.Equal(t, float64(65), updated.Number("price"))
	assert.Equal(t, float64(50), updated.Number("stock"))
	assert.Equal(t, 1, c.Store().Len())
}

func TestSubmit_EditKeepsImmutableCounters(t *testing.T) {
	c := NewController(entity.DeliveryBoys, store.NewMemoryStore(), FixedGate(true))
	seeded := c.Store().Insert(map[string]any{
		"name": "Raj Kumar", "phone": "9876543210", "password": "hashed",
		"city": "Mumbai", "status": "active", "orders": 15.0, "image": []string{},
	})

	form, err := c.BeginEdit(seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, form.Values["password"], "stored hash must not travel into the form")
	form.Values["city"] = "Nagpur"

	updated, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, float64(15), updated.Number("orders"))
	assert.Equal(t, "Nagpur", updated.String("city"))
	// blank password keeps the stored hash
	assert.Equal(t, "hashed", updated.String("password"))
}

func TestSubmit_NewPasswordIsHashed(t *testing.T) {
	c := NewController(entity.DeliveryBoys, store.NewMemoryStore(), FixedGate(true))

	form := c.BeginCreate()
	form.Values["name"] = "Amit Singh"
	form.Values["phone"] = "9876543211"
	form.Values["password"] = "amit123"
	form.Values["city"] = "Delhi"

	rec, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	stored := rec.String("password")
	assert.NotEqual(t, "amit123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("amit123")))
}

func TestSubmit_ValidationFailsBeforeGateOrStore(t *testing.T) {
	gate := &spyGate{answer: true}
	c, st := newOrdersController(gate)

	form := c.BeginCreate()
	for k, v := range orderValues("John Doe") {
		form.Values[k] = v
	}
	form.Values["quantity"] = "0"

	_, err := c.Submit(context.Background(), form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)
	assert.Empty(t, gate.calls, "gate must not fire for invalid forms")
	assert.Equal(t, 0, st.Len())
}

func TestSubmit_OfferPriceMustBeBelowPrice(t *testing.T) {
	c := NewController(entity.Products, store.NewMemoryStore(), FixedGate(true))

	form := c.BeginCreate()
	form.Values["name"] = "Fresh Milk"
	form.Values["price"] = "60"
	form.Values["offerPrice"] = "70"
	form.Values["stock"] = "10"

	_, err := c.Submit(context.Background(), form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSubmit_DeclinedGateLeavesStoreUntouched(t *testing.T) {
	gate := &spyGate{answer: false}
	c, st := newOrdersController(gate)

	form := c.BeginCreate()
	for k, v := range orderValues("John Doe") {
		form.Values[k] = v
	}
	_, err := c.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, []Action{ActionCreate}, gate.calls)
}

func TestRequestDelete_DeclinedLeavesRecords(t *testing.T) {
	gate := &spyGate{answer: false}
	c, st := newOrdersController(gate)
	rec := st.Insert(map[string]any{"customer": "John Doe"})

	err := c.RequestDelete(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, []Action{ActionDelete}, gate.calls)
}

func TestRequestDelete_MissingIDIsBenign(t *testing.T) {
	c, _ := newOrdersController(FixedGate(true))
	assert.NoError(t, c.RequestDelete(context.Background(), "gone"))
}

func TestSubmit_RemoteFailureStillCompletesLocally(t *testing.T) {
	c := NewController(entity.Products, store.NewMemoryStore(), FixedGate(true)).
		WithRemote(deadRemote{}, nil)

	form := c.BeginCreate()
	form.Values["name"] = "Fresh Milk"
	form.Values["price"] = "60"
	form.Values["stock"] = "50"

	rec, err := c.Submit(context.Background(), form)
	require.NoError(t, err, "remote failure must not escape to the caller")
	assert.Equal(t, 1, c.Store().Len())
	assert.NotEmpty(t, rec.ID)
}

func TestRequestDelete_RemoteFailureStillRemovesLocally(t *testing.T) {
	st := store.NewMemoryStore()
	c := NewController(entity.Products, st, FixedGate(true)).WithRemote(deadRemote{}, nil)
	rec := st.Insert(map[string]any{"name": "Fresh Milk"})

	require.NoError(t, c.RequestDelete(context.Background(), rec.ID))
	assert.Equal(t, 0, st.Len())
}

func TestSync_FailureFallsBackToSamples(t *testing.T) {
	fallback := []entity.Record{{ID: "1", Fields: map[string]any{"name": "Fresh Milk"}}}
	c := NewController(entity.Products, store.NewMemoryStore(), FixedGate(true)).
		WithRemote(deadRemote{}, fallback)

	err := c.Sync(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, c.Store().Len())
}

func TestSync_FailureKeepsExistingMirror(t *testing.T) {
	st := store.NewMemoryStore()
	st.Insert(map[string]any{"name": "kept"})
	c := NewController(entity.Products, st, FixedGate(true)).
		WithRemote(deadRemote{}, []entity.Record{{ID: "f", Fields: map[string]any{"name": "fallback"}}})

	_ = c.Sync(context.Background())
	require.Equal(t, 1, st.Len())
	assert.Equal(t, "kept", st.List()[0].String("name"))
}

func TestReadOnlyAndAppendOnlyPanels(t *testing.T) {
	tickets := NewController(entity.SupportTickets, store.NewMemoryStore(), FixedGate(true))
	_, err := tickets.Submit(context.Background(), tickets.BeginCreate())
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, tickets.RequestDelete(context.Background(), "1"), ErrReadOnly)

	payments := NewController(entity.Payments, store.NewMemoryStore(), FixedGate(true))
	_, err = payments.Submit(context.Background(), payments.BeginCreate())
	assert.ErrorIs(t, err, ErrReadOnly)
	// the payment log may still be pruned
	assert.NoError(t, payments.RequestDelete(context.Background(), "gone"))
}

func TestChangeFuncFiresAfterMutations(t *testing.T) {
	var seen []Action
	c, st := newOrdersController(FixedGate(true))
	c.WithChangeFunc(func(action Action, schema entity.Schema, rec entity.Record) {
		seen = append(seen, action)
	})

	form := c.BeginCreate()
	for k, v := range orderValues("John Doe") {
		form.Values[k] = v
	}
	rec, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.NoError(t, c.RequestDelete(context.Background(), rec.ID))

	assert.Equal(t, []Action{ActionCreate, ActionDelete}, seen)
	assert.Equal(t, 0, st.Len())
}

func TestBeginEdit_MissingRecord(t *testing.T) {
	c, _ := newOrdersController(FixedGate(true))
	_, err := c.BeginEdit("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
