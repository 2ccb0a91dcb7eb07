//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type pair [2]uuid.UUID

// ledgerState is the in-memory stand-in for the database.
type ledgerState struct {
	points      map[uuid.UUID]int64
	events      map[uuid.UUID]event.Event
	promos      map[uuid.UUID]*promo.Promo
	promoUsage  map[uuid.UUID]int32
	usages      map[pair]time.Time
	items       map[uuid.UUID]redemption.ItemSpec
	checkIns    map[pair]*checkin.CheckIn
	redemptions map[uuid.UUID]*redemption.Redemption
	adjustments []*adjustment.PointAdjustment
}

func (s *ledgerState) clone() *ledgerState {
	c := &ledgerState{
		points:      make(map[uuid.UUID]int64, len(s.points)),
		events:      s.events,
		promos:      s.promos,
		promoUsage:  make(map[uuid.UUID]int32, len(s.promoUsage)),
		usages:      make(map[pair]time.Time, len(s.usages)),
		items:       make(map[uuid.UUID]redemption.ItemSpec, len(s.items)),
		checkIns:    make(map[pair]*checkin.CheckIn, len(s.checkIns)),
		redemptions: make(map[uuid.UUID]*redemption.Redemption, len(s.redemptions)),
		adjustments: append([]*adjustment.PointAdjustment(nil), s.adjustments...),
	}
	for k, v := range s.points {
		c.points[k] = v
	}
	for k, v := range s.promoUsage {
		c.promoUsage[k] = v
	}
	for k, v := range s.usages {
		c.usages[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.checkIns {
		c.checkIns[k] = v
	}
	for k, v := range s.redemptions {
		c.redemptions[k] = cloneRedemption(v)
	}
	return c
}

func cloneRedemption(r *redemption.Redemption) *redemption.Redemption {
	return redemption.ReconstructRedemption(r.ID(), r.UserID(), r.ItemID(), r.PointsUsed(), r.DeliveryMethod(),
		r.PickupEventID(), r.Address(), r.Phone(), r.Status(), r.AdminNotes(), r.StockReserved(), r.RedeemedAt(), r.UpdatedAt())
}

// fakeUoW serializes transactions and restores the snapshot on error, which
// is what the postgres unit of work guarantees for a single transaction.
type fakeUoW struct {
	mu      sync.Mutex
	state   *ledgerState
	commits int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: &ledgerState{
		points:      map[uuid.UUID]int64{},
		events:      map[uuid.UUID]event.Event{},
		promos:      map[uuid.UUID]*promo.Promo{},
		promoUsage:  map[uuid.UUID]int32{},
		usages:      map[pair]time.Time{},
		items:       map[uuid.UUID]redemption.ItemSpec{},
		checkIns:    map[pair]*checkin.CheckIn{},
		redemptions: map[uuid.UUID]*redemption.Redemption{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &fakeTx{s: work}); err != nil {
		return err
	}
	u.state = work
	u.commits++
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeTx{s: u.state}
}

func (u *fakeUoW) addUser(points int64) uuid.UUID {
	id := uuid.New()
	u.state.points[id] = points
	return id
}

func (u *fakeUoW) addEvent(status event.Status, endsAt *time.Time) event.Event {
	ev := event.Event{ID: uuid.New(), Title: "Event " + string(status), Status: status, EndsAt: endsAt}
	u.state.events[ev.ID] = ev
	return ev
}

func (u *fakeUoW) addItem(price int64, stock int32) redemption.ItemSpec {
	it := redemption.ItemSpec{
		ID: uuid.New(), Name: "Item", PointsRequired: price, StockQuantity: stock,
		IsActive: true, DeliveryAvailable: true, PickupAvailable: true,
	}
	u.state.items[it.ID] = it
	return it
}

func (u *fakeUoW) addPromo(p *promo.Promo) {
	u.state.promos[p.ID()] = p
	u.state.promoUsage[p.ID()] = p.CurrentUsage()
}

func (u *fakeUoW) balance(userID uuid.UUID) int64 { return u.state.points[userID] }
func (u *fakeUoW) stock(itemID uuid.UUID) int32   { return u.state.items[itemID].StockQuantity }

type fakeTx struct {
	s *ledgerState
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (t *fakeTx) Balances() shared.BalanceStore            { return t }
func (t *fakeTx) CheckIns() shared.CheckInRepository       { return t }
func (t *fakeTx) Promos() shared.PromoRepository           { return t }
func (t *fakeTx) Items() shared.ItemRepository             { return t }
func (t *fakeTx) Redemptions() shared.RedemptionRepository { return (*fakeRedemptions)(t) }
func (t *fakeTx) Adjustments() shared.AdjustmentRepository { return t }
func (t *fakeTx) Reads() shared.CommandReads               { return t }

func (t *fakeTx) ApplyDelta(_ context.Context, userID uuid.UUID, delta int64, clamp bool) (balance.Change, error) {
	current, ok := t.s.points[userID]
	if !ok {
		return balance.Change{}, notFound("user not found")
	}
	change, err := balance.ApplyDelta(current, delta, clamp)
	if err != nil {
		return balance.Change{}, err
	}
	t.s.points[userID] = change.After
	return change, nil
}

func (t *fakeTx) Insert(_ context.Context, c *checkin.CheckIn) (bool, error) {
	if _, ok := t.s.points[c.UserID()]; !ok {
		return false, infra.WrapRepoErr("fk", nil, infra.KindForeignKeyViolated)
	}
	key := pair{c.UserID(), c.EventID()}
	if _, dup := t.s.checkIns[key]; dup {
		return false, nil
	}
	t.s.checkIns[key] = c
	return true, nil
}

func (t *fakeTx) InsertUsage(_ context.Context, userID, promoID uuid.UUID, usedAt time.Time) (bool, error) {
	if _, ok := t.s.points[userID]; !ok {
		return false, infra.WrapRepoErr("fk", nil, infra.KindForeignKeyViolated)
	}
	key := pair{userID, promoID}
	if _, dup := t.s.usages[key]; dup {
		return false, nil
	}
	t.s.usages[key] = usedAt
	return true, nil
}

func (t *fakeTx) IncrementUsage(_ context.Context, promoID uuid.UUID) (bool, error) {
	p := t.s.promos[promoID]
	if p.MaxUsage() != nil && t.s.promoUsage[promoID] >= *p.MaxUsage() {
		return false, nil
	}
	t.s.promoUsage[promoID]++
	return true, nil
}

func (t *fakeTx) DecrementStock(_ context.Context, itemID uuid.UUID) (bool, error) {
	it := t.s.items[itemID]
	if it.StockQuantity <= 0 {
		return false, nil
	}
	it.StockQuantity--
	t.s.items[itemID] = it
	return true, nil
}

func (t *fakeTx) RestoreStock(_ context.Context, itemID uuid.UUID) (bool, error) {
	it := t.s.items[itemID]
	if it.StockQuantity == redemption.UnlimitedStock {
		return false, nil
	}
	it.StockQuantity++
	t.s.items[itemID] = it
	return true, nil
}

func (t *fakeTx) Create(_ context.Context, a *adjustment.PointAdjustment) error {
	t.s.adjustments = append(t.s.adjustments, a)
	return nil
}

func (t *fakeTx) EventByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	ev, ok := t.s.events[id]
	if !ok {
		return nil, notFound("event not found")
	}
	return &ev, nil
}

func (t *fakeTx) PromoByID(_ context.Context, id uuid.UUID) (*promo.Promo, error) {
	p, ok := t.s.promos[id]
	if !ok {
		return nil, notFound("promo not found")
	}
	return promo.ReconstructPromo(p.ID(), p.Code(), p.Title(), p.Status(), p.Benefit(),
		p.ValidFrom(), p.ValidUntil(), p.MaxUsage(), t.s.promoUsage[id]), nil
}

func (t *fakeTx) ItemByID(_ context.Context, id uuid.UUID) (*redemption.ItemSpec, error) {
	it, ok := t.s.items[id]
	if !ok {
		return nil, notFound("item not found")
	}
	return &it, nil
}

func (t *fakeTx) UserPoints(_ context.Context, userID uuid.UUID) (int64, error) {
	p, ok := t.s.points[userID]
	if !ok {
		return 0, notFound("user not found")
	}
	return p, nil
}

type fakeRedemptions fakeTx

func (r *fakeRedemptions) Create(_ context.Context, red *redemption.Redemption) error {
	r.s.redemptions[red.ID()] = cloneRedemption(red)
	return nil
}

func (r *fakeRedemptions) FindForUpdate(_ context.Context, id uuid.UUID) (*redemption.Redemption, error) {
	red, ok := r.s.redemptions[id]
	if !ok {
		return nil, notFound("redemption not found")
	}
	return cloneRedemption(red), nil
}

func (r *fakeRedemptions) UpdateStatus(_ context.Context, red *redemption.Redemption) error {
	r.s.redemptions[red.ID()] = cloneRedemption(red)
	return nil
}
