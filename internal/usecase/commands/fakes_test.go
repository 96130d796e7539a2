//go:build unit

package commands_test

import (
	"context"

	domcart "shop-api/internal/domain/cart"
	domcoupon "shop-api/internal/domain/coupon"
	domreview "shop-api/internal/domain/review"
	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs the transactional closure directly against in-memory fakes.
// Commit/rollback semantics are covered by the e2e suite; these fakes verify
// the orchestration logic only.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

type fakeTx struct {
	carts       *fakeCartRepo
	coupons     *fakeCouponRepo
	reviews     *fakeReviewRepo
	ratingStats *fakeRatingStatsRepo
	counters    *fakeCounterRepo
	reads       *fakeReads
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		carts:       &fakeCartRepo{},
		coupons:     &fakeCouponRepo{},
		reviews:     &fakeReviewRepo{},
		ratingStats: &fakeRatingStatsRepo{},
		counters:    &fakeCounterRepo{},
		reads:       newFakeReads(),
	}
}

func (t *fakeTx) Carts() shared.CartRepository              { return t.carts }
func (t *fakeTx) Coupons() shared.CouponRepository          { return t.coupons }
func (t *fakeTx) Reviews() shared.ReviewRepository          { return t.reviews }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository { return t.ratingStats }
func (t *fakeTx) Counters() shared.CounterRepository        { return t.counters }
func (t *fakeTx) Reads() shared.CommandReads                { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                             { return nil }

type fakeCartRepo struct {
	snapshot *shared.CartSnapshot

	ensured       []uuid.UUID
	inserted      []domcart.Item
	updated       map[int64]int32
	removed       []int64
	cleared       bool
	updatedTotals []float64

	findErr error
}

func (r *fakeCartRepo) Ensure(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	r.ensured = append(r.ensured, userID)
	return nil
}

func (r *fakeCartRepo) FindByUserForUpdate(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) (*shared.CartSnapshot, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.snapshot, nil
}

func (r *fakeCartRepo) InsertItem(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, item domcart.Item) error {
	r.inserted = append(r.inserted, item)
	return nil
}

func (r *fakeCartRepo) UpdateItemQuantity(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, productID int64, quantity int32) error {
	if r.updated == nil {
		r.updated = make(map[int64]int32)
	}
	r.updated[productID] = quantity
	return nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, productID int64) (bool, error) {
	r.removed = append(r.removed, productID)
	return true, nil
}

func (r *fakeCartRepo) ClearItems(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) error {
	r.cleared = true
	return nil
}

func (r *fakeCartRepo) UpdateTotal(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, total float64) error {
	r.updatedTotals = append(r.updatedTotals, total)
	return nil
}

type fakeCouponRepo struct {
	created    *shared.CouponSnapshot
	createErr  error
	consumed   *shared.CouponSnapshot
	consumeErr error

	createdCoupons []*domcoupon.Coupon
	consumedCodes  []string
}

func (r *fakeCouponRepo) Create(_ context.Context, _ sqlc.DBTX, c *domcoupon.Coupon) (*shared.CouponSnapshot, error) {
	r.createdCoupons = append(r.createdCoupons, c)
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.created, nil
}

func (r *fakeCouponRepo) Consume(_ context.Context, _ sqlc.DBTX, code string) (*shared.CouponSnapshot, error) {
	r.consumedCodes = append(r.consumedCodes, code)
	if r.consumeErr != nil {
		return nil, r.consumeErr
	}
	return r.consumed, nil
}

type fakeReviewRepo struct {
	createErr error
	deleted   bool
	deleteErr error

	createdReviews []*domreview.Review
	deletedIDs     []int64
}

func (r *fakeReviewRepo) Create(_ context.Context, _ sqlc.DBTX, rev *domreview.Review) (int64, error) {
	r.createdReviews = append(r.createdReviews, rev)
	if r.createErr != nil {
		return 0, r.createErr
	}
	return rev.ID(), nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, _ sqlc.DBTX, reviewID int64, _ uuid.UUID) (bool, error) {
	r.deletedIDs = append(r.deletedIDs, reviewID)
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	return r.deleted, nil
}

type fakeRatingStatsRepo struct {
	recalced []int64
}

func (r *fakeRatingStatsRepo) RecalcProductRatingStats(_ context.Context, _ sqlc.DBTX, productID int64) error {
	r.recalced = append(r.recalced, productID)
	return nil
}

type fakeCounterRepo struct {
	next int64
}

func (r *fakeCounterRepo) Next(_ context.Context, _ sqlc.DBTX, _ string) (int64, error) {
	r.next++
	return r.next, nil
}

type fakeReads struct {
	products map[int64]*shared.ProductSnapshot
	coupons  map[string]*shared.CouponSnapshot
	reviews  map[int64]*shared.ReviewSnapshot
}

func newFakeReads() *fakeReads {
	return &fakeReads{
		products: make(map[int64]*shared.ProductSnapshot),
		coupons:  make(map[string]*shared.CouponSnapshot),
		reviews:  make(map[int64]*shared.ReviewSnapshot),
	}
}

func (r *fakeReads) ProductByID(_ context.Context, id int64) (*shared.ProductSnapshot, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
}

func (r *fakeReads) CouponByCode(_ context.Context, code string) (*shared.CouponSnapshot, error) {
	if c, ok := r.coupons[code]; ok {
		return c, nil
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ReviewByID(_ context.Context, id int64) (*shared.ReviewSnapshot, error) {
	if rev, ok := r.reviews[id]; ok {
		return rev, nil
	}
	return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
}

// fakeCartCache records invalidations.
type fakeCartCache struct {
	deleted []uuid.UUID
}

func (c *fakeCartCache) Get(_ context.Context, _ uuid.UUID) (*queries.CartView, error) {
	return nil, queries.ErrCartCacheMiss
}

func (c *fakeCartCache) Set(_ context.Context, _ uuid.UUID, _ *queries.CartView) error {
	return nil
}

func (c *fakeCartCache) Delete(_ context.Context, userID uuid.UUID) error {
	c.deleted = append(c.deleted, userID)
	return nil
}
