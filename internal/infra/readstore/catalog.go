package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

// CatalogReadQueries covers the rows owned by external catalog CRUD that the
// ledger only reads: events, promos and redemption items.
type CatalogReadQueries interface {
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventByIDRow, error)
	GetPromoByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Promos, error)
	GetPromoByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Promos, error)
	GetRedemptionItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRedemptionItemByIDRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) EventByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event", err)
	}
	return &queries.EventView{
		ID:       row.ID,
		Title:    row.Title,
		Status:   row.Status,
		StartsAt: pgconv.TimePtrFromPgtype(row.StartsAt),
		EndsAt:   pgconv.TimePtrFromPgtype(row.EndsAt),
	}, nil
}

func (r *CatalogReadStore) PromoByID(ctx context.Context, id uuid.UUID) (*queries.PromoView, error) {
	row, err := r.queries.GetPromoByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo by id", err)
	}
	return toPromoView(row), nil
}

func (r *CatalogReadStore) PromoByCode(ctx context.Context, code string) (*queries.PromoView, error) {
	row, err := r.queries.GetPromoByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo by code", err)
	}
	return toPromoView(row), nil
}

func (r *CatalogReadStore) ItemByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetRedemptionItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get redemption item", err)
	}
	return &queries.ItemView{
		ID:                row.ID,
		Name:              row.Name,
		PointsRequired:    row.PointsRequired,
		StockQuantity:     row.StockQuantity,
		IsActive:          row.IsActive,
		DeliveryAvailable: row.DeliveryAvailable,
		PickupAvailable:   row.PickupAvailable,
	}, nil
}

func toPromoView(row sqlc.Promos) *queries.PromoView {
	return &queries.PromoView{
		ID:           row.ID,
		Code:         row.Code,
		Title:        row.Title,
		Status:       row.Status,
		BenefitType:  row.BenefitType,
		BenefitValue: pgconv.DecimalPtrFromNumeric(row.BenefitValue),
		Description:  row.Description,
		ValidFrom:    pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidUntil:   pgconv.TimePtrFromPgtype(row.ValidUntil),
		MaxUsage:     pgconv.Int32PtrFromPgtype(row.MaxUsage),
		CurrentUsage: row.CurrentUsage,
	}
}
