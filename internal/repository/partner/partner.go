package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/pricing"
)

const partnerColumns = `id, name, code, base_rate, fuel_surcharge_pct, service_tax_pct, min_charge, active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CourierPartner, error) {
	query := `SELECT ` + partnerColumns + `
		FROM courier_partners
		WHERE id = $1`

	var partnerModel PartnerDB
	err := scanPartner(r.querier.QueryRow(ctx, query, id), &partnerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPartnerNotFound
		}

		return nil, fmt.Errorf("unexpected partner repository getbyid error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}

func (r *Repository) GetActive(ctx context.Context) ([]entities.CourierPartner, error) {
	query := `SELECT ` + partnerColumns + `
		FROM courier_partners
		WHERE active
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository getactive error: %w", err)
	}
	defer rows.Close()

	// партнеров единицы, справочник маленький
	partnerModels := make([]PartnerDB, 0, 8)
	for rows.Next() {
		var partnerModel PartnerDB
		if err := scanPartner(rows, &partnerModel); err != nil {
			return nil, fmt.Errorf("unexpected partner repository getactive error: %w", err)
		}
		partnerModels = append(partnerModels, partnerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository getactive error: %w", err)
	}

	return ToDomainList(partnerModels), nil
}

func scanPartner(row pgx.Row, p *PartnerDB) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Code,
		&p.BaseRate,
		&p.FuelSurchargePct,
		&p.ServiceTaxPct,
		&p.MinCharge,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
