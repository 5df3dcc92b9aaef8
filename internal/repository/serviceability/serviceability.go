package serviceability

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/serviceability"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByPartnerAndPincode(ctx context.Context, partnerID int64, pincode string) (*entities.Serviceability, error) {
	query := `SELECT id, partner_id, pincode, city, state, country, status, estimated_days,
			cod_available, reverse_pickup_available, last_checked
		FROM serviceability
		WHERE partner_id = $1 AND pincode = $2`

	var model ServiceabilityDB
	err := r.querier.QueryRow(ctx, query, partnerID, pincode).
		Scan(
			&model.ID,
			&model.PartnerID,
			&model.Pincode,
			&model.City,
			&model.State,
			&model.Country,
			&model.Status,
			&model.EstimatedDays,
			&model.CodAvailable,
			&model.ReversePickupAvailable,
			&model.LastChecked,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceability.ErrServiceabilityNotFound
		}

		return nil, fmt.Errorf("unexpected serviceability repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

// Create вставка без ON CONFLICT: повтор ключа (partner_id, pincode)
// должен дойти до сервиса как ErrConflict.
func (r *Repository) Create(ctx context.Context, entity entities.Serviceability) (*entities.Serviceability, error) {
	model := FromDomain(&entity)
	query := `INSERT INTO serviceability (partner_id, pincode, city, state, country, status,
			estimated_days, cod_available, reverse_pickup_available, last_checked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.querier.QueryRow(
		ctx,
		query,
		model.PartnerID,
		model.Pincode,
		model.City,
		model.State,
		model.Country,
		model.Status,
		model.EstimatedDays,
		model.CodAvailable,
		model.ReversePickupAvailable,
		model.LastChecked,
	).Scan(&model.ID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, serviceability.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, serviceability.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected serviceability repository create error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) DeleteCheckedBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := qb.
		Delete("serviceability").
		Where(sq.Lt{"last_checked": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected serviceability repository delete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected serviceability repository delete error: %w", err)
	}

	return tag.RowsAffected(), nil
}
