package tracking

import (
	"context"
	"fmt"

	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/shipment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append история только дописывается, обновления и удаления нет.
func (r *Repository) Append(ctx context.Context, record entities.TrackingHistory) (*entities.TrackingHistory, error) {
	model := FromDomain(&record)
	query := `INSERT INTO tracking_history (shipment_id, status, location, description, updated_by, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.querier.QueryRow(
		ctx,
		query,
		model.ShipmentID,
		model.Status,
		model.Location,
		model.Description,
		model.UpdatedBy,
		model.Timestamp,
	).Scan(&model.ID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return ToDomain(model), nil
}

// ListByShipmentID от новых к старым, при равном времени по id.
func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID int64) ([]entities.TrackingHistory, error) {
	query := `SELECT id, shipment_id, status, location, description, updated_by, timestamp
		FROM tracking_history
		WHERE shipment_id = $1
		ORDER BY timestamp DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]TrackingHistoryDB, 0, 8)
	for rows.Next() {
		var recordModel TrackingHistoryDB
		err := rows.Scan(
			&recordModel.ID,
			&recordModel.ShipmentID,
			&recordModel.Status,
			&recordModel.Location,
			&recordModel.Description,
			&recordModel.UpdatedBy,
			&recordModel.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	return ToDomainList(recordModels), nil
}
