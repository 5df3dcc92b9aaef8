package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var shipmentColumns = []string{
	"id", "tracking_number", "booking_id", "awb_number",
	"sender_name", "sender_phone", "sender_email", "sender_address",
	"sender_city", "sender_state", "sender_country", "sender_pincode",
	"receiver_name", "receiver_phone", "receiver_email", "receiver_address",
	"receiver_city", "receiver_state", "receiver_country", "receiver_pincode",
	"package_description", "package_type", "delivery_type", "shipment_type", "priority",
	"weight", "length", "width", "height", "volumetric_weight", "number_of_packages",
	"declared_value", "insurance_required", "special_handling_instructions",
	"status", "base_price", "tax", "total_price", "cod_enabled", "cod_amount",
	"courier_partner_id", "distance", "estimated_delivery", "actual_delivery",
	"created_at", "updated_at",
}

var returningShipment = "RETURNING " + strings.Join(shipmentColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create номер отслеживания уникален на уровне таблицы,
// повтор возвращается как ErrTrackingNumberTaken.
func (r *Repository) Create(ctx context.Context, entity entities.Shipment) (*entities.Shipment, error) {
	m := FromDomain(&entity)

	query, args, err := qb.
		Insert("shipments").
		Columns(shipmentColumns[1:]...).
		Values(
			m.TrackingNumber, m.BookingID, m.AWBNumber,
			m.SenderName, m.SenderPhone, m.SenderEmail, m.SenderAddress,
			m.SenderCity, m.SenderState, m.SenderCountry, m.SenderPincode,
			m.ReceiverName, m.ReceiverPhone, m.ReceiverEmail, m.ReceiverAddress,
			m.ReceiverCity, m.ReceiverState, m.ReceiverCountry, m.ReceiverPincode,
			m.PackageDescription, m.PackageType, m.DeliveryType, m.ShipmentType, m.Priority,
			m.Weight, m.Length, m.Width, m.Height, m.VolumetricWeight, m.NumberOfPackages,
			m.DeclaredValue, m.InsuranceRequired, m.SpecialHandlingInstructions,
			m.Status, m.BasePrice, m.Tax, m.TotalPrice, m.CodEnabled, m.CodAmount,
			m.CourierPartnerID, m.Distance, m.EstimatedDelivery, m.ActualDelivery,
			m.CreatedAt, m.UpdatedAt,
		).
		Suffix(returningShipment).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	var model ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrTrackingNumberTaken
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM shipments WHERE tracking_number = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, "getbyid")
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	return r.getBy(ctx, sq.Eq{"tracking_number": trackingNumber}, "getbytrackingnumber")
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, change entities.StatusChange) (*entities.Shipment, error) {
	builder := qb.
		Update("shipments").
		Set("status", change.Status.String()).
		Set("updated_at", change.UpdatedAt)

	// фактическую доставку только проставляем, но не стираем
	if change.ActualDelivery != nil {
		builder = builder.Set("actual_delivery", *change.ActualDelivery)
	}

	return r.update(ctx, builder.Where(sq.Eq{"id": id}), "updatestatus")
}

func (r *Repository) AttachAWB(ctx context.Context, id int64, awbNumber string, updatedAt time.Time) (*entities.Shipment, error) {
	builder := qb.
		Update("shipments").
		Set("awb_number", awbNumber).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})

	return r.update(ctx, builder, "attachawb")
}

func (r *Repository) getBy(ctx context.Context, where sq.Eq, op string) (*entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	var model ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) update(ctx context.Context, builder sq.UpdateBuilder, op string) (*entities.Shipment, error) {
	query, args, err := builder.Suffix(returningShipment).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	var model ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomain(&model), nil
}

func scanShipment(row pgx.Row, s *ShipmentDB) error {
	return row.Scan(
		&s.ID, &s.TrackingNumber, &s.BookingID, &s.AWBNumber,
		&s.SenderName, &s.SenderPhone, &s.SenderEmail, &s.SenderAddress,
		&s.SenderCity, &s.SenderState, &s.SenderCountry, &s.SenderPincode,
		&s.ReceiverName, &s.ReceiverPhone, &s.ReceiverEmail, &s.ReceiverAddress,
		&s.ReceiverCity, &s.ReceiverState, &s.ReceiverCountry, &s.ReceiverPincode,
		&s.PackageDescription, &s.PackageType, &s.DeliveryType, &s.ShipmentType, &s.Priority,
		&s.Weight, &s.Length, &s.Width, &s.Height, &s.VolumetricWeight, &s.NumberOfPackages,
		&s.DeclaredValue, &s.InsuranceRequired, &s.SpecialHandlingInstructions,
		&s.Status, &s.BasePrice, &s.Tax, &s.TotalPrice, &s.CodEnabled, &s.CodAmount,
		&s.CourierPartnerID, &s.Distance, &s.EstimatedDelivery, &s.ActualDelivery,
		&s.CreatedAt, &s.UpdatedAt,
	)
}
