package tracking

import (
	"logistics/internal/entities"
)

func ToDomain(t *TrackingHistoryDB) *entities.TrackingHistory {
	if t == nil {
		return nil
	}

	return &entities.TrackingHistory{
		ID:          t.ID,
		ShipmentID:  t.ShipmentID,
		Status:      entities.ShipmentStatus(t.Status),
		Location:    t.Location,
		Description: t.Description,
		UpdatedBy:   t.UpdatedBy,
		Timestamp:   t.Timestamp,
	}
}

func FromDomain(t *entities.TrackingHistory) *TrackingHistoryDB {
	if t == nil {
		return nil
	}

	return &TrackingHistoryDB{
		ID:          t.ID,
		ShipmentID:  t.ShipmentID,
		Status:      t.Status.String(),
		Location:    t.Location,
		Description: t.Description,
		UpdatedBy:   t.UpdatedBy,
		Timestamp:   t.Timestamp,
	}
}

func ToDomainList(recordsDB []TrackingHistoryDB) []entities.TrackingHistory {
	if len(recordsDB) == 0 {
		return []entities.TrackingHistory{}
	}

	result := make([]entities.TrackingHistory, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = *ToDomain(&recordDB)
	}
	return result
}
