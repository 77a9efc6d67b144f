package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripsplit/tripsplit/internal/models"
)

// CreateSettlement appends a settlement to the trip's ledger. Settlements are
// never updated or deleted afterwards.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	if settlement.Status == "" {
		settlement.Status = models.SettlementCompleted
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, trip_id, payer, receiver, amount,
		     original_amount, original_payer, original_receiver,
		     processed_by, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.TripID, settlement.Payer, settlement.Receiver, settlement.Amount,
		settlement.OriginalAmount, settlement.OriginalPayer, settlement.OriginalReceiver,
		settlement.ProcessedBy, string(settlement.Status), settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlementsByTrip retrieves all settlements for a trip, newest first.
func (s *SQLiteStore) ListSettlementsByTrip(ctx context.Context, tripID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, payer, receiver, amount,
		     original_amount, original_payer, original_receiver,
		     processed_by, status, created_at
		 FROM settlements WHERE trip_id = ? ORDER BY created_at DESC, id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var status string
		if err := rows.Scan(&settlement.ID, &settlement.TripID, &settlement.Payer, &settlement.Receiver,
			&settlement.Amount, &settlement.OriginalAmount, &settlement.OriginalPayer,
			&settlement.OriginalReceiver, &settlement.ProcessedBy, &status,
			&settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlement.Status = models.SettlementStatus(status)
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
