package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/alert"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type alertRepository struct {
	db *database.DB
}

func NewAlertRepository(db *database.DB) alert.Repository {
	return &alertRepository{db: db}
}

// Create implements alert.Repository.
func (r *alertRepository) Create(ctx context.Context, a alert.Alert) (alert.Alert, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		INSERT INTO attendance_alerts (
			id, employee_id, alert_type, message, alert_date, is_read, created_by
		) VALUES (
			$1, $2, $3, $4, $5, false, $6
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.EmployeeID,
		a.Type,
		a.Message,
		a.AlertDate,
		a.CreatedBy,
	).Scan(&a.CreatedAt)

	if err != nil {
		return alert.Alert{}, fmt.Errorf("failed to create alert: %w", err)
	}

	return a, nil
}

// ListByEmployee implements alert.Repository.
func (r *alertRepository) ListByEmployee(ctx context.Context, employeeID string) ([]alert.Alert, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT
			al.id, al.employee_id, al.alert_type, al.message, al.alert_date,
			al.is_read, al.read_at, al.created_by, al.created_at,
			e.full_name AS employee_name
		FROM attendance_alerts al
		LEFT JOIN employees e ON e.id = al.employee_id
		WHERE al.employee_id = $1
		ORDER BY al.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.Alert
	for rows.Next() {
		var a alert.Alert
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Type, &a.Message, &a.AlertDate,
			&a.IsRead, &a.ReadAt, &a.CreatedBy, &a.CreatedAt,
			&a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alerts: %w", err)
	}

	return alerts, nil
}

// MarkAsRead implements alert.Repository. Missing or already-read alerts are
// a silent no-op so a stale client retry never errors.
func (r *alertRepository) MarkAsRead(ctx context.Context, id string) error {
	q := r.db.QuerierFromContext(ctx)

	query := `
		UPDATE attendance_alerts
		SET is_read = true, read_at = NOW()
		WHERE id = $1 AND is_read = false
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark alert as read: %w", err)
	}

	return nil
}
