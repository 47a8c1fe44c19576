package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/ashesthetic/hello-deer/backend/internal/schedule"
)

// GetSchedulesByWeek returns every employee's persisted schedule for the week
// starting at the given Monday (YYYY-MM-DD), shifts included.
func (r *Repository) GetSchedulesByWeek(weekStartDate string) ([]*domain.EmployeeSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.id,
			s.employee_id,
			s.week_start_date,
			s.week_end_date,
			s.notes,
			s.weekly_total_hours,
			s.created_at,
			s.version,
			ss.shift_date,
			ss.start_time,
			ss.end_time,
			ss.total_hour
		FROM schedules s
		LEFT JOIN schedule_shifts ss ON s.id = ss.schedule_id
		WHERE s.week_start_date = $1
		ORDER BY s.id, ss.shift_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, weekStartDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedulesMap := make(map[int64]*domain.EmployeeSchedule)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID               int64
			EmployeeID       int64
			WeekStartDate    time.Time
			WeekEndDate      time.Time
			Notes            string
			WeeklyTotalHours float64
			CreatedAt        time.Time
			Version          int32

			ShiftDate sql.NullTime
			StartTime sql.NullString
			EndTime   sql.NullString
			TotalHour sql.NullFloat64
		}

		dst := []any{
			&row.ID,
			&row.EmployeeID,
			&row.WeekStartDate,
			&row.WeekEndDate,
			&row.Notes,
			&row.WeeklyTotalHours,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftDate,
			&row.StartTime,
			&row.EndTime,
			&row.TotalHour,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		es, exists := schedulesMap[row.ID]
		if !exists {
			es = &domain.EmployeeSchedule{
				ID:               row.ID,
				EmployeeID:       row.EmployeeID,
				WeekStartDate:    row.WeekStartDate.Format(schedule.DateLayout),
				WeekEndDate:      row.WeekEndDate.Format(schedule.DateLayout),
				Shifts:           make([]domain.ScheduleShift, 0),
				Notes:            row.Notes,
				WeeklyTotalHours: row.WeeklyTotalHours,
				CreatedAt:        row.CreatedAt,
				Version:          row.Version,
			}
			schedulesMap[row.ID] = es
			order = append(order, row.ID)
		}

		// a schedule without any shift rows only appears transiently while a
		// reconciliation transaction is replacing them
		if !row.ShiftDate.Valid {
			continue
		}

		es.Shifts = append(es.Shifts, domain.ScheduleShift{
			Date:      row.ShiftDate.Time.Format(schedule.DateLayout),
			StartTime: row.StartTime.String,
			EndTime:   row.EndTime.String,
			TotalHour: row.TotalHour.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	schedules := make([]*domain.EmployeeSchedule, 0, len(order))
	for _, id := range order {
		schedules = append(schedules, schedulesMap[id])
	}

	return schedules, nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.EmployeeSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.employee_id,
			s.week_start_date,
			s.week_end_date,
			s.notes,
			s.weekly_total_hours,
			s.created_at,
			s.version,
			ss.shift_date,
			ss.start_time,
			ss.end_time,
			ss.total_hour
		FROM schedules s
		LEFT JOIN schedule_shifts ss ON s.id = ss.schedule_id
		WHERE s.id = $1
		ORDER BY ss.shift_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var es *domain.EmployeeSchedule

	for rows.Next() {
		var row struct {
			EmployeeID       int64
			WeekStartDate    time.Time
			WeekEndDate      time.Time
			Notes            string
			WeeklyTotalHours float64
			CreatedAt        time.Time
			Version          int32

			ShiftDate sql.NullTime
			StartTime sql.NullString
			EndTime   sql.NullString
			TotalHour sql.NullFloat64
		}

		dst := []any{
			&row.EmployeeID,
			&row.WeekStartDate,
			&row.WeekEndDate,
			&row.Notes,
			&row.WeeklyTotalHours,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftDate,
			&row.StartTime,
			&row.EndTime,
			&row.TotalHour,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if es == nil {
			es = &domain.EmployeeSchedule{
				ID:               id,
				EmployeeID:       row.EmployeeID,
				WeekStartDate:    row.WeekStartDate.Format(schedule.DateLayout),
				WeekEndDate:      row.WeekEndDate.Format(schedule.DateLayout),
				Shifts:           make([]domain.ScheduleShift, 0),
				Notes:            row.Notes,
				WeeklyTotalHours: row.WeeklyTotalHours,
				CreatedAt:        row.CreatedAt,
				Version:          row.Version,
			}
		}

		if !row.ShiftDate.Valid {
			continue
		}

		es.Shifts = append(es.Shifts, domain.ScheduleShift{
			Date:      row.ShiftDate.Time.Format(schedule.DateLayout),
			StartTime: row.StartTime.String,
			EndTime:   row.EndTime.String,
			TotalHour: row.TotalHour.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if es == nil {
		return nil, sql.ErrNoRows
	}

	return es, nil
}

func (r *Repository) CreateSchedule(es *domain.EmployeeSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := createScheduleTx(ctx, tx, es); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) UpdateSchedule(es *domain.EmployeeSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := updateScheduleTx(ctx, tx, es); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) DeleteSchedule(id int64) error {
	query := `
		DELETE FROM schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// ApplyReconciliation applies a whole reconciliation plan in one transaction,
// so a resubmitted week is never left half-applied.
func (r *Repository) ApplyReconciliation(plan *schedule.Plan) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, es := range plan.ToCreate {
		if err := createScheduleTx(ctx, tx, es); err != nil {
			return err
		}
	}

	for _, es := range plan.ToUpdate {
		if err := updateScheduleTx(ctx, tx, es); err != nil {
			return err
		}
	}

	for _, id := range plan.ToDelete {
		if _, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func createScheduleTx(ctx context.Context, tx *sql.Tx, es *domain.EmployeeSchedule) error {
	query := `
		INSERT INTO schedules (employee_id, week_start_date, week_end_date, notes, weekly_total_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{es.EmployeeID, es.WeekStartDate, es.WeekEndDate, es.Notes, es.WeeklyTotalHours}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&es.ID, &es.CreatedAt, &es.Version); err != nil {
		return err
	}

	return insertShiftsTx(ctx, tx, es)
}

// updateScheduleTx replaces the schedule's shift list wholesale, per the
// resubmission lifecycle.
func updateScheduleTx(ctx context.Context, tx *sql.Tx, es *domain.EmployeeSchedule) error {
	query := `
		UPDATE schedules
		SET
			notes = $1,
			weekly_total_hours = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	args := []any{es.Notes, es.WeeklyTotalHours, es.ID, es.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&es.CreatedAt, &es.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_shifts WHERE schedule_id = $1`, es.ID); err != nil {
		return err
	}

	return insertShiftsTx(ctx, tx, es)
}

func insertShiftsTx(ctx context.Context, tx *sql.Tx, es *domain.EmployeeSchedule) error {
	query := `
		INSERT INTO schedule_shifts (schedule_id, shift_date, start_time, end_time, total_hour)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, shift := range es.Shifts {
		if _, err := tx.ExecContext(ctx, query, es.ID, shift.Date, shift.StartTime, shift.EndTime, shift.TotalHour); err != nil {
			return err
		}
	}

	return nil
}
