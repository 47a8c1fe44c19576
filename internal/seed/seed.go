package seed

import (
	"log/slog"
	"time"

	"github.com/ashesthetic/hello-deer/backend/internal/config"
	"github.com/ashesthetic/hello-deer/backend/internal/repository"
	"github.com/ashesthetic/hello-deer/backend/internal/schedule"
	"github.com/ashesthetic/hello-deer/backend/internal/utils"
)

// SeedDemoWeeks inserts random employees and fills the current and next week
// with schedules, driving the same ledger/reconcile path the API uses.
func SeedDemoWeeks(cfg *config.Config, repo *repository.Repository, employeeCount int) {
	employees := make([]int64, 0, employeeCount)

	for i := 0; i < employeeCount; i++ {
		employee := utils.GenerateRandomEmployee(cfg.Seed.EmailDomain)
		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("unable to insert employee", "error", err)
			continue
		}
		employees = append(employees, employee.ID)
	}

	if len(employees) == 0 {
		slog.Error("no employees inserted, skipping schedules")
		return
	}

	slog.Info("employees inserted", "count", len(employees))

	for _, window := range schedule.GenerateWeekOptions(time.Now(), 2) {
		ledger := schedule.NewLedger(window)

		for _, employeeID := range employees {
			for _, shift := range utils.GenerateRandomWeekShifts(window) {
				if err := ledger.SetShift(employeeID, shift.Date, schedule.FieldStart, shift.StartTime); err != nil {
					slog.Error("unable to record shift", "error", err)
					continue
				}
				if err := ledger.SetShift(employeeID, shift.Date, schedule.FieldEnd, shift.EndTime); err != nil {
					slog.Error("unable to record shift", "error", err)
					continue
				}
			}
		}

		existing, err := repo.GetSchedulesByWeek(window.StartDate.Format(schedule.DateLayout))
		if err != nil {
			slog.Error("unable to load existing schedules", "week", window.Label, "error", err)
			continue
		}

		plan, err := schedule.Reconcile(ledger, existing, "seeded demo week")
		if err != nil {
			slog.Error("unable to reconcile seeded week", "week", window.Label, "error", err)
			continue
		}

		if err := repo.ApplyReconciliation(plan); err != nil {
			slog.Error("unable to apply seeded week", "week", window.Label, "error", err)
			continue
		}

		slog.Info("week seeded", "week", window.Label, "created", len(plan.ToCreate), "updated", len(plan.ToUpdate), "deleted", len(plan.ToDelete))
	}
}
