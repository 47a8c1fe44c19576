package schedule

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
)

var ErrNoShiftsProvided = errors.New("the submission must contain at least one employee with a complete shift")

// Plan is the outcome of diffing a submitted week against the persisted
// records for that week. The repository applies it in one transaction.
type Plan struct {
	ToCreate []*domain.EmployeeSchedule
	ToUpdate []*domain.EmployeeSchedule // IDs taken from the existing records
	ToDelete []int64
}

// Reconcile builds the create/update/delete plan for one week submission.
//
// Employees with at least one complete shift become candidate records; a
// candidate whose employee already has a record for the week updates it,
// otherwise it creates one. Existing records whose employee ended up with zero
// complete shifts are deleted. Employees that were never scheduled and have no
// complete shifts produce nothing at all.
//
// A complete shift whose end does not come after its start is rejected here,
// so totals can never go negative further down.
func Reconcile(ledger *Ledger, existing []*domain.EmployeeSchedule, notes string) (*Plan, error) {
	week := ledger.Week()

	existingByEmployee := make(map[int64]*domain.EmployeeSchedule, len(existing))
	for _, record := range existing {
		existingByEmployee[record.EmployeeID] = record
	}

	plan := &Plan{
		ToCreate: make([]*domain.EmployeeSchedule, 0),
		ToUpdate: make([]*domain.EmployeeSchedule, 0),
		ToDelete: make([]int64, 0),
	}

	scheduled := make(map[int64]bool)

	for _, employeeID := range ledger.EmployeeIDs() {
		shifts := ledger.CompleteShiftsFor(employeeID)
		if len(shifts) == 0 {
			continue
		}

		total := 0.0
		for _, shift := range shifts {
			start, _ := ParseClock(shift.StartTime)
			end, _ := ParseClock(shift.EndTime)
			if end <= start {
				return nil, fmt.Errorf("employee %d on %s: end time must be after start time", employeeID, shift.Date)
			}
			total += shift.TotalHour
		}

		candidate := &domain.EmployeeSchedule{
			EmployeeID:       employeeID,
			WeekStartDate:    week.StartDate.Format(DateLayout),
			WeekEndDate:      week.EndDate.Format(DateLayout),
			Shifts:           shifts,
			Notes:            notes,
			WeeklyTotalHours: math.Round(total*100) / 100,
		}

		scheduled[employeeID] = true

		if record, ok := existingByEmployee[employeeID]; ok {
			candidate.ID = record.ID
			candidate.Version = record.Version
			plan.ToUpdate = append(plan.ToUpdate, candidate)
		} else {
			plan.ToCreate = append(plan.ToCreate, candidate)
		}
	}

	if len(plan.ToCreate) == 0 && len(plan.ToUpdate) == 0 {
		return nil, ErrNoShiftsProvided
	}

	for _, record := range existing {
		if !scheduled[record.EmployeeID] {
			plan.ToDelete = append(plan.ToDelete, record.ID)
		}
	}
	slices.Sort(plan.ToDelete)

	return plan, nil
}
