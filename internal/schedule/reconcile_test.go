package schedule

import (
	"testing"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func completeShift(t *testing.T, l *Ledger, employeeID int64, date, start, end string) {
	t.Helper()
	require.NoError(t, l.SetShift(employeeID, date, FieldStart, start))
	require.NoError(t, l.SetShift(employeeID, date, FieldEnd, end))
}

func existingRecord(id, employeeID int64) *domain.EmployeeSchedule {
	return &domain.EmployeeSchedule{
		ID:            id,
		EmployeeID:    employeeID,
		WeekStartDate: "2025-11-10",
		WeekEndDate:   "2025-11-16",
		Shifts: []domain.ScheduleShift{
			{Date: "2025-11-10", StartTime: "09:00", EndTime: "17:00", TotalHour: 8},
		},
		WeeklyTotalHours: 8,
		Version:          1,
	}
}

func TestReconcileNewEmployeeCreates(t *testing.T) {
	l := NewLedger(testWeek())
	completeShift(t, l, 5, "2025-11-10", "09:00", "17:00")

	plan, err := Reconcile(l, nil, "opening week")
	require.NoError(t, err)

	require.Len(t, plan.ToCreate, 1)
	require.Empty(t, plan.ToUpdate)
	require.Empty(t, plan.ToDelete)

	created := plan.ToCreate[0]
	require.Equal(t, int64(5), created.EmployeeID)
	require.Equal(t, "2025-11-10", created.WeekStartDate)
	require.Equal(t, "2025-11-16", created.WeekEndDate)
	require.Equal(t, "opening week", created.Notes)
	require.Len(t, created.Shifts, 1)
	require.Equal(t, 8.0, created.Shifts[0].TotalHour)
	require.Equal(t, 8.0, created.WeeklyTotalHours)
}

func TestReconcileExistingEmployeeUpdates(t *testing.T) {
	l := NewLedger(testWeek())
	completeShift(t, l, 5, "2025-11-11", "10:00", "14:30")
	completeShift(t, l, 5, "2025-11-13", "06:00", "12:00")

	plan, err := Reconcile(l, []*domain.EmployeeSchedule{existingRecord(42, 5)}, "")
	require.NoError(t, err)

	require.Empty(t, plan.ToCreate)
	require.Len(t, plan.ToUpdate, 1)
	require.Empty(t, plan.ToDelete)

	updated := plan.ToUpdate[0]
	require.Equal(t, int64(42), updated.ID)
	require.Equal(t, int32(1), updated.Version)
	require.Len(t, updated.Shifts, 2)
	require.Equal(t, 10.5, updated.WeeklyTotalHours)
}

func TestReconcileUnscheduledEmployeeDeletes(t *testing.T) {
	l := NewLedger(testWeek())

	// employee 5 keeps a complete shift, employee 9 only has a dangling start
	completeShift(t, l, 5, "2025-11-10", "09:00", "17:00")
	require.NoError(t, l.SetShift(9, "2025-11-12", FieldStart, "09:00"))

	existing := []*domain.EmployeeSchedule{
		existingRecord(42, 5),
		existingRecord(43, 9),
	}

	plan, err := Reconcile(l, existing, "")
	require.NoError(t, err)

	require.Empty(t, plan.ToCreate)
	require.Len(t, plan.ToUpdate, 1)
	require.Equal(t, int64(42), plan.ToUpdate[0].ID)
	require.Equal(t, []int64{43}, plan.ToDelete)
}

func TestReconcileIncompleteOnlyEmployeeProducesNothing(t *testing.T) {
	l := NewLedger(testWeek())
	completeShift(t, l, 5, "2025-11-10", "09:00", "17:00")
	require.NoError(t, l.SetShift(9, "2025-11-12", FieldStart, "09:00"))

	// employee 9 has no existing record either: neither create nor update nor delete
	plan, err := Reconcile(l, nil, "")
	require.NoError(t, err)

	require.Len(t, plan.ToCreate, 1)
	require.Equal(t, int64(5), plan.ToCreate[0].EmployeeID)
	require.Empty(t, plan.ToUpdate)
	require.Empty(t, plan.ToDelete)
}

func TestReconcileRejectsEmptySubmission(t *testing.T) {
	l := NewLedger(testWeek())

	_, err := Reconcile(l, nil, "")
	require.ErrorIs(t, err, ErrNoShiftsProvided)

	// incomplete shifts alone do not clear the gate
	require.NoError(t, l.SetShift(5, "2025-11-10", FieldStart, "09:00"))
	_, err = Reconcile(l, []*domain.EmployeeSchedule{existingRecord(42, 5)}, "")
	require.ErrorIs(t, err, ErrNoShiftsProvided)
}

func TestReconcileRejectsEndNotAfterStart(t *testing.T) {
	l := NewLedger(testWeek())
	completeShift(t, l, 5, "2025-11-10", "17:00", "09:00")

	_, err := Reconcile(l, nil, "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoShiftsProvided)

	completeShift(t, l, 5, "2025-11-10", "09:00", "09:00")
	_, err = Reconcile(l, nil, "")
	require.Error(t, err)
}

func TestReconcileIsDeterministic(t *testing.T) {
	l := NewLedger(testWeek())
	completeShift(t, l, 7, "2025-11-10", "09:00", "17:00")
	completeShift(t, l, 3, "2025-11-10", "09:00", "17:00")

	existing := []*domain.EmployeeSchedule{
		existingRecord(50, 11),
		existingRecord(51, 12),
	}

	first, err := Reconcile(l, existing, "")
	require.NoError(t, err)
	second, err := Reconcile(l, existing, "")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, int64(3), first.ToCreate[0].EmployeeID)
	require.Equal(t, int64(7), first.ToCreate[1].EmployeeID)
	require.Equal(t, []int64{50, 51}, first.ToDelete)
}
