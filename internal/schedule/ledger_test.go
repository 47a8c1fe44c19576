package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testWeek() WeekWindow {
	return WindowFor(date(2025, time.November, 12)) // Mon 2025-11-10 .. Sun 2025-11-16
}

func TestLedgerSetShift(t *testing.T) {
	l := NewLedger(testWeek())

	require.NoError(t, l.SetShift(1, "2025-11-10", FieldStart, "09:00"))

	// shift record created with only one side filled in
	shift := l.Shift(1, "2025-11-10")
	require.NotNil(t, shift)
	require.Equal(t, "09:00", shift.StartTime)
	require.Empty(t, shift.EndTime)
	require.False(t, shift.Complete())

	require.NoError(t, l.SetShift(1, "2025-11-10", FieldEnd, "17:00"))
	require.True(t, shift.Complete())
	require.Equal(t, 8.0, shift.Hours())

	// upsert overwrites in place
	require.NoError(t, l.SetShift(1, "2025-11-10", FieldEnd, "13:00"))
	require.Equal(t, 4.0, shift.Hours())

	// empty value clears the side again
	require.NoError(t, l.SetShift(1, "2025-11-10", FieldEnd, ""))
	require.False(t, shift.Complete())
}

func TestLedgerSetShiftRejectsBadInput(t *testing.T) {
	l := NewLedger(testWeek())

	require.Error(t, l.SetShift(1, "2025-11-17", FieldStart, "09:00")) // day after the window
	require.Error(t, l.SetShift(1, "2025-11-09", FieldStart, "09:00")) // day before the window
	require.ErrorIs(t, l.SetShift(1, "2025-11-10", FieldStart, "09:05"), ErrMalformedTime)
	require.ErrorIs(t, l.SetShift(1, "2025-11-10", FieldEnd, "23:00"), ErrMalformedTime)

	// nothing was recorded
	require.Nil(t, l.Shift(1, "2025-11-10"))
}

func TestLedgerTotalHoursFor(t *testing.T) {
	l := NewLedger(testWeek())

	require.NoError(t, l.SetShift(1, "2025-11-10", FieldStart, "09:00"))
	require.NoError(t, l.SetShift(1, "2025-11-10", FieldEnd, "17:00"))
	require.NoError(t, l.SetShift(1, "2025-11-11", FieldStart, "06:15"))
	require.NoError(t, l.SetShift(1, "2025-11-11", FieldEnd, "12:30"))
	require.NoError(t, l.SetShift(1, "2025-11-12", FieldStart, "09:00")) // incomplete, counts as 0

	// another employee's shifts never bleed into the total
	require.NoError(t, l.SetShift(2, "2025-11-10", FieldStart, "10:00"))
	require.NoError(t, l.SetShift(2, "2025-11-10", FieldEnd, "14:00"))

	require.Equal(t, 14.25, l.TotalHoursFor(1))
	require.Equal(t, 4.0, l.TotalHoursFor(2))
	require.Equal(t, 0.0, l.TotalHoursFor(99))

	// idempotent under repeated calls
	require.Equal(t, 14.25, l.TotalHoursFor(1))
}

func TestLedgerCompleteShiftsFor(t *testing.T) {
	l := NewLedger(testWeek())

	// inserted out of date order
	require.NoError(t, l.SetShift(1, "2025-11-14", FieldStart, "12:00"))
	require.NoError(t, l.SetShift(1, "2025-11-14", FieldEnd, "20:00"))
	require.NoError(t, l.SetShift(1, "2025-11-10", FieldStart, "09:00"))
	require.NoError(t, l.SetShift(1, "2025-11-10", FieldEnd, "17:00"))
	require.NoError(t, l.SetShift(1, "2025-11-12", FieldStart, "09:00")) // incomplete

	shifts := l.CompleteShiftsFor(1)
	require.Len(t, shifts, 2)
	require.Equal(t, "2025-11-10", shifts[0].Date)
	require.Equal(t, "2025-11-14", shifts[1].Date)
	require.Equal(t, 8.0, shifts[0].TotalHour)
	require.Equal(t, 8.0, shifts[1].TotalHour)
}

func TestLedgerEmployeeIDs(t *testing.T) {
	l := NewLedger(testWeek())

	require.NoError(t, l.SetShift(7, "2025-11-10", FieldStart, "09:00"))
	require.NoError(t, l.SetShift(3, "2025-11-10", FieldStart, "09:00"))
	require.NoError(t, l.SetShift(3, "2025-11-11", FieldStart, "09:00"))

	require.Equal(t, []int64{3, 7}, l.EmployeeIDs())
}
