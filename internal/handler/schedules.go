package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/ashesthetic/hello-deer/backend/internal/schedule"
	"github.com/ashesthetic/hello-deer/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
)

type weekOptionResponse struct {
	WeekStartDate string   `json:"week_start_date"`
	WeekEndDate   string   `json:"week_end_date"`
	Dates         []string `json:"dates"`
	Label         string   `json:"label"`
}

func (h *Handler) GetWeekOptions(w http.ResponseWriter, r *http.Request) {
	count := h.config.Schedule.WeekOptionCount
	if param := r.URL.Query().Get("count"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 1 || parsed > 52 {
			h.errorResponse(w, r, "count must be between 1 and 52")
			return
		}
		count = parsed
	}

	windows := schedule.GenerateWeekOptions(time.Now(), count)

	weeks := make([]weekOptionResponse, 0, len(windows))
	for _, window := range windows {
		dates := make([]string, 0, len(window.Dates))
		for _, d := range window.Dates {
			dates = append(dates, d.Format(schedule.DateLayout))
		}
		weeks = append(weeks, weekOptionResponse{
			WeekStartDate: window.StartDate.Format(schedule.DateLayout),
			WeekEndDate:   window.EndDate.Format(schedule.DateLayout),
			Dates:         dates,
			Label:         window.Label,
		})
	}

	h.successResponse(w, r, "week options retrieved", map[string]any{
		"weeks":        weeks,
		"time_options": schedule.ClockOptions(),
	})
}

func (h *Handler) GetSchedulesByWeek(w http.ResponseWriter, r *http.Request) {
	week, err := utils.ParseWeekStartDate(r.URL.Query().Get("week_start_date"))
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedules, err := h.repository.GetSchedulesByWeek(week.StartDate.Format(schedule.DateLayout))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedules retrieved", schedules)
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID    int64                  `json:"employee_id" validate:"required"`
		WeekStartDate string                 `json:"week_start_date" validate:"required"`
		WeekEndDate   string                 `json:"week_end_date" validate:"required"`
		Shifts        []domain.ScheduleShift `json:"shift_info" validate:"required"`
		Notes         string                 `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week, err := utils.ParseWeekStartDate(req.WeekStartDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.WeekEndDate != week.EndDate.Format(schedule.DateLayout) {
		h.errorResponse(w, r, "week_end_date must be the Sunday of the selected week")
		return
	}

	if err := utils.ValidateScheduleShifts(week, req.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	es := &domain.EmployeeSchedule{
		EmployeeID:    req.EmployeeID,
		WeekStartDate: req.WeekStartDate,
		WeekEndDate:   req.WeekEndDate,
		Shifts:        recomputeHours(req.Shifts),
		Notes:         req.Notes,
	}
	es.WeeklyTotalHours = weeklyTotal(es.Shifts)

	if err := h.repository.CreateSchedule(es); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedules_employee_id_fkey":
				h.errorResponse(w, r, "employee does not exist")
			case "schedules_employee_id_week_start_date_key":
				h.errorResponse(w, r, "this employee already has a schedule for the selected week")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule created", es)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	es := r.Context().Value(ScheduleCtx).(*domain.EmployeeSchedule)
	h.successResponse(w, r, "schedule retrieved", es)
}

// UpdateSchedule replaces the stored shift list and notes wholesale; the
// employee and week of an existing record never change.
func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	es := r.Context().Value(ScheduleCtx).(*domain.EmployeeSchedule)

	var req struct {
		Shifts []domain.ScheduleShift `json:"shift_info" validate:"required"`
		Notes  string                 `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week, err := utils.ParseWeekStartDate(es.WeekStartDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := utils.ValidateScheduleShifts(week, req.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	es.Shifts = recomputeHours(req.Shifts)
	es.Notes = req.Notes
	es.WeeklyTotalHours = weeklyTotal(es.Shifts)

	if err := h.repository.UpdateSchedule(es); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the schedule was modified by someone else, please reload")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule updated", es)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	es := r.Context().Value(ScheduleCtx).(*domain.EmployeeSchedule)

	if err := h.repository.DeleteSchedule(es.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule deleted", nil)
}

// ReconcileSchedules takes a whole week submission, diffs it against the
// persisted records for that week and applies the resulting creates, updates
// and deletes in a single transaction.
func (h *Handler) ReconcileSchedules(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekStartDate string `json:"week_start_date" validate:"required"`
		Notes         string `json:"notes"`
		Employees     []struct {
			EmployeeID int64 `json:"employee_id" validate:"required"`
			Shifts     []struct {
				Date      string `json:"date" validate:"required"`
				StartTime string `json:"start_time"`
				EndTime   string `json:"end_time"`
			} `json:"shifts"`
		} `json:"employees" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week, err := utils.ParseWeekStartDate(req.WeekStartDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	ledger := schedule.NewLedger(week)
	for _, employee := range req.Employees {
		for _, shift := range employee.Shifts {
			if err := ledger.SetShift(employee.EmployeeID, shift.Date, schedule.FieldStart, shift.StartTime); err != nil {
				h.errorResponse(w, r, err.Error())
				return
			}
			if err := ledger.SetShift(employee.EmployeeID, shift.Date, schedule.FieldEnd, shift.EndTime); err != nil {
				h.errorResponse(w, r, err.Error())
				return
			}
		}
	}

	existing, err := h.repository.GetSchedulesByWeek(week.StartDate.Format(schedule.DateLayout))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	plan, err := schedule.Reconcile(ledger, existing, req.Notes)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ApplyReconciliation(plan); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedules_employee_id_fkey":
				h.errorResponse(w, r, "employee does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the week was modified by someone else, please reload")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// the week is committed at this point; notification failures are logged
	// but do not fail the request
	for _, es := range plan.ToCreate {
		h.publishSchedulePublishedMail(es, week.Label)
	}
	for _, es := range plan.ToUpdate {
		h.publishSchedulePublishedMail(es, week.Label)
	}

	h.successResponse(w, r, "week schedule saved", map[string]any{
		"created": len(plan.ToCreate),
		"updated": len(plan.ToUpdate),
		"deleted": len(plan.ToDelete),
	})
}

func (h *Handler) publishSchedulePublishedMail(es *domain.EmployeeSchedule, weekLabel string) {
	employee, err := h.repository.GetEmployeeByID(es.EmployeeID)
	if err != nil {
		slog.Error("unable to load employee for schedule mail", "employee_id", es.EmployeeID, "error", err)
		return
	}
	if employee.Email == "" {
		return
	}

	shifts := make([]domain.SchedulePublishedShift, 0, len(es.Shifts))
	for _, shift := range es.Shifts {
		shifts = append(shifts, domain.SchedulePublishedShift{
			Date:      shift.Date,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			TotalHour: shift.TotalHour,
		})
	}

	mailMessage := domain.MailMessage{
		Type: "schedule_published",
		To:   employee.Email,
		Data: domain.SchedulePublishedMailData{
			PreferredName:    employee.PreferredName,
			WeekLabel:        weekLabel,
			Shifts:           shifts,
			WeeklyTotalHours: es.WeeklyTotalHours,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("unable to serialize schedule mail", "employee_id", es.EmployeeID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Error("unable to publish schedule mail", "employee_id", es.EmployeeID, "error", err)
	}
}

// recomputeHours discards any client-supplied totals and recomputes them.
func recomputeHours(shifts []domain.ScheduleShift) []domain.ScheduleShift {
	out := make([]domain.ScheduleShift, len(shifts))
	for i, shift := range shifts {
		shift.TotalHour = schedule.HoursFor(shift.StartTime, shift.EndTime)
		out[i] = shift
	}
	return out
}

func weeklyTotal(shifts []domain.ScheduleShift) float64 {
	total := 0.0
	for _, shift := range shifts {
		total += shift.TotalHour
	}
	return math.Round(total*100) / 100
}
