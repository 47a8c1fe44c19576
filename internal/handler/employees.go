package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullLegalName string `json:"full_legal_name" validate:"required"`
		PreferredName string `json:"preferred_name" validate:"required"`
		Email         string `json:"email" validate:"omitempty,email"`
		Position      string `json:"position" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		FullLegalName: req.FullLegalName,
		PreferredName: req.PreferredName,
		Email:         req.Email,
		Position:      req.Position,
		Status:        domain.EmployeeStatusActive,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				h.badRequest(w, r, errors.New("an employee with this email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	// ?status=active|inactive filters, anything else returns everyone
	status := domain.EmployeeStatus(r.URL.Query().Get("status"))
	if status != domain.EmployeeStatusActive && status != domain.EmployeeStatusInactive {
		status = ""
	}

	employees, err := h.repository.GetAllEmployees(status)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee list retrieved", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "employee retrieved", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	var req struct {
		FullLegalName *string `json:"full_legal_name"`
		PreferredName *string `json:"preferred_name"`
		Email         *string `json:"email" validate:"omitempty,email"`
		Position      *string `json:"position"`
		Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullLegalName != nil {
		employee.FullLegalName = *req.FullLegalName
	}
	if req.PreferredName != nil {
		employee.PreferredName = *req.PreferredName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Status != nil {
		employee.Status = domain.EmployeeStatus(*req.Status)
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				h.badRequest(w, r, errors.New("an employee with this email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employee update failed, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee deleted", nil)
}
