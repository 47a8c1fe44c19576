package handler

import (
	"github.com/ashesthetic/hello-deer/backend/internal/config"
	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/ashesthetic/hello-deer/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in dashboard account
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		// only the owner manages dashboard accounts
		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleOwner}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUsers)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.With(h.preventOperateInitialOwner).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialOwner).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/week-options", h.GetWeekOptions)
			r.Get("/", h.GetSchedulesByWeek)
			r.Post("/", h.CreateSchedule)
			r.Post("/reconcile", h.ReconcileSchedules)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleInfo)
				r.Get("/", h.GetSchedule)
				r.Put("/", h.UpdateSchedule)
				r.Delete("/", h.DeleteSchedule)
			})
		})
	})
}
