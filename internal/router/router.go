package router

import (
	"database/sql"
	"net/http"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	pg "vet-clinic-api/internal/adapters/storage/postgres"
	"vet-clinic-api/internal/domain/analytics"
	"vet-clinic-api/internal/domain/appointments"
	"vet-clinic-api/internal/domain/dashboard"
	"vet-clinic-api/internal/domain/inventory"
	"vet-clinic-api/internal/domain/patients"
	"vet-clinic-api/internal/domain/schedules"
	"vet-clinic-api/internal/domain/soapnotes"
	"vet-clinic-api/internal/domain/staff"
	"vet-clinic-api/internal/domain/users"
	"vet-clinic-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	Log zerolog.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		patientRepo     patients.Repository
		appointmentRepo appointments.Repository
		staffRepo       staff.Repository
		scheduleRepo    schedules.Repository
		analyticRepo    analytics.Repository
		userRepo        users.Repository
		productRepo     inventory.Repository
		soapNoteRepo    soapnotes.Repository
	)

	if opts.DB != nil {
		patientRepo = pg.NewPatientsRepo(opts.DB)
		appointmentRepo = pg.NewAppointmentsRepo(opts.DB)
		staffRepo = pg.NewStaffRepo(opts.DB)
		scheduleRepo = pg.NewSchedulesRepo(opts.DB)
		analyticRepo = pg.NewAnalyticsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		productRepo = pg.NewInventoryRepo(opts.DB)
		soapNoteRepo = pg.NewSoapNotesRepo(opts.DB)
	} else {
		patientRepo = mem.NewPatientRepo()
		appointmentRepo = mem.NewAppointmentRepo()
		staffRepo = mem.NewStaffRepo()
		scheduleRepo = mem.NewScheduleRepo()
		analyticRepo = mem.NewAnalyticRepo()
		userRepo = mem.NewUserRepo()
		productRepo = mem.NewProductRepo()
		soapNoteRepo = mem.NewSoapNoteRepo()
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	appointmentsSvc := appointments.NewService(appointmentRepo)
	staffSvc := staff.NewService(staffRepo)
	schedulesSvc := schedules.NewService(scheduleRepo)
	analyticsSvc := analytics.NewService(analyticRepo)
	usersSvc := users.NewService(userRepo)
	inventorySvc := inventory.NewService(productRepo)
	soapNotesSvc := soapnotes.NewService(soapNoteRepo)

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(api chi.Router) {
		patients.RegisterRoutes(api, patientsSvc, appointmentsSvc)
		appointments.RegisterRoutes(api, appointmentsSvc)
		staff.RegisterRoutes(api, staffSvc)
		schedules.RegisterRoutes(api, schedulesSvc)
		analytics.RegisterRoutes(api, analyticsSvc)
		users.RegisterRoutes(api, usersSvc)
		inventory.RegisterRoutes(api, inventorySvc)
		soapnotes.RegisterRoutes(api, soapNotesSvc)
		dashboard.RegisterRoutes(api, patientsSvc, appointmentsSvc, analyticsSvc)
	})

	return r
}
