package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"timetable-scheduler/internal/export"
	"timetable-scheduler/internal/ingest"
	"timetable-scheduler/internal/timetable"
)

var validate = validator.New()

// SolveRequest is the POST /solve body: an ingest.Document plus solve
// parameters. Validated the same way siakad-poc validates request DTOs,
// via go-playground/validator rather than hand-rolled nil checks.
type SolveRequest struct {
	ingest.Document
	Mode            string  `json:"mode" validate:"omitempty,oneof=greedy backtracking"`
	DeadlineSeconds float64 `json:"deadline_seconds" validate:"gte=0"`
}

// App wires fiber routes to the solver core.
type App struct {
	fiber   *fiber.App
	metrics *Metrics
}

// NewApp builds the fiber application with the request-id middleware and
// the health, Prometheus metrics, and solve routes registered.
func NewApp(metrics *Metrics) *App {
	app := fiber.New(fiber.Config{
		AppName: "timetable-scheduler",
	})
	app.Use(RequestID())

	a := &App{fiber: app, metrics: metrics}

	app.Get("/healthz", a.handleHealth)
	app.Get("/metrics", a.handleMetrics)
	app.Post("/solve", a.handleSolve)

	return a
}

// Listen starts the HTTP server; blocks until it stops or errors.
func (a *App) Listen(addr string) error {
	return a.fiber.Listen(addr)
}

// ShutdownWithContext gracefully stops the HTTP server, honoring ctx's
// deadline for in-flight requests.
func (a *App) ShutdownWithContext(ctx context.Context) error {
	return a.fiber.ShutdownWithContext(ctx)
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (a *App) handleMetrics(c *fiber.Ctx) error {
	return adaptor.HTTPHandler(a.metrics.Handler())(c)
}

func (a *App) handleSolve(c *fiber.Ctx) error {
	reqID := requestIDFrom(c)
	start := time.Now()

	var req SolveRequest
	if err := c.BodyParser(&req); err != nil {
		a.metrics.observeRequest("/solve", fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		a.metrics.observeRequest("/solve", fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req.Document); err != nil {
		a.metrics.observeRequest("/solve", fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b := timetable.NewBuilder()
	for _, t := range req.TimeSlots {
		b.AddTimeSlot(t.ID, t.Day, t.StartHour, t.StartMinute, t.EndHour, t.EndMinute)
	}
	for _, p := range req.Professors {
		b.AddProfessor(p.ID, p.Name, p.AvailableSlotIDs, p.TeachableCourseCodes)
	}
	for _, course := range req.Courses {
		b.AddCourse(course.ID, course.Name, course.Code, course.Credits, course.Semester, course.RequiresProfessor)
	}
	for _, g := range req.Groups {
		b.AddGroup(g.ID, g.Semester, g.CourseIDs)
	}

	mode := timetable.ModeGreedy
	if req.Mode == "backtracking" {
		mode = timetable.ModeBacktracking
	}
	deadline := req.DeadlineSeconds
	if deadline == 0 {
		deadline = 5.0
	}

	solved, err := b.Solve(mode, deadline)
	duration := time.Since(start)
	stats := b.Stats()

	var ratio float64
	if stats.SessionsGenerated > 0 {
		ratio = float64(stats.SessionsAssigned) / float64(stats.SessionsGenerated)
	}
	outcome := "assigned"
	if !solved {
		outcome = "unsatisfied"
	}
	if err != nil {
		outcome = "fault"
	}
	a.metrics.observeSolve(req.Mode, outcome, duration, ratio)

	log.Info().
		Str("request_id", reqID).
		Bool("solved", solved).
		Int("sessions_generated", stats.SessionsGenerated).
		Int("sessions_assigned", stats.SessionsAssigned).
		Dur("duration", duration).
		Msg("solve completed")

	if err != nil {
		a.metrics.observeRequest("/solve", fiber.StatusInternalServerError)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	doc := export.Build(b, time.Now())
	a.metrics.observeRequest("/solve", fiber.StatusOK)
	return c.JSON(doc)
}
