package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/RobertoAguirre/amn-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type service struct {
	db   *database.DB
	repo schedule.WorkScheduleRepository
}

// NewWorkScheduleService creates a new work schedule service
func NewWorkScheduleService(db *database.DB, repo schedule.WorkScheduleRepository) schedule.WorkScheduleService {
	return &service{db: db, repo: repo}
}

func (s *service) CreateSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	tolerance, mealMinutes, expectedHours, active := req.Defaults()

	now := time.Now()
	sched := schedule.WorkSchedule{
		ID:               uuid.New().String(),
		EmployeeID:       req.EmployeeID,
		SiteID:           req.SiteID,
		Name:             req.Name,
		Weekdays:         req.Weekdays,
		ClockIn:          req.ClockIn,
		ClockOut:         req.ClockOut,
		ToleranceMinutes: tolerance,
		MealStart:        req.MealStart,
		MealEnd:          req.MealEnd,
		MealMinutes:      mealMinutes,
		ExpectedHours:    expectedHours,
		Active:           active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, sched)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return toResponse(created), nil
}

func (s *service) ListSchedules(ctx context.Context, siteID *string) ([]schedule.WorkScheduleResponse, error) {
	schedules, err := s.repo.List(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, len(schedules))
	for i, sched := range schedules {
		responses[i] = toResponse(sched)
	}
	return responses, nil
}

func (s *service) UpdateSchedule(ctx context.Context, id string, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	var sched schedule.WorkSchedule
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		sched, err = s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		applyUpdate(&sched, req)
		sched.UpdatedAt = time.Now()

		return s.repo.Update(txCtx, sched)
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return toResponse(sched), nil
}

func applyUpdate(sched *schedule.WorkSchedule, req schedule.UpdateWorkScheduleRequest) {
	if req.Name != nil {
		sched.Name = *req.Name
	}
	if req.Weekdays != nil {
		sched.Weekdays = req.Weekdays
	}
	if req.ClockIn != nil {
		sched.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		sched.ClockOut = *req.ClockOut
	}
	if req.ToleranceMinutes != nil {
		sched.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.MealStart != nil {
		sched.MealStart = req.MealStart
	}
	if req.MealEnd != nil {
		sched.MealEnd = req.MealEnd
	}
	if req.MealMinutes != nil {
		sched.MealMinutes = *req.MealMinutes
	}
	if req.ExpectedHours != nil {
		sched.ExpectedHours = *req.ExpectedHours
	}
	if req.Active != nil {
		sched.Active = *req.Active
	}
}

func (s *service) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Match(ctx context.Context, employeeID, siteID string) (*schedule.WorkSchedule, error) {
	candidates, err := s.repo.ListActiveForMatch(ctx, employeeID, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for match: %w", err)
	}
	return pickSchedule(employeeID, siteID, candidates), nil
}

func toResponse(s schedule.WorkSchedule) schedule.WorkScheduleResponse {
	return schedule.WorkScheduleResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		SiteID:           s.SiteID,
		Name:             s.Name,
		Weekdays:         s.Weekdays,
		ClockIn:          s.ClockIn,
		ClockOut:         s.ClockOut,
		ToleranceMinutes: s.ToleranceMinutes,
		MealStart:        s.MealStart,
		MealEnd:          s.MealEnd,
		MealMinutes:      s.MealMinutes,
		ExpectedHours:    s.ExpectedHours,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}
