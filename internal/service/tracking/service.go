package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/keymutex"
	"github.com/google/uuid"
)

// service ingests pings. Per-employee work is serialized with a keyed mutex
// so two concurrent pings cannot both read the same stale "previous event"
// and both classify as entry. The last event per employee is cached in memory
// with a read-through to the repository on miss.
type service struct {
	repo        tracking.EventRepository
	zoneSvc     geofence.ZoneService
	locks       *keymutex.KeyMutex
	lastEventMu sync.RWMutex
	lastEvent   map[string]tracking.Event
}

// NewEventService creates a new event ingestion service
func NewEventService(repo tracking.EventRepository, zoneSvc geofence.ZoneService) tracking.EventService {
	return &service{
		repo:      repo,
		zoneSvc:   zoneSvc,
		locks:     keymutex.New(),
		lastEvent: make(map[string]tracking.Event),
	}
}

func (s *service) Ingest(ctx context.Context, req tracking.IngestEventRequest) (tracking.IngestEventResponse, error) {
	if err := req.Validate(); err != nil {
		return tracking.IngestEventResponse{}, err
	}

	// Offline sync replays: same local_id returns the stored event
	if req.LocalID != nil {
		existing, err := s.repo.GetByLocalID(ctx, *req.LocalID)
		if err == nil {
			return tracking.IngestEventResponse{Event: toResponse(existing)}, tracking.ErrDuplicateLocalID
		}
		if !errors.Is(err, tracking.ErrEventNotFound) {
			return tracking.IngestEventResponse{}, fmt.Errorf("failed to check local_id: %w", err)
		}
	}

	zone, err := s.zoneSvc.ResolveZone(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return tracking.IngestEventResponse{}, fmt.Errorf("failed to resolve zone: %w", err)
	}

	occurredAt := time.Now()
	if req.Timestamp != nil {
		if ts, err := time.Parse(time.RFC3339, *req.Timestamp); err == nil {
			occurredAt = ts
		} else if ts, err := time.Parse(time.RFC3339Nano, *req.Timestamp); err == nil {
			occurredAt = ts
		}
	}

	s.locks.Lock(req.EmployeeID)
	defer s.locks.Unlock(req.EmployeeID)

	var kind tracking.EventKind
	if req.EventKind != nil {
		// Explicit kinds (manual meal flags) always override classification
		kind = tracking.EventKind(*req.EventKind)
	} else {
		prev, err := s.loadLastEvent(ctx, req.EmployeeID)
		if err != nil {
			return tracking.IngestEventResponse{}, err
		}
		kind = Classify(prev, zone)
	}

	event := tracking.Event{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Kind:         kind,
		OccurredAt:   occurredAt,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Synced:       req.LocalID != nil,
		LocalID:      req.LocalID,
		CreatedAt:    time.Now(),
	}

	switch {
	case zone != nil:
		event.SiteID = &zone.SiteID
		event.SiteName = &zone.SiteName
	case req.SiteID != nil:
		// Caller-supplied site survives for explicit kinds recorded outside
		// any zone (e.g. a meal flagged from the parking lot)
		event.SiteID = req.SiteID
		event.SiteName = req.SiteName
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return tracking.IngestEventResponse{}, fmt.Errorf("failed to store event: %w", err)
	}

	s.lastEventMu.Lock()
	s.lastEvent[req.EmployeeID] = created
	s.lastEventMu.Unlock()

	resp := tracking.IngestEventResponse{Event: toResponse(created)}
	if zone != nil {
		resp.ZoneID = &zone.ID
		resp.ZoneName = &zone.SiteName
	}
	return resp, nil
}

func (s *service) BulkIngest(ctx context.Context, req tracking.BulkIngestRequest) (tracking.BulkIngestResponse, error) {
	resp := tracking.BulkIngestResponse{}

	for i := range req.Events {
		item := req.Events[i]
		_, err := s.Ingest(ctx, item)
		switch {
		case err == nil:
			resp.Succeeded++
		case errors.Is(err, tracking.ErrDuplicateLocalID):
			// Already synced in an earlier batch, count as success
			resp.Succeeded++
		default:
			resp.Failed++
			resp.Errors = append(resp.Errors, tracking.BulkIngestItemError{
				LocalID: item.LocalID,
				Error:   err.Error(),
			})
		}
	}

	return resp, nil
}

func (s *service) ListEvents(ctx context.Context, filter tracking.EventFilter) (tracking.ListEventResponse, error) {
	if err := filter.Validate(); err != nil {
		return tracking.ListEventResponse{}, err
	}

	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return tracking.ListEventResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]tracking.EventResponse, len(events))
	for i, e := range events {
		responses[i] = toResponse(e)
	}

	return tracking.ListEventResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Events:     responses,
	}, nil
}

// loadLastEvent returns the employee's most recent event, nil when none
// exists. Caller must hold the employee's key lock.
func (s *service) loadLastEvent(ctx context.Context, employeeID string) (*tracking.Event, error) {
	s.lastEventMu.RLock()
	cached, ok := s.lastEvent[employeeID]
	s.lastEventMu.RUnlock()
	if ok {
		return &cached, nil
	}

	last, err := s.repo.GetLastByEmployee(ctx, employeeID)
	if errors.Is(err, tracking.ErrEventNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last event: %w", err)
	}

	s.lastEventMu.Lock()
	s.lastEvent[employeeID] = last
	s.lastEventMu.Unlock()

	return &last, nil
}

func toResponse(e tracking.Event) tracking.EventResponse {
	return tracking.EventResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		SiteID:       e.SiteID,
		SiteName:     e.SiteName,
		EventKind:    string(e.Kind),
		OccurredAt:   e.OccurredAt.Format(time.RFC3339),
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		Synced:       e.Synced,
	}
}
