package tracking

import "context"

// EventService defines business logic for ping ingestion.
type EventService interface {
	// Ingest resolves the zone, classifies the ping against the employee's
	// last event and appends the resulting event
	Ingest(ctx context.Context, req IngestEventRequest) (IngestEventResponse, error)

	// BulkIngest processes a batch of offline pings with local_id dedupe
	BulkIngest(ctx context.Context, req BulkIngestRequest) (BulkIngestResponse, error)

	// ListEvents retrieves events with filters (admin surface)
	ListEvents(ctx context.Context, filter EventFilter) (ListEventResponse, error)
}
