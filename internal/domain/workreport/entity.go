package workreport

import "time"

type ShiftKind string

const (
	ShiftMorning   ShiftKind = "morning"
	ShiftAfternoon ShiftKind = "afternoon"
	ShiftNight     ShiftKind = "night"
)

var ShiftKindValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
	string(ShiftNight),
}

// ShiftReport is a production summary one operator submits per shift.
// LocalID is generated on the device and is the offline-sync dedupe key.
type ShiftReport struct {
	ID               string
	LocalID          string
	OperatorID       string
	Date             time.Time
	Shift            ShiftKind
	Operator         string
	Supervisor       string
	Line             string
	Product          string
	Batch            string
	QuantityProduced int
	QuantityRejected int
	Observations     *string
	Signature        string
	Synced           bool
	SyncedAt         *time.Time
	CreatedAt        time.Time
}

// MaterialEntry is one inspected material line inside a material report.
type MaterialEntry struct {
	Inspector       string
	SortedPieces    int
	AcceptedPieces  int
	ReworkedPieces  int
	RejectedPieces  int
	RejectionReason string
}

// MaterialReport is a material inspection report for one shift.
type MaterialReport struct {
	ID           string
	LocalID      string
	OperatorID   string
	Date         time.Time
	Shift        ShiftKind
	Operator     string
	Supervisor   string
	Line         string
	Product      string
	Batch        string
	Materials    []MaterialEntry
	Observations *string
	Signature    string
	Synced       bool
	SyncedAt     *time.Time
	CreatedAt    time.Time
}

// Activity is one timed task inside an individual activity log.
type Activity struct {
	Code       int
	StartTime  string // "HH:mm"
	EndTime    string // "HH:mm"
	PartNumber string
}

// ActivityLog is an operator's individual activity breakdown for one shift.
type ActivityLog struct {
	ID           string
	LocalID      string
	OperatorID   string
	Date         time.Time
	Shift        ShiftKind
	Operator     string
	Supervisor   string
	Line         string
	Product      string
	Batch        string
	Activities   []Activity
	Observations *string
	Signature    string
	Synced       bool
	SyncedAt     *time.Time
	CreatedAt    time.Time
}
