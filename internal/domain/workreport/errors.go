package workreport

import "errors"

// Work report domain errors
var (
	ErrReportNotFound   = errors.New("work report not found")
	ErrDuplicateLocalID = errors.New("report with this local_id already exists")
)
