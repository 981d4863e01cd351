package history

import "time"

const SchemaVersion = 1

// Run is one recorded lint pass over a project.
type Run struct {
	ID            string
	ProjectKey    string
	SchemaVersion int
	Timestamp     time.Time
	FileCount     int
	ParseFailures int
	Findings      int
	DurationMS    int64
}
