package constants

// PassStatus is the canonical status for rows in extraction_passes.
type PassStatus string

// Stable values (store these exact strings in DB).
const (
	PassStatusQueued     PassStatus = "QUEUED"     // created, waiting for a worker
	PassStatusProcessing PassStatus = "PROCESSING" // a worker owns the pass
	PassStatusCompleted  PassStatus = "COMPLETED"  // terminal success
	PassStatusFailed     PassStatus = "FAILED"     // terminal failure
)

// PassStatuses holds the allowed status values for schema validation.
var PassStatuses = []string{
	string(PassStatusQueued),
	string(PassStatusProcessing),
	string(PassStatusCompleted),
	string(PassStatusFailed),
}

// IsTerminal reports whether a pass in this status can never change again.
func (s PassStatus) IsTerminal() bool {
	return s == PassStatusCompleted || s == PassStatusFailed
}
