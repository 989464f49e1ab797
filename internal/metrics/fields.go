package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)

// Ingest outcomes reported on match replacement.
const (
	OutcomeAccepted = "accepted"
	OutcomeSkipped  = "skipped"
)
