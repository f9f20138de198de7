package models

// OfflineResponse is the machine-readable body the gateway synthesizes when
// an upstream call fails at the transport level. Callers distinguish it from
// a genuine server error by the 503 status together with the "offline"
// marker, and fall back to the local persistent store.
type OfflineResponse struct {
	// Error holds OfflineMarker for synthesized offline failures.
	Error string `json:"error"`
}

// OfflineMarker is the value of [OfflineResponse.Error] used for failures
// synthesized by the gateway when the upstream is unreachable.
const OfflineMarker = "offline"
