// This file fans external-update signals out to status reload hooks.
package session

// RefreshHub receives the "documents changed" signal from external
// collaborators (upload, source ingestion) and re-runs every registered
// reload. Calls are not deduplicated: overlapping reloads may race, and the
// last response to arrive wins. Like Session, a hub belongs to the UI event
// loop goroutine and takes no locks.
type RefreshHub struct {
	reloads []func()
}

// NewRefreshHub creates an empty hub.
func NewRefreshHub() *RefreshHub {
	return &RefreshHub{}
}

// OnRefresh registers a reload to run on every external update.
func (h *RefreshHub) OnRefresh(fn func()) {
	h.reloads = append(h.reloads, fn)
}

// NotifyExternalUpdate triggers every registered reload.
func (h *RefreshHub) NotifyExternalUpdate() {
	for _, fn := range h.reloads {
		fn()
	}
}
