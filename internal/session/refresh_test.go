package session

import "testing"

func TestRefreshHubRunsEveryReload(t *testing.T) {
	hub := NewRefreshHub()

	var status, documents int
	hub.OnRefresh(func() { status++ })
	hub.OnRefresh(func() { documents++ })

	hub.NotifyExternalUpdate()
	hub.NotifyExternalUpdate()

	if status != 2 || documents != 2 {
		t.Errorf("reload counts: status=%d documents=%d, want 2 and 2", status, documents)
	}
}

func TestRefreshHubNoSubscribers(t *testing.T) {
	hub := NewRefreshHub()
	// Must not panic.
	hub.NotifyExternalUpdate()
}
