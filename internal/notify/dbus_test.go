//go:build linux

package notify

import (
	"os"
	"testing"
)

func requireSessionBus(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := n.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}
	return n
}

func TestDBusNotifier_ReplacesPrevious(t *testing.T) {
	n := requireSessionBus(t)

	first, err := n.Notify(Notification{Title: "Glory Box", Body: "Portishead - Dummy", Timeout: 1000})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if first == 0 {
		t.Fatal("Notify() returned id 0")
	}

	second, err := n.Notify(Notification{Title: "Teardrop", Body: "Massive Attack", Timeout: 1000, ReplacesID: first})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if second != first {
		t.Errorf("replacing notification id = %d, want %d", second, first)
	}
	if err := n.Close(second); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
