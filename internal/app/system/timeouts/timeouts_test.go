package timeouts_test

import (
	"testing"
	"time"

	"github.com/habitloop/circlehub/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping: got %v", timeouts.Ping())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short: got %v", timeouts.Short())
	}
}

func TestConfigure(t *testing.T) {
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Short: 2 * time.Second})
	if timeouts.Short() != 2*time.Second {
		t.Errorf("Short after Configure: got %v", timeouts.Short())
	}
	// Zero values keep the current settings.
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium should be untouched, got %v", timeouts.Medium())
	}
}
