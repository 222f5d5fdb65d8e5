package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRun(t *testing.T) {
	r := NewRegistry()
	r.ObserveRun(&dto.Report{
		Corner:         model.Corner{ID: "001", Name: "garosud"},
		Orders:         12,
		ExplodedLines:  20,
		UnpricedLines:  3,
		MatchedNames:   7,
		UnmatchedNames: []string{"inconnu", "tarte"},
		Duplicates:     1,
		ByCategory:     map[string]int{"plat": 8, "boisson": 11},
		Duration:       1500 * time.Millisecond,
	})

	if got := testutil.ToFloat64(r.Orders); got != 12 {
		t.Fatalf("orders = %v", got)
	}
	if got := testutil.ToFloat64(r.UnmatchedNames); got != 2 {
		t.Fatalf("unmatched = %v", got)
	}
	if got := testutil.ToFloat64(r.Categories.WithLabelValues("garosud", "boisson")); got != 11 {
		t.Fatalf("boisson lines = %v", got)
	}
	if got := testutil.ToFloat64(r.RunDurationSec); got != 1.5 {
		t.Fatalf("duration = %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.ObserveRun(&dto.Report{Orders: 3, ByCategory: map[string]int{"autre": 1}})

	path := filepath.Join(t.TempDir(), "ledger.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "ledger_orders_total 3") {
		t.Fatalf("missing orders counter in:\n%s", data)
	}
}
