package runstore

import (
	"path/filepath"
	"testing"

	"github.com/cellsim-xyz/go-cellsim/battery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndGet(t *testing.T) {
	store := openTestStore(t)

	dfn, err := battery.NewDFN(nil, battery.Options{Thermal: battery.ThermalLumped})
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}

	run, err := store.Record(dfn.Model, "lumped")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if run.ID == "" {
		t.Fatalf("expected a run ID")
	}
	if run.Solver != "dae" {
		t.Errorf("expected dae solver, got %q", run.Solver)
	}
	if run.States == 0 || run.Variables == 0 || run.Events != 1 {
		t.Errorf("unexpected counts: states=%d variables=%d events=%d",
			run.States, run.Variables, run.Events)
	}

	got, err := store.Get(run.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Model != "Doyle-Fuller-Newman model" || got.Thermal != "lumped" {
		t.Errorf("round trip mismatch: model=%q thermal=%q", got.Model, got.Thermal)
	}

	summary, err := got.DecodeSummary()
	if err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if len(summary.Differential)+len(summary.Algebraic) != run.States {
		t.Errorf("archived summary disagrees with recorded state count")
	}
}

func TestRecent(t *testing.T) {
	store := openTestStore(t)

	dfn, err := battery.NewDFN(nil, battery.DefaultOptions())
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := store.Record(dfn.Model, "off"); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	runs, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestGetMissingRun(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Get("no-such-run"); err == nil {
		t.Errorf("expected an error for a missing run")
	}
}
