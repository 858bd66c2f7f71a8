package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
)

func TestLoad(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "burst.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sc.Name != "burst-and-back" {
		t.Errorf("name = %q", sc.Name)
	}
	if sc.Frame != 20*time.Millisecond {
		t.Errorf("frame = %v, want 20ms", sc.Frame)
	}
	if len(sc.Steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(sc.Steps))
	}
	if sc.Steps[4].At != 1500*time.Millisecond {
		t.Errorf("step 5 at %v", sc.Steps[4].At)
	}
	if sc.Duration() != 2700*time.Millisecond {
		t.Errorf("duration = %v", sc.Duration())
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "min.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - at: 0s\n    position: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sc.ViewportHeight != DefaultViewport || sc.DocumentHeight != DefaultDocument {
		t.Errorf("heights = %v/%v", sc.ViewportHeight, sc.DocumentHeight)
	}
	if sc.Frame != DefaultFrame {
		t.Errorf("frame = %v", sc.Frame)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("steps: [oops"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sc   Scenario
		ok   bool
	}{
		{"ok", Scenario{Frame: time.Millisecond, Steps: []Step{{At: 0}, {At: time.Second}}}, true},
		{"same time", Scenario{Frame: time.Millisecond, Steps: []Step{{At: 0}, {At: 0}}}, true},
		{"no steps", Scenario{Frame: time.Millisecond}, false},
		{"zero frame", Scenario{Steps: []Step{{At: 0}}}, false},
		{"unsorted", Scenario{Frame: time.Millisecond, Steps: []Step{{At: time.Second}, {At: 0}}}, false},
		{"negative", Scenario{Frame: time.Millisecond, Steps: []Step{{At: -time.Second}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sc.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, effect.ErrInvalidScenario) {
				t.Errorf("got %v, want ErrInvalidScenario", err)
			}
		})
	}
}

func TestSampleOverrides(t *testing.T) {
	sc := &Scenario{ViewportHeight: 1000, DocumentHeight: 4000}
	s := sc.Sample(Step{Position: 500, DocumentHeight: 2000})
	if s.ViewportHeightPx != 1000 || s.DocumentHeightPx != 2000 {
		t.Errorf("sample = %+v", s)
	}
	if p := s.Progress(); p != 0.5 {
		t.Errorf("progress = %v, want 0.5", p)
	}
}

func TestSimulateBurstAndBack(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "burst.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	records := Simulate(sc, nil)
	if len(records) == 0 {
		t.Fatal("no records")
	}

	fired := 0
	sawBurst, reformed := false, false
	for _, r := range records {
		if r.BurstFired {
			fired++
		}
		if r.State == gate.Burst {
			sawBurst = true
			if r.Enlarged != 0 {
				t.Errorf("t=%v: %d blocks enlarged while burst", r.T, r.Enlarged)
			}
		}
		if sawBurst && r.State == gate.Intact {
			reformed = true
		}
	}
	if fired != 1 {
		t.Errorf("burst fired %d times, want 1", fired)
	}
	if !sawBurst || !reformed {
		t.Errorf("sawBurst=%v reformed=%v", sawBurst, reformed)
	}

	// 2800/3000 sits in the dead zone, so the bubble stays burst until 2600.
	at := func(d time.Duration) Record {
		for _, r := range records {
			if r.T >= d {
				return r
			}
		}
		return records[len(records)-1]
	}
	if r := at(1600 * time.Millisecond); r.State != gate.Burst {
		t.Errorf("at 1.6s state = %v, want BURST", r.State)
	}
	if r := at(1800 * time.Millisecond); r.State != gate.Intact {
		t.Errorf("at 1.8s state = %v, want INTACT", r.State)
	}
	if r := at(1800 * time.Millisecond); !r.Bubble.Visible {
		t.Error("bubble should re-form")
	}
}

func TestSimulateSettles(t *testing.T) {
	sc, _ := Load(filepath.Join("testdata", "burst.yaml"))
	records := Simulate(sc, nil)
	last := records[len(records)-1]
	if last.Scrolling {
		t.Error("scrolling should settle after the last step")
	}
	for _, r := range records {
		if r.T > 0 && r.T < 100*time.Millisecond && !r.Scrolling {
			t.Errorf("t=%v: scrolling should hold for the quiet period", r.T)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	sc := ScrollToEnd(10, time.Second)
	a := Simulate(sc, config.DefaultConfig())
	b := Simulate(sc, config.DefaultConfig())
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScrollToEnd(t *testing.T) {
	sc := ScrollToEnd(4, time.Second)
	if err := sc.Validate(); err != nil {
		t.Fatalf("generated scenario invalid: %v", err)
	}
	if len(sc.Steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(sc.Steps))
	}
	if p := sc.Sample(sc.Steps[4]).Progress(); p != 1 {
		t.Errorf("last down step progress = %v, want 1", p)
	}
	if p := sc.Sample(sc.Steps[5]).Progress(); p != 0 {
		t.Errorf("final step progress = %v, want 0", p)
	}
}

func TestRunRealtime(t *testing.T) {
	if testing.Short() {
		t.Skip("realtime replay")
	}
	sc := &Scenario{
		ViewportHeight: 1000,
		DocumentHeight: 2000,
		Frame:          5 * time.Millisecond,
		Tail:           150 * time.Millisecond,
		Steps: []Step{
			{At: 0, Position: 0},
			{At: 30 * time.Millisecond, Position: 1000},
		},
	}

	var mu sync.Mutex
	var records []Record
	err := Run(context.Background(), sc, nil, zerolog.Nop(), func(r Record) {
		mu.Lock()
		records = append(records, r)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(records) == 0 {
		t.Fatal("no frames drawn")
	}
	if records[len(records)-1].State != gate.Burst {
		t.Errorf("final state = %v, want BURST", records[len(records)-1].State)
	}
}

func TestRunCanceled(t *testing.T) {
	sc := ScrollToEnd(2, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := Run(ctx, sc, nil, zerolog.Nop(), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want deadline exceeded", err)
	}
}
