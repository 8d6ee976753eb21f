package camfx

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestCamera() (*Camera, *fakeClock) {
	cam := NewCamera()
	clk := newFakeClock()
	cam.now = clk.now
	return cam, clk
}

// runFor advances virtual time by total in step increments, ticking the
// camera with the matching delta in milliseconds.
func runFor(cam *Camera, clk *fakeClock, total, step time.Duration) {
	deltaMS := float64(step) / float64(time.Millisecond)
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		clk.advance(step)
		cam.Tick(deltaMS)
	}
}

func TestCameraStartTimestamp(t *testing.T) {
	cam, clk := newTestCamera()
	node := &stubNode{w: 100, h: 100}
	e := NewShake(node, 5, Options{Duration: time.Hour})

	if !e.Started().IsZero() {
		t.Fatalf("Started should be zero before the first tick, got %v", e.Started())
	}

	cam.Add(e)
	clk.advance(16 * time.Millisecond)
	cam.Tick(16)
	first := clk.t
	if !e.Started().Equal(first) {
		t.Fatalf("Started = %v, want first tick time %v", e.Started(), first)
	}

	for i := 0; i < 10; i++ {
		clk.advance(16 * time.Millisecond)
		cam.Tick(16)
	}
	if !e.Started().Equal(first) {
		t.Fatalf("Started changed after later ticks: %v, want %v", e.Started(), first)
	}
	if e.LastRan().Before(e.Started()) {
		t.Fatalf("LastRan %v before Started %v", e.LastRan(), e.Started())
	}
}

func TestCameraDurationRemoval(t *testing.T) {
	cases := []struct {
		name      string
		duration  time.Duration
		run       time.Duration
		wantAlive bool
	}{
		{"removed_after_duration", 500 * time.Millisecond, time.Second, false},
		{"alive_before_duration", 2 * time.Second, time.Second, true},
		{"zero_duration_first_tick", 0, 50 * time.Millisecond, false},
		{"infinite_never_expires", Infinite, 5 * time.Second, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam, clk := newTestCamera()
			ended := 0
			e := NewCustom(func(delta float64) bool { return true }, func() { ended++ }, Options{Duration: c.duration})
			cam.Add(e)

			runFor(cam, clk, c.run, 50*time.Millisecond)

			alive := len(cam.Active()) == 1
			if alive != c.wantAlive {
				t.Fatalf("alive = %v, want %v", alive, c.wantAlive)
			}
			wantEnded := 0
			if !c.wantAlive {
				wantEnded = 1
			}
			if ended != wantEnded {
				t.Fatalf("OnEnd ran %d times, want %d", ended, wantEnded)
			}
		})
	}
}

func TestCameraEndConditionBeatsDuration(t *testing.T) {
	cam, clk := newTestCamera()
	node := &stubNode{w: 100, h: 100}

	frames := 0
	e := NewShake(node, 5, Options{
		Duration: time.Hour,
		EndCondition: func(delta float64) bool {
			frames++
			return frames >= 100
		},
	})
	cam.Add(e)

	for i := 0; i < 99; i++ {
		clk.advance(16 * time.Millisecond)
		cam.Tick(16)
	}
	if len(cam.Active()) != 1 {
		t.Fatalf("effect removed before the end condition fired")
	}

	clk.advance(16 * time.Millisecond)
	cam.Tick(16)
	if len(cam.Active()) != 0 {
		t.Fatalf("effect still active after the end condition fired")
	}
	if x, y := node.Pivot(); x != 0 || y != 0 {
		t.Fatalf("pivot not restored after end condition removal: (%v, %v)", x, y)
	}
}

func TestCameraUpdateTermination(t *testing.T) {
	cam, clk := newTestCamera()
	ended := 0
	updates := 0
	e := NewCustom(func(delta float64) bool {
		updates++
		return updates < 3
	}, func() { ended++ }, Options{Duration: time.Hour})
	cam.Add(e)

	runFor(cam, clk, 200*time.Millisecond, 20*time.Millisecond)

	if updates != 3 {
		t.Fatalf("updates = %d, want 3", updates)
	}
	if ended != 1 {
		t.Fatalf("OnEnd ran %d times, want 1", ended)
	}
	if len(cam.Active()) != 0 {
		t.Fatalf("effect still active after its update signalled termination")
	}
}

func TestCameraRemoveIsManualCancellation(t *testing.T) {
	cam, _ := newTestCamera()
	ended := 0
	keep := NewCustom(func(delta float64) bool { return true }, nil, Options{Duration: Infinite})
	drop := NewCustom(func(delta float64) bool { return true }, func() { ended++ }, Options{Duration: Infinite})

	cam.Add(keep)
	cam.Add(drop)
	cam.Remove(drop)

	if got := cam.Active(); len(got) != 1 || got[0] != Effect(keep) {
		t.Fatalf("Active after Remove = %v, want only the kept effect", got)
	}
	if ended != 0 {
		t.Fatalf("Remove ran OnEnd; manual cancellation must not")
	}
}

func TestCameraActiveIsACopy(t *testing.T) {
	cam, _ := newTestCamera()
	a := NewCustom(func(delta float64) bool { return true }, nil, Options{Duration: Infinite})
	b := NewCustom(func(delta float64) bool { return true }, nil, Options{Duration: Infinite})
	cam.Add(a)
	cam.Add(b)

	view := cam.Active()
	if len(view) != 2 || view[0] != Effect(a) || view[1] != Effect(b) {
		t.Fatalf("Active should preserve insertion order")
	}
	view[0] = nil
	if got := cam.Active(); got[0] != Effect(a) {
		t.Fatalf("mutating the Active view leaked into the camera")
	}
}

func TestCameraRemoveDuringTickHonoredAtPassEnd(t *testing.T) {
	cam, clk := newTestCamera()

	laterUpdates := 0
	later := NewCustom(func(delta float64) bool {
		laterUpdates++
		return true
	}, nil, Options{Duration: Infinite})

	earlierUpdates := 0
	earlierEnded := 0
	earlier := NewCustom(func(delta float64) bool {
		earlierUpdates++
		return true
	}, func() { earlierEnded++ }, Options{Duration: Infinite})

	remover := NewCustom(func(delta float64) bool {
		// earlier already ran this pass, later has not
		cam.Remove(earlier)
		cam.Remove(later)
		return true
	}, nil, Options{Duration: Infinite})

	cam.Add(earlier)
	cam.Add(remover)
	cam.Add(later)

	clk.advance(16 * time.Millisecond)
	cam.Tick(16)

	if earlierUpdates != 1 {
		t.Fatalf("already-iterated effect updates = %d, want 1", earlierUpdates)
	}
	if laterUpdates != 0 {
		t.Fatalf("not-yet-iterated effect ran after being removed mid-pass")
	}
	if got := cam.Active(); len(got) != 1 || got[0] != Effect(remover) {
		t.Fatalf("Active after mid-pass removals = %v, want only the remover", got)
	}
	if earlierEnded != 0 {
		t.Fatalf("manual Remove ran OnEnd")
	}

	clk.advance(16 * time.Millisecond)
	cam.Tick(16)
	if earlierUpdates != 1 || laterUpdates != 0 {
		t.Fatalf("removed effects ran on a later tick")
	}
}

func TestCameraAddDuringTickDefersToNextTick(t *testing.T) {
	cam, clk := newTestCamera()

	lateUpdates := 0
	late := NewCustom(func(delta float64) bool {
		lateUpdates++
		return true
	}, nil, Options{Duration: Infinite})

	added := false
	spawner := NewCustom(func(delta float64) bool {
		if !added {
			cam.Add(late)
			added = true
		}
		return true
	}, nil, Options{Duration: Infinite})
	cam.Add(spawner)

	clk.advance(16 * time.Millisecond)
	cam.Tick(16)
	if lateUpdates != 0 {
		t.Fatalf("effect added during Tick ran in the same pass")
	}
	if len(cam.Active()) != 2 {
		t.Fatalf("deferred effect missing from the active set")
	}

	clk.advance(16 * time.Millisecond)
	cam.Tick(16)
	if lateUpdates != 1 {
		t.Fatalf("deferred effect did not run on the next tick")
	}
}

func TestScenarioShake(t *testing.T) {
	cam, clk := newTestCamera()
	node := &stubNode{w: 200, h: 200}

	cam.Add(NewShake(node, 5, Options{Duration: 2 * time.Second}))
	runFor(cam, clk, 3*time.Second, 50*time.Millisecond)

	if len(cam.Active()) != 0 {
		t.Fatalf("shake still active after its duration elapsed")
	}
	if x, y := node.Pivot(); x != 0 || y != 0 {
		t.Fatalf("pivot = (%v, %v), want (0, 0) after shake ended", x, y)
	}
}

func TestScenarioPan(t *testing.T) {
	cam, clk := newTestCamera()
	node := &stubNode{w: 200, h: 200}

	cam.Add(NewPan(node, 50, 150, Options{Duration: 2 * time.Second}))
	runFor(cam, clk, 3*time.Second, 50*time.Millisecond)

	if len(cam.Active()) != 0 {
		t.Fatalf("pan still active after 3s")
	}
	x, y := node.Pivot()
	if x <= 45 || y <= 145 {
		t.Fatalf("pivot = (%v, %v), want >(45, 145)", x, y)
	}
}
