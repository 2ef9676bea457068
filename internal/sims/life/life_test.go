package life

import (
	"testing"

	"lifeboard/internal/core"
)

func clearBoard(l *Life) {
	cells := l.Cells()
	for i := range cells {
		cells[i] = 0
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	clearBoard(life)

	life.Toggle(1, 2)
	life.Toggle(2, 2)
	life.Toggle(3, 2)

	w := life.Size().W
	check := func(step string, expects map[[2]int]bool) {
		t.Helper()
		cells := life.Cells()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := cells[y*w+x] == 1
				_, shouldBeAlive := expects[[2]int{x, y}]
				if shouldBeAlive != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, shouldBeAlive)
				}
			}
		}
	}

	life.Step()
	check("first step", map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	life.Step()
	check("second step", map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestDefaultPattern(t *testing.T) {
	life := New(64, 64)
	if got := life.Size(); got != (core.Size{W: 64, H: 64}) {
		t.Fatalf("size %+v", got)
	}
	for i, c := range life.Cells() {
		want := uint8(0)
		if i%2 == 0 || i%7 == 0 {
			want = 1
		}
		if c != want {
			t.Fatalf("cell %d = %d, want %d", i, c, want)
		}
	}
}

func TestResizeNormalizesAndClears(t *testing.T) {
	life := New(64, 64)
	life.SetWidth(32)
	if got := life.Size(); got.W != 32 || got.H != 64 {
		t.Fatalf("size after SetWidth(32) = %+v", got)
	}
	if len(life.Cells()) != 32*64 {
		t.Fatalf("buffer length %d", len(life.Cells()))
	}
	if core.Population(life.Cells()) != 0 {
		t.Fatal("resize should leave every cell dead")
	}

	life.SetHeight(0)
	if life.Size().H != 1 {
		t.Fatalf("SetHeight(0) gave height %d, want 1", life.Size().H)
	}
	life.Step()
}

func TestResetSeeded(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(42)
	b.Reset(42)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("seeded reset not deterministic at %d", i)
		}
	}
	a.Reset(0)
	if a.Cells()[0] != 1 || a.Cells()[1] != 0 {
		t.Fatal("Reset(0) should restore the default pattern")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "12"})
	if got := sim.Size(); got.W != 10 || got.H != 12 {
		t.Fatalf("factory size %+v", got)
	}
}

func TestZeroDimensionClampsToOne(t *testing.T) {
	c := FromMap(map[string]string{"w": "0", "h": "5"})
	if c.Width != 0 || c.Height != 5 {
		t.Fatalf("FromMap gave %+v", c)
	}
	sim := core.Sims()["life"](map[string]string{"w": "0", "h": "5"})
	if got := sim.Size(); got.W != 1 || got.H != 5 {
		t.Fatalf("factory size %+v, want 1x5", got)
	}
}
