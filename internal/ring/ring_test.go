package ring

import "testing"

func TestWriteReadBasic(t *testing.T) {
	buf := NewBuffer(10)
	p, c := buf.Producer(), buf.Consumer()

	accepted := p.Write([]float32{1, 2, 3})
	if accepted != 3 {
		t.Fatalf("expected 3 accepted, got %d", accepted)
	}

	out := make([]float32, 3)
	n := c.Read(out)
	if n != 3 {
		t.Fatalf("expected 3 read, got %d", n)
	}
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("unexpected samples: %v", out)
	}
}

func TestOverrunDropsTailAndCountsExactly(t *testing.T) {
	buf := NewBuffer(4)
	p := buf.Producer()

	accepted := p.Write([]float32{1, 2, 3, 4, 5, 6})
	if accepted != 4 {
		t.Fatalf("expected 4 accepted, got %d", accepted)
	}
	if got := buf.OverrunCount(); got != 2 {
		t.Fatalf("expected overrun count 2, got %d", got)
	}
}

func TestReadOnEmptyReturnsZero(t *testing.T) {
	buf := NewBuffer(4)
	c := buf.Consumer()
	out := make([]float32, 4)
	if n := c.Read(out); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestSumReadPlusDroppedEqualsAttempted(t *testing.T) {
	buf := NewBuffer(8)
	p, c := buf.Producer(), buf.Consumer()

	var totalAttempted, totalRead int
	writes := [][]float32{
		make([]float32, 3),
		make([]float32, 5),
		make([]float32, 10),
		make([]float32, 2),
	}
	for _, w := range writes {
		totalAttempted += len(w)
		p.Write(w)
	}
	for {
		out := make([]float32, 4)
		n := c.Read(out)
		if n == 0 {
			break
		}
		totalRead += n
	}
	if uint64(totalRead)+buf.OverrunCount() != uint64(totalAttempted) {
		t.Fatalf("read(%d) + dropped(%d) != attempted(%d)", totalRead, buf.OverrunCount(), totalAttempted)
	}
}

func TestResetOverrunCount(t *testing.T) {
	buf := NewBuffer(2)
	p := buf.Producer()
	p.Write([]float32{1, 2, 3})
	if buf.OverrunCount() == 0 {
		t.Fatal("expected nonzero overrun")
	}
	buf.ResetOverrunCount()
	if buf.OverrunCount() != 0 {
		t.Fatal("expected overrun reset to zero")
	}
}

func TestReadAvailableDrains(t *testing.T) {
	buf := NewBuffer(10)
	p, c := buf.Producer(), buf.Consumer()
	p.Write([]float32{1, 2, 3, 4, 5})

	out := c.ReadAvailable(100)
	if len(out) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(out))
	}
	if c.AvailableSamples() != 0 {
		t.Fatal("expected buffer drained")
	}
}
