// Package ring implements the bounded single-producer/single-consumer sample
// queue used for both Q1 (capture -> VAD) and Q2 (VAD -> ASR). The producer
// never waits: on overflow the tail of the incoming write is dropped and an
// atomic counter records exactly how many samples were lost.
package ring

import "sync"

// DefaultCapacityQ1 is the default capacity of the capture->VAD queue: 1s of
// audio at 16kHz.
const DefaultCapacityQ1 = 16000

// DefaultCapacityQ2 is the default capacity of the VAD->ASR queue: 2s of
// audio at 16kHz.
const DefaultCapacityQ2 = 32000

// BackpressureThreshold is the default occupancy fraction above which the
// queue manager (see Manager) refuses new writes rather than overrunning.
const BackpressureThreshold = 0.8

// Buffer is a bounded lossy sample queue shared by exactly one producer and
// one consumer. Buffer itself is safe for concurrent use by one writer and
// one reader at a time; it must not be used by more than one of each.
type Buffer struct {
	mu       sync.Mutex
	data     []float32
	capacity int
	overrun  atomicCounter
}

// NewBuffer creates a ring of the given sample capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		data:     make([]float32, 0, capacity),
		capacity: capacity,
	}
}

// Producer returns the write half of the buffer.
func (b *Buffer) Producer() *Producer { return &Producer{buf: b} }

// Consumer returns the read half of the buffer.
func (b *Buffer) Consumer() *Consumer { return &Consumer{buf: b} }

// Capacity returns the configured sample capacity.
func (b *Buffer) Capacity() int { return b.capacity }

// OverrunCount returns the total number of samples dropped since creation
// or the last ResetOverrunCount call.
func (b *Buffer) OverrunCount() uint64 { return b.overrun.load() }

// ResetOverrunCount zeroes the overrun counter.
func (b *Buffer) ResetOverrunCount() { b.overrun.store(0) }

// AvailableSamples returns the number of samples currently queued.
func (b *Buffer) AvailableSamples() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Occupancy returns the current fill ratio in [0, 1].
func (b *Buffer) Occupancy() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.capacity == 0 {
		return 0
	}
	return float64(len(b.data)) / float64(b.capacity)
}

// write appends samples, accepting only as many as fit in the remaining
// capacity. It returns the number accepted and the number dropped.
func (b *Buffer) write(samples []float32) (accepted, dropped int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	available := b.capacity - len(b.data)
	if available < 0 {
		available = 0
	}
	canWrite := len(samples)
	if canWrite > available {
		canWrite = available
	}
	if canWrite > 0 {
		b.data = append(b.data, samples[:canWrite]...)
	}
	lost := len(samples) - canWrite
	if lost > 0 {
		b.overrun.add(uint64(lost))
	}
	return canWrite, lost
}

// read copies up to len(out) samples into out, draining them from the
// buffer, and returns the number copied.
func (b *Buffer) read(out []float32) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(out)
	if n > len(b.data) {
		n = len(b.data)
	}
	copy(out, b.data[:n])
	b.data = b.data[n:]
	return n
}

// readAvailable drains up to maxSamples samples, returning a fresh slice.
func (b *Buffer) readAvailable(maxSamples int) []float32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.data)
	if n > maxSamples {
		n = maxSamples
	}
	out := make([]float32, n)
	copy(out, b.data[:n])
	b.data = b.data[n:]
	return out
}

// Producer is the write half of a Buffer. It must not be shared across
// goroutines without external synchronization beyond what Buffer provides.
type Producer struct {
	buf *Buffer
}

// Write appends samples to the ring, dropping the tail on overflow. The
// returned accepted count may be less than len(samples); dropped samples are
// reflected in the buffer's overrun counter, never as an error return here
// (overrun is advisory telemetry, not a failure of the write itself).
func (p *Producer) Write(samples []float32) (accepted int) {
	accepted, _ = p.buf.write(samples)
	return accepted
}

// Consumer is the read half of a Buffer.
type Consumer struct {
	buf *Buffer
}

// Read copies up to len(out) samples into out and returns how many were
// copied; zero means the buffer was empty.
func (c *Consumer) Read(out []float32) int { return c.buf.read(out) }

// ReadAvailable drains up to maxSamples queued samples into a new slice.
func (c *Consumer) ReadAvailable(maxSamples int) []float32 { return c.buf.readAvailable(maxSamples) }

// AvailableSamples returns the number of samples currently queued.
func (c *Consumer) AvailableSamples() int { return c.buf.AvailableSamples() }

// Capacity returns the ring's configured sample capacity.
func (c *Consumer) Capacity() int { return c.buf.Capacity() }

// OverrunCount returns the total number of samples dropped since creation
// or the last reset.
func (c *Consumer) OverrunCount() uint64 { return c.buf.OverrunCount() }

// ResetOverrunCount zeroes the overrun counter.
func (c *Consumer) ResetOverrunCount() { c.buf.ResetOverrunCount() }
