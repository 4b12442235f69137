package ring

// Manager owns the two SPSC queues of the pipeline (Q1: capture -> VAD,
// Q2: VAD -> ASR) and layers a back-pressure flag on top of each: once
// occupancy crosses the configured threshold, writes are refused outright
// (return zero accepted) rather than being allowed to overrun, so the
// caller can choose to coalesce or simply notice the discontinuity.
type Manager struct {
	Q1 *Buffer
	Q2 *Buffer

	threshold float64

	q1Backpressure bool
	q2Backpressure bool
}

// NewManager creates a queue manager with the default capacities and
// back-pressure threshold.
func NewManager() *Manager {
	return &Manager{
		Q1:        NewBuffer(DefaultCapacityQ1),
		Q2:        NewBuffer(DefaultCapacityQ2),
		threshold: BackpressureThreshold,
	}
}

// WriteQ1 writes to Q1, honoring back-pressure: once occupancy exceeds the
// threshold the write is refused (accepted == 0) instead of overrunning.
func (m *Manager) WriteQ1(samples []float32) (accepted int) {
	return writeWithBackpressure(m.Q1, samples, m.threshold, &m.q1Backpressure)
}

// WriteQ2 writes to Q2 with the same back-pressure policy as WriteQ1.
func (m *Manager) WriteQ2(samples []float32) (accepted int) {
	return writeWithBackpressure(m.Q2, samples, m.threshold, &m.q2Backpressure)
}

// Q1Backpressure reports whether Q1 is currently refusing writes.
func (m *Manager) Q1Backpressure() bool { return m.q1Backpressure }

// Q2Backpressure reports whether Q2 is currently refusing writes.
func (m *Manager) Q2Backpressure() bool { return m.q2Backpressure }

func writeWithBackpressure(buf *Buffer, samples []float32, threshold float64, flag *bool) int {
	if buf.Occupancy() > threshold {
		*flag = true
		return 0
	}
	accepted := buf.Producer().Write(samples)
	*flag = buf.Occupancy() > threshold
	return accepted
}
