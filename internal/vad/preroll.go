package vad

// PreRoll is a fixed-capacity ring of audio samples captured while the
// pipeline sits in Silence or SpeechCandidate, so that the first confirmed
// Speech frame can be preceded by the moments of audio that led up to it
// (leading phonemes are otherwise lost to VAD dwell latency).
type PreRoll struct {
	capacity int
	buf      []float32
	active   bool
}

// NewPreRoll creates a buffer with the given sample capacity.
func NewPreRoll(capacitySamples int) *PreRoll {
	return &PreRoll{capacity: capacitySamples, buf: make([]float32, 0, capacitySamples)}
}

// Push appends a frame, dropping the oldest samples if the buffer is full.
// A no-op while the buffer has been halted (see Retrieve).
func (p *PreRoll) Push(frame []float32) {
	if p.active {
		return
	}
	p.buf = append(p.buf, frame...)
	if over := len(p.buf) - p.capacity; over > 0 {
		p.buf = p.buf[over:]
	}
}

// Retrieve returns all currently buffered samples in time order, and halts
// further pushes until Clear is called. Per the spec, retrieval happens
// exactly once per speech confirmation.
func (p *PreRoll) Retrieve() []float32 {
	out := make([]float32, len(p.buf))
	copy(out, p.buf)
	p.active = true
	return out
}

// Clear empties the buffer and resumes accepting pushes.
func (p *PreRoll) Clear() {
	p.buf = p.buf[:0]
	p.active = false
}

// Len returns the number of samples currently buffered.
func (p *PreRoll) Len() int { return len(p.buf) }

// IsFull reports whether the buffer has reached capacity.
func (p *PreRoll) IsFull() bool { return len(p.buf) >= p.capacity }

// BufferedDurationMs returns the buffered duration in milliseconds at the
// given sample rate.
func (p *PreRoll) BufferedDurationMs(sampleRate int) float64 {
	if sampleRate == 0 {
		return 0
	}
	return float64(len(p.buf)) * 1000.0 / float64(sampleRate)
}
