package organs

// Waveform is a bounded sample history with the newest sample at the front.
// Pushing beyond capacity evicts the oldest sample. Used for EKG leads, EEG
// and capnography traces.
type Waveform struct {
	buf  []float64
	head int // index of the newest sample
	n    int
}

// NewWaveform creates a waveform history with the given capacity.
func NewWaveform(capacity int) *Waveform {
	if capacity < 1 {
		capacity = 1
	}
	return &Waveform{buf: make([]float64, capacity)}
}

// Push adds a sample at the front, evicting the oldest if full.
func (w *Waveform) Push(v float64) {
	w.head--
	if w.head < 0 {
		w.head = len(w.buf) - 1
	}
	w.buf[w.head] = v
	if w.n < len(w.buf) {
		w.n++
	}
}

// Len returns the number of stored samples.
func (w *Waveform) Len() int { return w.n }

// Cap returns the configured capacity.
func (w *Waveform) Cap() int { return len(w.buf) }

// At returns the i-th sample, 0 being the newest.
func (w *Waveform) At(i int) float64 {
	return w.buf[(w.head+i)%len(w.buf)]
}

// Front returns the newest sample, or 0 if empty.
func (w *Waveform) Front() float64 {
	if w.n == 0 {
		return 0
	}
	return w.buf[w.head]
}

// Values copies the samples out, newest first.
func (w *Waveform) Values() []float64 {
	out := make([]float64, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.At(i)
	}
	return out
}
