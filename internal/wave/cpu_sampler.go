package wave

import (
	"math"
	"runtime"
	"sync"
)

// inlineSamples is the frame size below which workers cost more than they save.
const inlineSamples = 256

// span represents an inclusive sample index range.
type span struct{ start, end int }

// Sampler evaluates frames on the CPU, splitting the sample range across
// worker goroutines. Samples are independent so the split never changes the
// result.
type Sampler struct {
	workers   int
	spanWidth int
	assigned  [][]span
	lastLen   int
}

// NewSampler returns a CPU sampler. workers < 1 selects runtime.NumCPU().
func NewSampler(workers int) *Sampler {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Sampler{workers: workers, spanWidth: 64}
}

// Name identifies the backend in logs and the HUD.
func (s *Sampler) Name() string { return "cpu" }

// Close is a no-op; the CPU sampler holds no external resources.
func (s *Sampler) Close() {}

// Workers returns the configured worker count.
func (s *Sampler) Workers() int { return s.workers }

// Sample writes every enabled trace of f for time t.
func (s *Sampler) Sample(f *Frame, p Params, r Reflection, t float64, show Toggles) error {
	if err := f.check(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	n := f.Len()
	if n == 0 || !show.Any() {
		return nil
	}
	if s.workers == 1 || n <= inlineSamples {
		sampleSpan(f, p, r, t, show, span{0, n - 1})
		return nil
	}
	if n != s.lastLen {
		s.assigned = assignSpans(s.workers, splitSpans(n, s.spanWidth))
		s.lastLen = n
	}
	var wg sync.WaitGroup
	for _, spans := range s.assigned {
		if len(spans) == 0 {
			continue
		}
		wg.Add(1)
		go func(spans []span) {
			defer wg.Done()
			for _, sp := range spans {
				sampleSpan(f, p, r, t, show, sp)
			}
		}(spans)
	}
	wg.Wait()
	return nil
}

// sampleSpan fills one contiguous index range. The sine arguments are expanded
// inline so that each sample costs two math.Sin calls.
func sampleSpan(f *Frame, p Params, r Reflection, t float64, show Toggles, sp span) {
	k := p.WaveNumber()
	wt := p.AngularFrequency() * t
	phase := r.PhaseShift()
	a := p.Amplitude
	for i := sp.start; i <= sp.end; i++ {
		kx := k * f.X(i)
		inc := a * math.Sin(kx-wt)
		ref := a * math.Sin(-kx-wt+phase)
		if show.Incident {
			f.Incident[i] = float32(inc)
		}
		if show.Reflected {
			f.Reflected[i] = float32(ref)
		}
		if show.Standing {
			f.Standing[i] = float32(inc + ref)
		}
	}
}

// splitSpans cuts [0, n) into spans of at most width samples.
func splitSpans(n, width int) []span {
	if width < 1 {
		width = 1
	}
	spans := make([]span, 0, (n+width-1)/width)
	for start := 0; start < n; start += width {
		end := start + width - 1
		if end > n-1 {
			end = n - 1
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// assignSpans distributes spans across workers in round robin fashion.
func assignSpans(workerCount int, spans []span) [][]span {
	if workerCount < 1 {
		workerCount = 1
	}
	out := make([][]span, workerCount)
	for idx, sp := range spans {
		w := idx % workerCount
		out[w] = append(out[w], sp)
	}
	return out
}
