package wave

import "fmt"

// Frame stores one sampled trace per wave variant. Sample i sits at position
// i*Spacing.
type Frame struct {
	Spacing   float64
	Incident  []float32
	Reflected []float32
	Standing  []float32
}

// NewFrame allocates a Frame with properly sized buffers.
func NewFrame(samples int, spacing float64) *Frame {
	if samples < 0 {
		samples = 0
	}
	return &Frame{
		Spacing:   spacing,
		Incident:  make([]float32, samples),
		Reflected: make([]float32, samples),
		Standing:  make([]float32, samples),
	}
}

// Len returns the number of samples per trace.
func (f *Frame) Len() int { return len(f.Standing) }

// X returns the horizontal position of sample i.
func (f *Frame) X(i int) float64 { return float64(i) * f.Spacing }

// Resize reallocates the buffers when the sample count changes.
func (f *Frame) Resize(samples int, spacing float64) {
	f.Spacing = spacing
	if samples == f.Len() && len(f.Incident) == samples && len(f.Reflected) == samples {
		return
	}
	*f = *NewFrame(samples, spacing)
}

func (f *Frame) check() error {
	if f == nil {
		return fmt.Errorf("nil frame")
	}
	n := len(f.Standing)
	if len(f.Incident) != n || len(f.Reflected) != n {
		return fmt.Errorf("frame buffers disagree: incident=%d reflected=%d standing=%d",
			len(f.Incident), len(f.Reflected), n)
	}
	return nil
}

// Tracer fills a Frame with the traces for one instant.
type Tracer interface {
	Sample(f *Frame, p Params, r Reflection, t float64, show Toggles) error
	Name() string
	Close()
}
