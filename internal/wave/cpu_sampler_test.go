package wave

import (
	"math"
	"testing"
)

func TestSamplerMatchesPointwise(t *testing.T) {
	p := Params{Amplitude: 64, Frequency: 1.7, Wavelength: 140}
	for _, workers := range []int{1, 3, 8} {
		for _, n := range []int{1, 100, 801, 2000} {
			s := NewSampler(workers)
			f := NewFrame(n, 1)
			for _, r := range []Reflection{Fixed, Free} {
				tm := 3.3
				if err := s.Sample(f, p, r, tm, AllTraces()); err != nil {
					t.Fatalf("Sample: %v", err)
				}
				for i := 0; i < n; i++ {
					x := f.X(i)
					checks := []struct {
						name string
						got  float32
						want float64
					}{
						{"incident", f.Incident[i], IncidentAt(x, tm, p)},
						{"reflected", f.Reflected[i], ReflectedAt(x, tm, p, r)},
						{"standing", f.Standing[i], StandingAt(x, tm, p, r)},
					}
					for _, c := range checks {
						if math.Abs(float64(c.got)-c.want) > 1e-4 {
							t.Fatalf("workers=%d n=%d %v %s[%d] = %v, want %v", workers, n, r, c.name, i, c.got, c.want)
						}
					}
				}
			}
		}
	}
}

func TestSamplerSkipsDisabledTraces(t *testing.T) {
	s := NewSampler(4)
	f := NewFrame(800, 1)
	for i := range f.Incident {
		f.Incident[i] = 999
		f.Reflected[i] = 999
	}
	show := Toggles{Standing: true}
	if err := s.Sample(f, DefaultParams(), Fixed, 0.4, show); err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for i := range f.Incident {
		if f.Incident[i] != 999 || f.Reflected[i] != 999 {
			t.Fatalf("disabled trace written at %d", i)
		}
	}
	if f.Standing[200] == 0 && f.Standing[201] == 0 {
		t.Error("standing trace was not written")
	}
}

func TestSamplerSpacing(t *testing.T) {
	p := DefaultParams()
	f := NewFrame(80, 10)
	if err := NewSampler(2).Sample(f, p, Free, 0.25, AllTraces()); err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if got, want := float64(f.Standing[5]), StandingAt(50, 0.25, p, Free); math.Abs(got-want) > 1e-4 {
		t.Errorf("Standing[5] = %v, want %v", got, want)
	}
}

func TestSamplerRejectsBadInput(t *testing.T) {
	s := NewSampler(1)
	if err := s.Sample(nil, DefaultParams(), Fixed, 0, AllTraces()); err == nil {
		t.Error("nil frame should fail")
	}
	bad := &Frame{Spacing: 1, Incident: make([]float32, 3), Reflected: make([]float32, 4), Standing: make([]float32, 4)}
	if err := s.Sample(bad, DefaultParams(), Fixed, 0, AllTraces()); err == nil {
		t.Error("mismatched buffers should fail")
	}
	if err := s.Sample(NewFrame(4, 1), Params{Amplitude: 1, Frequency: 1}, Fixed, 0, AllTraces()); err == nil {
		t.Error("zero wavelength should fail")
	}
	if err := s.Sample(NewFrame(0, 1), DefaultParams(), Fixed, 0, AllTraces()); err != nil {
		t.Errorf("empty frame: %v", err)
	}
}

func TestSplitAndAssignSpans(t *testing.T) {
	spans := splitSpans(130, 64)
	want := []span{{0, 63}, {64, 127}, {128, 129}}
	if len(spans) != len(want) {
		t.Fatalf("splitSpans = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %v, want %v", i, spans[i], want[i])
		}
	}
	assigned := assignSpans(2, spans)
	if len(assigned[0]) != 2 || len(assigned[1]) != 1 {
		t.Errorf("assignSpans = %v", assigned)
	}
	if got := assignSpans(0, spans); len(got) != 1 || len(got[0]) != 3 {
		t.Errorf("assignSpans(0) = %v", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(10, 1)
	f.Resize(10, 2)
	if f.Len() != 10 || f.Spacing != 2 {
		t.Errorf("Resize same length: len=%d spacing=%v", f.Len(), f.Spacing)
	}
	f.Resize(25, 4)
	if f.Len() != 25 || len(f.Incident) != 25 || len(f.Reflected) != 25 || f.X(3) != 12 {
		t.Errorf("Resize grow: len=%d x3=%v", f.Len(), f.X(3))
	}
	if NewFrame(-3, 1).Len() != 0 {
		t.Error("negative sample count should yield an empty frame")
	}
}

func BenchmarkSampler(b *testing.B) {
	s := NewSampler(0)
	f := NewFrame(800, 1)
	p := DefaultParams()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(f, p, Fixed, float64(i)*0.1, AllTraces())
	}
}
