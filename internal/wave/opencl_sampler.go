//go:build opencl

package wave

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// OpenCLSampler evaluates frames with one work item per sample.
type OpenCLSampler struct {
	context      *cl.Context
	queue        *cl.CommandQueue
	program      *cl.Program
	kernel       *cl.Kernel
	incidentBuf  *cl.MemObject
	reflectedBuf *cl.MemObject
	standingBuf  *cl.MemObject
	capacity     int
	deviceName   string
}

const traceKernelSource = `__kernel void sample_traces(
    const int count,
    const float spacing,
    const float amplitude,
    const float k,
    const float wt,
    const float phase,
    __global float* incident,
    __global float* reflected,
    __global float* standing)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    float kx = k * ((float)i * spacing);
    float inc = amplitude * sin(kx - wt);
    float ref = amplitude * sin(-kx - wt + phase);
    incident[i] = inc;
    reflected[i] = ref;
    standing[i] = inc + ref;
}`

// NewOpenCLSampler compiles the trace kernel on the first GPU it finds,
// falling back to a CPU device, with buffers for up to samples entries.
func NewOpenCLSampler(samples int) (*OpenCLSampler, error) {
	if samples < 1 {
		return nil, fmt.Errorf("OpenCL sampler needs at least one sample, got %d", samples)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &OpenCLSampler{deviceName: device.Name()}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{traceKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("sample_traces"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	if err := s.allocate(samples); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (s *OpenCLSampler) allocate(samples int) error {
	s.releaseBuffers()
	byteSize := samples * int(unsafe.Sizeof(float32(0)))
	var err error
	if s.incidentBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize); err != nil {
		return fmt.Errorf("allocating incident buffer: %w", err)
	}
	if s.reflectedBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize); err != nil {
		s.releaseBuffers()
		return fmt.Errorf("allocating reflected buffer: %w", err)
	}
	if s.standingBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize); err != nil {
		s.releaseBuffers()
		return fmt.Errorf("allocating standing buffer: %w", err)
	}
	s.capacity = samples
	return nil
}

// Sample runs the kernel and reads back the enabled traces.
func (s *OpenCLSampler) Sample(f *Frame, p Params, r Reflection, t float64, show Toggles) error {
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
	if n > s.capacity {
		if err := s.allocate(n); err != nil {
			return err
		}
	}
	// float32 loses the phase once ω·t grows; reduce it on the host first.
	wt := math.Mod(p.AngularFrequency()*t, 2*math.Pi)
	if err := s.kernel.SetArgs(
		int32(n),
		float32(f.Spacing),
		float32(p.Amplitude),
		float32(p.WaveNumber()),
		float32(wt),
		float32(r.PhaseShift()),
		s.incidentBuf,
		s.reflectedBuf,
		s.standingBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	reads := []struct {
		enabled bool
		buf     *cl.MemObject
		dst     []float32
		label   string
	}{
		{show.Incident, s.incidentBuf, f.Incident, "incident"},
		{show.Reflected, s.reflectedBuf, f.Reflected, "reflected"},
		{show.Standing, s.standingBuf, f.Standing, "standing"},
	}
	for _, rd := range reads {
		if !rd.enabled {
			continue
		}
		if _, err := s.queue.EnqueueReadBufferFloat32(rd.buf, true, 0, rd.dst, nil); err != nil {
			return fmt.Errorf("reading %s buffer: %w", rd.label, err)
		}
	}
	return nil
}

func (s *OpenCLSampler) Name() string { return "opencl" }

// DeviceName reports the OpenCL device the kernel runs on.
func (s *OpenCLSampler) DeviceName() string { return s.deviceName }

func (s *OpenCLSampler) releaseBuffers() {
	for _, buf := range []**cl.MemObject{&s.incidentBuf, &s.reflectedBuf, &s.standingBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	s.capacity = 0
}

// Close releases every OpenCL object. It is safe to call more than once.
func (s *OpenCLSampler) Close() {
	s.releaseBuffers()
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
