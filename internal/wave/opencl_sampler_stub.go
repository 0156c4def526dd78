//go:build !opencl

package wave

import "errors"

// OpenCLSampler is unavailable in builds without the opencl tag.
type OpenCLSampler struct{}

// NewOpenCLSampler always fails; rebuild with -tags opencl for GPU sampling.
func NewOpenCLSampler(samples int) (*OpenCLSampler, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *OpenCLSampler) Sample(f *Frame, p Params, r Reflection, t float64, show Toggles) error {
	return errors.New("OpenCL sampler unavailable")
}

func (s *OpenCLSampler) Name() string { return "opencl" }

func (s *OpenCLSampler) Close() {}

// DeviceName returns the empty string without OpenCL support.
func (s *OpenCLSampler) DeviceName() string { return "" }
