//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"dotfield/internal/field"
)

// openCLDepthSolver evaluates the ripple and proximity terms for every dot
// on an OpenCL device. Lattice coordinates and phases are uploaded once;
// each frame only the time and pointer arguments change.
type openCLDepthSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	baseXBuf   *cl.MemObject
	baseYBuf   *cl.MemObject
	phaseBuf   *cl.MemObject
	depthBuf   *cl.MemObject
	count      int
	depths     []float32
	deviceName string
}

const (
	argTime     = 9
	argPointerX = 10
	argPointerY = 11
)

const depthKernelSource = `__kernel void dot_depth(
    const int count,
    const float kx,
    const float ky,
    const float wx,
    const float wy,
    const float amplitude,
    const float radius,
    const float rise,
    const float jitter,
    const float t,
    const float px,
    const float py,
    __global const float* base_x,
    __global const float* base_y,
    __global const float* phase,
    __global float* depth)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    float bx = base_x[i];
    float by = base_y[i];
    float ripple = sin(bx * kx + t * wx + phase[i] * jitter) * cos(by * ky + t * wy) * amplitude;
    float dx = bx - px;
    float dy = by - py;
    float d = sqrt(dx * dx + dy * dy);
    float lift = 0.0f;
    if (d < radius) {
        lift = (radius - d) * rise;
    }
    depth[i] = ripple + lift;
}`

// pickDevice prefers the first GPU and falls back to the first CPU device.
func pickDevice() (*cl.Device, error) {
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
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0], nil
		}
	}
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeCPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0], nil
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLDepthSolver(f *field.Field) (*openCLDepthSolver, error) {
	device, err := pickDevice()
	if err != nil {
		return nil, err
	}
	s := &openCLDepthSolver{
		count:      f.Len(),
		depths:     make([]float32, f.Len()),
		deviceName: device.Name(),
	}

	s.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	s.queue, err = s.context.CreateCommandQueue(device, 0)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = s.context.CreateProgramWithSource([]string{depthKernelSource})
	if err != nil {
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
	s.kernel, err = s.program.CreateKernel("dot_depth")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	byteSize := s.count * int(unsafe.Sizeof(float32(0)))
	alloc := func(name string, writable bool) (*cl.MemObject, error) {
		flags := cl.MemReadOnly
		if writable {
			flags = cl.MemWriteOnly
		}
		buf, err := s.context.CreateEmptyBuffer(flags, byteSize)
		if err != nil {
			return nil, fmt.Errorf("allocating %s buffer: %w", name, err)
		}
		return buf, nil
	}
	if s.baseXBuf, err = alloc("base x", false); err != nil {
		s.Close()
		return nil, err
	}
	if s.baseYBuf, err = alloc("base y", false); err != nil {
		s.Close()
		return nil, err
	}
	if s.phaseBuf, err = alloc("phase", false); err != nil {
		s.Close()
		return nil, err
	}
	if s.depthBuf, err = alloc("depth", true); err != nil {
		s.Close()
		return nil, err
	}

	points := f.Points()
	baseX := make([]float32, len(points))
	baseY := make([]float32, len(points))
	phase := make([]float32, len(points))
	for i, p := range points {
		baseX[i] = float32(p.BaseX)
		baseY[i] = float32(p.BaseY)
		phase[i] = float32(p.Phase)
	}
	for _, up := range []struct {
		buf  *cl.MemObject
		data []float32
	}{
		{s.baseXBuf, baseX},
		{s.baseYBuf, baseY},
		{s.phaseBuf, phase},
	} {
		if _, err := s.queue.EnqueueWriteBufferFloat32(up.buf, true, 0, up.data, nil); err != nil {
			s.Close()
			return nil, fmt.Errorf("uploading lattice: %w", err)
		}
	}

	params := f.Params()
	off := f.Offscreen()
	if err := s.kernel.SetArgs(
		int32(s.count),
		float32(params.Kx),
		float32(params.Ky),
		float32(params.Wx),
		float32(params.Wy),
		float32(params.Amplitude),
		float32(params.Radius),
		float32(params.RiseRate),
		float32(params.PhaseJitter),
		float32(0),
		float32(off.X),
		float32(off.Y),
		s.baseXBuf,
		s.baseYBuf,
		s.phaseBuf,
		s.depthBuf,
	); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return s, nil
}

// Step evaluates depths at time t for pointer ptr. The returned slice is
// reused by the next call.
func (s *openCLDepthSolver) Step(t float64, ptr field.Pointer) ([]float32, error) {
	if err := s.kernel.SetArgFloat32(argTime, float32(t)); err != nil {
		return nil, fmt.Errorf("setting time argument: %w", err)
	}
	if err := s.kernel.SetArgFloat32(argPointerX, float32(ptr.X)); err != nil {
		return nil, fmt.Errorf("setting pointer argument: %w", err)
	}
	if err := s.kernel.SetArgFloat32(argPointerY, float32(ptr.Y)); err != nil {
		return nil, fmt.Errorf("setting pointer argument: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{s.count}, nil, nil); err != nil {
		return nil, fmt.Errorf("enqueueing depth kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.depthBuf, true, 0, s.depths, nil); err != nil {
		return nil, fmt.Errorf("reading depths: %w", err)
	}
	return s.depths, nil
}

// Close releases every OpenCL object that was created.
func (s *openCLDepthSolver) Close() {
	for _, buf := range []*cl.MemObject{s.depthBuf, s.phaseBuf, s.baseYBuf, s.baseXBuf} {
		if buf != nil {
			buf.Release()
		}
	}
	s.depthBuf, s.phaseBuf, s.baseYBuf, s.baseXBuf = nil, nil, nil, nil
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

func (s *openCLDepthSolver) DeviceName() string {
	return s.deviceName
}
