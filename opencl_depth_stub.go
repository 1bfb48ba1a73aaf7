//go:build !opencl

package main

import (
	"errors"

	"dotfield/internal/field"
)

type openCLDepthSolver struct{}

func newOpenCLDepthSolver(_ *field.Field) (*openCLDepthSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLDepthSolver) Step(_ float64, _ field.Pointer) ([]float32, error) {
	return nil, errors.New("OpenCL solver unavailable")
}

func (s *openCLDepthSolver) Close() {}

func (s *openCLDepthSolver) DeviceName() string { return "" }
