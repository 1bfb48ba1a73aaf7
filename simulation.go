package main

import "dotfield/internal/field"

// advance computes this frame's positions on the GPU when a solver is
// attached, otherwise on the CPU.
func (g *Game) advance(t float64, ptr field.Pointer) ([]field.Position, error) {
	if g.gpuSolver != nil {
		depths, err := g.gpuSolver.Step(t, ptr)
		if err != nil {
			return nil, err
		}
		return g.field.SetDepths(depths)
	}
	if g.workers > 1 {
		return g.field.AdvanceParallel(t, ptr, g.workers), nil
	}
	return g.field.Advance(t, ptr), nil
}
