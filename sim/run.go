package sim

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/config"
)

// IterationResult is one step's captured observable arrays, indexed by
// node the same way Engine.Velocity/Density are.
type IterationResult struct {
	Iteration int
	Velocity  []lbm.Vec2
	Density   []float64
}

// Result is the full output of a Run: the fluid-node list iterated for
// reporting, and, when requested, one IterationResult per step.
type Result struct {
	FluidNodes []int
	Grid       struct{ W, H int }
	Iterations []IterationResult
}

// Run builds the engine d.Algorithm names and advances it d.TimeSteps
// times, logging each step through logger (nil disables logging) and
// recording observables into the result when d.ResultsToCSV is set.
// The per-step state machine (ghost emplace, stream/bounce-back,
// collide, inlet/outlet, corner/buffer cleanup) lives entirely inside
// each Engine.Step; Run only supplies the outer loop and the captured
// side channel the teacher's DomainManipulator pipeline provided via
// Calculations/Log/Results.
func Run(d *config.Data, logger *Logger) (*Result, error) {
	e, fluid, err := Build(d)
	if err != nil {
		return nil, err
	}

	res := &Result{FluidNodes: fluid}
	res.Grid.W, res.Grid.H = d.Grid.W, d.Grid.H
	if d.ResultsToCSV {
		res.Iterations = make([]IterationResult, 0, d.TimeSteps)
	}

	for i := 0; i < d.TimeSteps; i++ {
		if err := e.Step(); err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Step()
		}
		if d.ResultsToCSV {
			res.Iterations = append(res.Iterations, snapshot(i+1, fluid, e))
		}
	}
	return res, nil
}

func snapshot(iteration int, fluid []int, e Engine) IterationResult {
	vel := make([]lbm.Vec2, len(fluid))
	den := make([]float64, len(fluid))
	srcVel, srcDen := e.Velocity(), e.Density()
	for i, node := range fluid {
		vel[i] = srcVel[node]
		den[i] = srcDen[node]
	}
	return IterationResult{Iteration: iteration, Velocity: vel, Density: den}
}
