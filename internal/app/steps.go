package app

import (
	"context"
	"io"

	"github.com/agbru/flowsample/internal/cli"
	"github.com/agbru/flowsample/internal/compare"
	"github.com/agbru/flowsample/internal/config"
	"github.com/agbru/flowsample/internal/list"
	"github.com/agbru/flowsample/internal/logging"
	"github.com/agbru/flowsample/internal/metrics"
	"github.com/agbru/flowsample/internal/numeric"
	"github.com/agbru/flowsample/internal/orchestration"
	"github.com/agbru/flowsample/internal/summation"
)

// Step names, in execution order.
const (
	StepCompare   = "compare"
	StepSum       = "sum"
	StepList      = "list"
	StepFibonacci = "fibonacci"
	StepCountdown = "countdown"
	StepRelease   = "release"
)

// Deps holds the collaborators shared by the steps.
type Deps struct {
	List     *list.List
	Factory  *numeric.Factory
	Recorder *metrics.Recorder
	Logger   logging.Logger
}

// BuildSteps returns the demonstrations in their fixed order. The list step
// leaves its nodes alive; they are freed by the final release step.
func BuildSteps(cfg config.AppConfig, deps Deps) []orchestration.Step {
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}
	return []orchestration.Step{
		orchestration.StepFunc{StepName: StepCompare, Fn: func(_ context.Context, out io.Writer) error {
			return cli.DisplayMax(out, compare.Max(cfg.A, cfg.B))
		}},
		orchestration.StepFunc{StepName: StepSum, Fn: func(_ context.Context, out io.Writer) error {
			return cli.DisplaySum(out, summation.Sum(cfg.Values))
		}},
		orchestration.StepFunc{StepName: StepList, Fn: func(_ context.Context, out io.Writer) error {
			for i := range cfg.ListSize {
				deps.List.Append(i * cfg.ListStep)
			}
			return cli.DisplayList(out, deps.List)
		}},
		orchestration.StepFunc{StepName: StepFibonacci, Fn: func(ctx context.Context, out io.Writer) error {
			value, err := fibonacci(ctx, cfg, deps)
			if err != nil {
				return err
			}
			if deps.Recorder != nil {
				deps.Recorder.SetFibonacci(value)
			}
			return cli.DisplayFibonacci(out, cfg.N, value)
		}},
		orchestration.StepFunc{StepName: StepCountdown, Fn: func(_ context.Context, out io.Writer) error {
			return cli.DisplayCountdown(out, cfg.Countdown)
		}},
		orchestration.StepFunc{StepName: StepRelease, Fn: func(context.Context, io.Writer) error {
			released := deps.List.Release()
			deps.Logger.Debug("list released", logging.Int("nodes", released))
			return nil
		}},
	}
}

// fibonacci computes F(cfg.N) with the configured strategy, or with every
// registered strategy concurrently when the algorithm is config.AlgoAll.
func fibonacci(ctx context.Context, cfg config.AppConfig, deps Deps) (int, error) {
	if cfg.FibAlgo != config.AlgoAll {
		strategy, err := deps.Factory.Get(cfg.FibAlgo)
		if err != nil {
			return 0, err
		}
		return strategy.Compute(cfg.N), nil
	}

	results, value, err := numeric.CrossCheck(ctx, deps.Factory.GetAll(), cfg.N)
	for _, r := range results {
		deps.Logger.Debug("strategy result",
			logging.String("strategy", r.Name),
			logging.Int("n", cfg.N),
			logging.Int("value", r.Value))
	}
	return value, err
}
