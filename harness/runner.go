package harness

import (
	"cmp"
	"context"
	"math/rand"
	"slices"
	"sync"

	"github.com/ar90n/zeropart"
	"github.com/ar90n/zeropart/check"
	"github.com/ar90n/zeropart/pipeline"
	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type Failure struct {
	Trial uint
	Shape Shape
	Input []int64
	Err   error
}

type Report struct {
	Trials   uint
	Failures []Failure
}

func (r Report) OK() bool {
	return len(r.Failures) == 0
}

type trialCase struct {
	trial uint
	shape Shape
	input []int64
}

func PartitionFunc(v Variant) func([]int64) int {
	if v == Stable {
		return zeropart.StablePushZeroStart[int64]
	}
	return zeropart.PushZeroStart[int64]
}

// Run partitions cfg.Trials generated sequences concurrently and checks every
// result. Trial t is generated from seed cfg.Seed+t, so a failure reproduces
// with the same seed regardless of scheduling.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (Report, error) {
	return run(ctx, cfg, logger, PartitionFunc(cfg.Variant))
}

func run(ctx context.Context, cfg Config, logger *zap.Logger, partition func([]int64) int) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("running trials",
		zap.Uint("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed),
		zap.String("variant", string(cfg.Variant)),
		zap.Int("workers", cfg.procNum()),
	)

	cases := pipeline.Map(ctx, pipeline.Seq(ctx, cfg.Trials), func(trial uint) trialCase {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(trial)))
		shape := ShapeOf(trial)
		return trialCase{trial: trial, shape: shape, input: Generate(rng, shape, cfg)}
	})

	var (
		mu     sync.Mutex
		report Report
	)
	p := pool.New().WithMaxGoroutines(cfg.procNum())
	for c := range cases {
		p.Go(func() {
			err := runTrial(c, cfg.Variant, partition)

			mu.Lock()
			defer mu.Unlock()
			report.Trials++
			if err != nil {
				logger.Warn("trial failed",
					zap.Uint("trial", c.trial),
					zap.Stringer("shape", c.shape),
					zap.Int64s("input", c.input),
					zap.Error(err),
				)
				report.Failures = append(report.Failures, Failure{
					Trial: c.trial,
					Shape: c.shape,
					Input: c.input,
					Err:   err,
				})
			}
		})
	}
	p.Wait()

	slices.SortFunc(report.Failures, func(a, b Failure) int {
		return cmp.Compare(a.Trial, b.Trial)
	})
	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.Info("done", zap.Uint("trials", report.Trials), zap.Int("failures", len(report.Failures)))
	return report, nil
}

func runTrial(c trialCase, variant Variant, partition func([]int64) int) error {
	xs := slices.Clone(c.input)
	boundary := partition(xs)

	if err := check.Partition(c.input, xs, boundary); err != nil {
		return err
	}

	switch c.shape {
	case Empty:
		if boundary != 0 {
			return errors.Newf("empty input: boundary %d", boundary)
		}
	case AllZero:
		if boundary != len(xs) {
			return errors.Newf("all-zero input: boundary %d, length %d", boundary, len(xs))
		}
	}

	if err := check.Idempotent(xs, boundary, partition); err != nil {
		return err
	}
	if variant == Stable {
		return check.Stable(c.input, xs)
	}
	return nil
}
