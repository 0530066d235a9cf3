// Package selfcheck verifies the curve arithmetic against a table of
// precomputed multiples of the base point, optionally cross-checking every
// result with an independent reference implementation.
package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

var (
	// ErrMismatch is returned when a computed point differs from the table.
	ErrMismatch = errors.New("result does not match precomputed multiple")

	// ErrOracleMismatch is returned when the reference implementation disagrees.
	ErrOracleMismatch = errors.New("result does not match reference implementation")

	// ErrMissingMultiple is returned for cases that reference multiples
	// outside the table.
	ErrMissingMultiple = errors.New("multiple not in table")
)

// Oracle is an independent affine Add/Double implementation. The curves of
// crypto/elliptic and btcec.S256() satisfy it.
type Oracle interface {
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int)
	Double(x1, y1 *big.Int) (x, y *big.Int)
}

// Result is the outcome of one Case.
type Result struct {
	Case Case
	Got  curves.Point
	Err  error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a Run in case order.
type Report struct {
	Curve   string
	Results []Result
}

// Failed returns the number of failed cases.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Err joins the errors of every failed case, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Case, res.Err))
		}
	}
	return errors.Join(errs...)
}

type options struct {
	logger  *zap.Logger
	oracle  Oracle
	workers int
}

// Option configures Run.
type Option func(*options)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOracle cross-checks every result against o.
func WithOracle(o Oracle) Option {
	return func(opts *options) { opts.oracle = o }
}

// WithWorkers bounds the number of cases evaluated concurrently.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Run evaluates cases on c with the raw PointAdd and PointDouble formulas and
// compares each result with table. Case failures are recorded in the report;
// the returned error is only set when ctx is done before all cases finish.
func Run(ctx context.Context, c *curves.Curve, table *Table, cases []Case, opts ...Option) (*Report, error) {
	o := options{
		logger:  zap.NewNop(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	params := c.Params()
	p, a := params.P(), params.A()
	logger := o.logger.With(zap.String("curve", params.Name()))

	report := &Report{
		Curve:   params.Name(),
		Results: make([]Result, len(cases)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, tc := range cases {
		i, tc := i, tc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			got, err := evaluate(p, a, table, tc, o.oracle)
			report.Results[i] = Result{Case: tc, Got: got, Err: err}
			if err != nil {
				logger.Warn("check failed", zap.Stringer("case", tc), zap.Error(err))
			} else {
				logger.Debug("check passed", zap.Stringer("case", tc))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("self-check complete",
		zap.Int("cases", len(cases)),
		zap.Int("failed", report.Failed()),
		zap.Bool("oracle", o.oracle != nil),
	)
	return report, nil
}

func evaluate(p, a *big.Int, table *Table, tc Case, oracle Oracle) (curves.Point, error) {
	left, ok := table.Multiple(tc.Left)
	if !ok {
		return curves.Point{}, fmt.Errorf("%w: %dG", ErrMissingMultiple, tc.Left)
	}
	want, ok := table.Multiple(tc.Want)
	if !ok {
		return curves.Point{}, fmt.Errorf("%w: %dG", ErrMissingMultiple, tc.Want)
	}

	var (
		got    curves.Point
		err    error
		rx, ry *big.Int
	)
	switch tc.Kind {
	case Doubling:
		got, err = curves.PointDouble(p, a, left)
		if err == nil && oracle != nil {
			rx, ry = oracle.Double(left.Coordinates())
		}
	default:
		right, ok := table.Multiple(tc.Right)
		if !ok {
			return curves.Point{}, fmt.Errorf("%w: %dG", ErrMissingMultiple, tc.Right)
		}
		got, err = curves.PointAdd(p, left, right)
		if err == nil && oracle != nil {
			lx, ly := left.Coordinates()
			qx, qy := right.Coordinates()
			rx, ry = oracle.Add(lx, ly, qx, qy)
		}
	}
	if err != nil {
		return curves.Point{}, err
	}

	if !got.Equal(want) {
		return got, fmt.Errorf("%w: got %s, want %s", ErrMismatch, got, want)
	}
	if oracle != nil && !got.Equal(curves.NewPoint(rx, ry)) {
		return got, fmt.Errorf("%w: got %s, reference (%s, %s)", ErrOracleMismatch, got, rx, ry)
	}
	return got, nil
}
