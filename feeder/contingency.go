// SPDX-License-Identifier: MIT

// File: contingency.go
// Role: N-1 topology sweep.
// Concurrency:
//   - Outages are evaluated on an errgroup bounded by WithConcurrency; each
//     worker writes only its own slot of the result slice.

package feeder

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/radialgrid/radial"
)

// Outage is the topological effect of opening one line.
type Outage[ID cmp.Ordered] struct {
	// Line is the opened line.
	Line ID `json:"line" yaml:"line"`
	// Isolated lists the buses that lose supply, ascending.
	Isolated []ID `json:"isolated" yaml:"isolated"`
	// Alternatives lists the open lines that could be closed to restore
	// supply, ascending. Empty means the outage cannot be recovered.
	Alternatives []ID `json:"alternatives" yaml:"alternatives"`
}

// Recoverable reports whether at least one alternative line exists.
func (o Outage[ID]) Recoverable() bool { return len(o.Alternatives) > 0 }

// Contingency opens each of lines in turn and reports the isolated buses and
// the reconnection candidates. With no lines, every enabled line of net is
// swept. Results follow the order of lines.
//
// A disabled line fails the sweep with radial.ErrAlreadyDisabled and an
// unknown one with radial.ErrUnknownEdge. Cancelling ctx stops the sweep and
// returns ctx.Err().
func Contingency[ID cmp.Ordered](ctx context.Context, net *radial.Network[ID], lines []ID, opts ...Option) ([]Outage[ID], error) {
	o := buildOptions(opts)
	if len(lines) == 0 {
		lines = net.EnabledLines()
	}

	start := time.Now()
	o.logger.Info("contingency sweep started", "lines", len(lines), "concurrency", o.concurrency)

	out := make([]Outage[ID], len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, id := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			alts, err := net.AlternativeEdges(id)
			if err != nil {
				return fmt.Errorf("feeder: outage of line %v: %w", id, err)
			}
			isolated, err := net.DownstreamVertices(id)
			if err != nil {
				return fmt.Errorf("feeder: outage of line %v: %w", id, err)
			}
			out[i] = Outage[ID]{Line: id, Isolated: isolated, Alternatives: alts}
			o.logger.Debug("line outage evaluated",
				"line", id, "isolated", len(isolated), "alternatives", len(alts))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Warn("contingency sweep failed", "error", err)
		return nil, err
	}

	unrecoverable := 0
	for _, res := range out {
		if !res.Recoverable() {
			unrecoverable++
		}
	}
	o.logger.Info("contingency sweep finished",
		"lines", len(out), "unrecoverable", unrecoverable, "elapsed", time.Since(start))

	return out, nil
}
