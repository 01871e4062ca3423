// SPDX-License-Identifier: MIT
// Package: flowmatch/match
//
// solve.go: end-to-end helpers: relation → network → flow → Answer.
//
// Concurrency:
//   • Run, Solve and SolveFile are synchronous and share no state.
//   • SolveAll runs one engine per builder on its own goroutine; any
//     Observer passed through opts must be safe for concurrent use
//     (NopObserver and ZapObserver are).

package match

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/flow"
)

const (
	methodRun      = "Run"
	methodSolveAll = "SolveAll"
)

// Result keeps every stage of one solved matching.
type Result struct {
	Network *builder.Network
	Flow    *flow.Flow
	Answer  *Answer
}

// Run builds the network from b, computes its max flow and extracts the
// matching.
func Run(b *builder.NetworkBuilder, opts ...flow.Option) (*Result, error) {
	if b == nil {
		return nil, matchErrorf(methodRun, ErrNilInput)
	}

	net, err := b.Build()
	if err != nil {
		return nil, matchErrorf(methodRun, err)
	}
	f, err := flow.New(net.Capacity(), net.Source(), net.Sink(), opts...)
	if err != nil {
		return nil, matchErrorf(methodRun, err)
	}
	ans, err := Extract(net, f)
	if err != nil {
		return nil, err
	}

	return &Result{Network: net, Flow: f, Answer: ans}, nil
}

// RunFile reads path with builder.ReadFile and runs it.
func RunFile(path string, opts ...flow.Option) (*Result, error) {
	b, err := builder.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Run(b, opts...)
}

// Solve is Run returning only the Answer.
func Solve(b *builder.NetworkBuilder, opts ...flow.Option) (*Answer, error) {
	res, err := Run(b, opts...)
	if err != nil {
		return nil, err
	}

	return res.Answer, nil
}

// SolveFile is RunFile returning only the Answer.
func SolveFile(path string, opts ...flow.Option) (*Answer, error) {
	res, err := RunFile(path, opts...)
	if err != nil {
		return nil, err
	}

	return res.Answer, nil
}

// SolveAll solves every builder on independent engines, at most GOMAXPROCS
// at a time. Answers keep the order of builders. The first error cancels
// the builders not yet started and is returned.
func SolveAll(ctx context.Context, builders []*builder.NetworkBuilder, opts ...flow.Option) ([]*Answer, error) {
	out := make([]*Answer, len(builders))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range builders {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ans, err := Solve(b, opts...)
			if err != nil {
				return err
			}
			out[i] = ans
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, matchErrorf(methodSolveAll, err)
	}

	return out, nil
}
