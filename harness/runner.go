// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"golang.org/x/sync/errgroup"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/artifacts"
	"github.com/offchainlabs/forkharness/txutil"
)

var (
	scenarioSuccessCounter = metrics.NewRegisteredCounter("forkharness/scenario/success", nil)
	scenarioFailureCounter = metrics.NewRegisteredCounter("forkharness/scenario/failure", nil)
	scenarioTimeoutCounter = metrics.NewRegisteredCounter("forkharness/scenario/timeout", nil)
	scenarioTimer          = metrics.NewRegisteredTimer("forkharness/scenario/duration", nil)
)

const cleanupTimeout = 10 * time.Second

type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, s *Session) error
}

type Status int

const (
	StatusSuccess Status = iota
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	Scenario     string
	Status       Status
	FailedStep   string
	Err          error
	Duration     time.Duration
	Observations []Observation
	Warnings     []string
}

// Select returns the scenarios named in names, in the order given. An empty
// list selects all of them.
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, scenario := range all {
		byName[scenario.Name] = scenario
	}
	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		scenario, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown scenario %q", ErrConfiguration, name)
		}
		selected = append(selected, scenario)
	}
	return selected, nil
}

// Runner executes scenarios one after another against a single node, resetting
// the fork before each one.
type Runner struct {
	config  ConfigFetcher
	node    Node
	client  txutil.Backend
	store   *artifacts.Store
	signers []accounts.Signer

	// held for a whole Run; a node never serves two scenarios at once
	mutex sync.Mutex
}

func NewRunner(config ConfigFetcher, node Node, client txutil.Backend, store *artifacts.Store, signers []accounts.Signer) (*Runner, error) {
	if err := config().Validate(); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: runner needs a node", ErrConfiguration)
	}
	return &Runner{
		config:  config,
		node:    node,
		client:  client,
		store:   store,
		signers: signers,
	}, nil
}

// Run executes every scenario. A failing scenario does not stop the ones after it.
func (r *Runner) Run(ctx context.Context, scenarios ...Scenario) []Result {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		if ctx.Err() != nil {
			results = append(results, Result{
				Scenario:   scenario.Name,
				Status:     StatusFailed,
				FailedStep: "start",
				Err:        fmt.Errorf("not started: %w", ctx.Err()),
			})
			continue
		}
		results = append(results, r.runOne(ctx, scenario))
	}
	return results
}

func (r *Runner) runOne(parent context.Context, scenario Scenario) Result {
	config := r.config()
	ctx, cancel := parent, context.CancelFunc(func() {})
	if config.Scenario.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, config.Scenario.Timeout)
	}
	defer cancel()

	session := newSession(scenario.Name, config, r.node, r.client, r.store, r.signers)
	start := time.Now()
	log.Info("scenario started", "scenario", scenario.Name)
	err := session.Step(ctx, "reset", func(ctx context.Context) error {
		return r.node.Reset(ctx, config.Forking.ForkPoint())
	})
	if err == nil {
		err = scenario.Run(ctx, session)
	}
	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), cleanupTimeout)
	session.close(cleanupCtx)
	cleanupCancel()

	elapsed := time.Since(start)
	scenarioTimer.Update(elapsed)
	result := Result{
		Scenario:     scenario.Name,
		Status:       StatusSuccess,
		Duration:     elapsed,
		Observations: session.Observations(),
		Warnings:     session.Warnings(),
	}
	if err == nil {
		scenarioSuccessCounter.Inc(1)
		log.Info("scenario passed", "scenario", scenario.Name, "elapsed", elapsed)
		return result
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && parent.Err() == nil {
		scenarioTimeoutCounter.Inc(1)
		err = fmt.Errorf("%w after %v: %w", ErrTimeout, config.Scenario.Timeout, err)
	}
	scenarioFailureCounter.Inc(1)
	result.Status = StatusFailed
	result.Err = err
	result.FailedStep = session.failedStep
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		result.FailedStep = stepErr.Step
	}
	if result.FailedStep == "" {
		result.FailedStep = session.step
	}
	log.Error("scenario failed", "scenario", scenario.Name, "step", result.FailedStep, "err", err, "elapsed", elapsed)
	return result
}

// Suite is a set of scenarios bound to a runner of its own.
type Suite struct {
	Name      string
	Runner    *Runner
	Scenarios []Scenario
}

// RunIsolated runs suites concurrently. Every suite must have its own runner, and
// so its own node. Results are returned in suite order.
func RunIsolated(ctx context.Context, suites ...Suite) ([][]Result, error) {
	seen := make(map[*Runner]string, len(suites))
	for _, suite := range suites {
		if suite.Runner == nil {
			return nil, fmt.Errorf("%w: suite %s has no runner", ErrConfiguration, suite.Name)
		}
		if other, ok := seen[suite.Runner]; ok {
			return nil, fmt.Errorf("%w: suites %s and %s share a node", ErrConfiguration, other, suite.Name)
		}
		seen[suite.Runner] = suite.Name
	}
	results := make([][]Result, len(suites))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, suite := range suites {
		i, suite := i, suite
		g.Go(func() error {
			results[i] = suite.Runner.Run(groupCtx, suite.Scenarios...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, ctx.Err()
}
