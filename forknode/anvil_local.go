// Copyright 2023-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// AnvilLocal is an anvil process launched to fork an upstream node.
type AnvilLocal struct {
	config *AnvilConfig
	fork   ForkPoint
	cmd    *exec.Cmd
	done   chan struct{}
	once   sync.Once
}

func NewAnvilLocal(config *AnvilConfig, fork ForkPoint) (*AnvilLocal, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AnvilLocal{config: config, fork: fork, done: make(chan struct{})}, nil
}

func (a *AnvilLocal) URL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", a.config.Port)
}

func (a *AnvilLocal) binaryPath() (string, error) {
	if a.config.Binary != "" {
		return a.config.Binary, nil
	}
	if binaryPath, ok := os.LookupEnv("ANVIL"); ok {
		return binaryPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine user home directory")
	}
	return path.Join(home, ".foundry/bin/anvil"), nil
}

func (a *AnvilLocal) args() []string {
	args := []string{
		"--port=" + strconv.Itoa(a.config.Port),
	}
	if a.fork.URL != "" {
		args = append(args, "--fork-url="+a.fork.URL)
		if a.fork.BlockNumber != 0 {
			args = append(args, "--fork-block-number="+strconv.FormatUint(a.fork.BlockNumber, 10))
		}
	}
	return append(args, a.config.ExtraArgs...)
}

// Start launches anvil and blocks until it answers eth_chainId or the startup timeout passes.
func (a *AnvilLocal) Start(ctx context.Context) error {
	binaryPath, err := a.binaryPath()
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, binaryPath, a.args()...) // #nosec G204 -- operator supplied binary
	if outputsDir, ok := os.LookupEnv("TEST_UNDECLARED_OUTPUTS_DIR"); ok {
		stdout, err := os.Create(path.Join(outputsDir, "anvil_out.log")) // #nosec G304
		if err != nil {
			return errors.Wrap(err, "could not create anvil stdout log")
		}
		stderr, err := os.Create(path.Join(outputsDir, "anvil_err.log")) // #nosec G304
		if err != nil {
			return errors.Wrap(err, "could not create anvil stderr log")
		}
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "could not start anvil")
	}
	a.cmd = cmd
	go func() {
		_ = cmd.Wait()
		close(a.done)
	}()
	log.Info("launched anvil", "binary", binaryPath, "port", a.config.Port, "fork", a.fork)

	if err := WaitReady(ctx, a.URL(), a.config.StartupTimeout, a.done); err != nil {
		a.Stop()
		return errors.Wrap(err, "anvil did not become ready")
	}
	return nil
}

// WaitReady polls url with exponential backoff until eth_chainId succeeds.
// A close of exited aborts the wait immediately.
func WaitReady(ctx context.Context, url string, timeout time.Duration, exited <-chan struct{}) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	policy.MaxInterval = time.Second
	policy.MaxElapsedTime = timeout
	return backoff.Retry(func() error {
		select {
		case <-exited:
			return backoff.Permanent(errors.New("process exited before becoming ready"))
		default:
		}
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		client, err := rpc.DialContext(callCtx, url)
		if err != nil {
			return err
		}
		defer client.Close()
		var chainID string
		return client.CallContext(callCtx, &chainID, "eth_chainId")
	}, backoff.WithContext(policy, ctx))
}

func (a *AnvilLocal) Stop() {
	a.once.Do(func() {
		if a.cmd == nil || a.cmd.Process == nil {
			return
		}
		if err := a.cmd.Process.Kill(); err != nil {
			log.Warn("could not kill anvil process", "err", err)
		}
		select {
		case <-a.done:
		case <-time.After(5 * time.Second):
		}
	})
}
