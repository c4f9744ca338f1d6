// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package rpcclient

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/forkharness/util/testhelpers"
)

func TestLogArgs(t *testing.T) {
	t.Parallel()

	str := logArgs(0, 1, 2, 3, "hello, world")
	if str != "[1, 2, 3, \"hello, world\"]" {
		Fail(t, "unexpected logs limit 0 got:", str)
	}

	str = logArgs(100, 1, 2, 3, "hello, world")
	if str != "[1, 2, 3, \"hello, world\"]" {
		Fail(t, "unexpected logs limit 100 got:", str)
	}

	str = logArgs(6, 1, 2, 3, "hello, world")
	if str != "[1, 2, 3, \"h..d\"]" {
		Fail(t, "unexpected logs limit 6 got:", str)
	}
}

type testAPI struct {
	stuckCalls  int64
	failedCalls int64
}

func (t *testAPI) StuckAtFirst(ctx context.Context) error {
	stuckRemaining := atomic.AddInt64(&t.stuckCalls, -1) + 1
	if stuckRemaining <= 0 {
		return nil
	}
	<-ctx.Done()
	return errors.New("error")
}

func (t *testAPI) FailAtFirst(ctx context.Context) error {
	failedRemaining := atomic.AddInt64(&t.failedCalls, -1) + 1
	if failedRemaining <= 0 {
		return nil
	}
	return errors.New("error")
}

func createTestClient(t *testing.T, stuckOrFailed int64, config ClientConfigFetcher) *RpcClient {
	server := rpc.NewServer()
	Require(t, server.RegisterName("test", &testAPI{stuckOrFailed, stuckOrFailed}))
	t.Cleanup(server.Stop)
	client := NewRpcClient(config)
	client.Attach(rpc.DialInProc(server))
	t.Cleanup(client.Close)
	return client
}

func TestRpcClientRetry(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*2)
	defer cancel()

	configFetcher := func() *ClientConfig {
		return &ClientConfig{
			Timeout: time.Second,
			Retries: 2,
		}
	}

	clientGood := createTestClient(t, 0, configFetcher)
	Require(t, clientGood.CallContext(ctx, nil, "test_failAtFirst"))
	Require(t, clientGood.CallContext(ctx, nil, "test_stuckAtFirst"))

	clientBad := createTestClient(t, 1000, configFetcher)
	if err := clientBad.CallContext(ctx, nil, "test_failAtFirst"); err == nil {
		Fail(t, "no error for failAtFirst")
	}
	if err := clientBad.CallContext(ctx, nil, "test_stuckAtFirst"); err == nil {
		Fail(t, "no error for stuckAtFirst")
	}

	clientRetry := createTestClient(t, 1, configFetcher)
	if err := clientRetry.CallContext(ctx, nil, "test_failAtFirst"); err == nil {
		Fail(t, "no error for failAtFirst")
	}
	Require(t, clientRetry.CallContext(ctx, nil, "test_stuckAtFirst"))
}

func TestRpcClientRetryErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := createTestClient(t, 1, func() *ClientConfig {
		return &ClientConfig{Retries: 1, RetryErrors: "^error$"}
	})
	Require(t, client.CallContext(ctx, nil, "test_failAtFirst"))
}

func TestStartRequiresURL(t *testing.T) {
	client := NewRpcClient(func() *ClientConfig { return &ClientConfig{} })
	if err := client.Start(context.Background()); err == nil {
		Fail(t, "expected error without url")
	}
	if err := client.CallContext(context.Background(), nil, "eth_chainId"); err == nil {
		Fail(t, "expected not connected error")
	}
}

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}
