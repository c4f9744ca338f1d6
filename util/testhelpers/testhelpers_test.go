// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testhelpers

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/log"
)

func TestLogHandlerRecords(t *testing.T) {
	var out bytes.Buffer
	handler := newLogHandler(t, &out)
	logger := log.NewLogger(handler).With("scenario", "supply-eth")
	logger.Info("step finished", "step", "mint")
	if !handler.WasLogged("step fin") {
		t.Error("expected message to be recorded")
	}
	if handler.WasLogged("never said") {
		t.Error("unexpected match")
	}
	if !bytes.Contains(out.Bytes(), []byte("supply-eth")) {
		t.Errorf("expected attrs to reach the stream handler, got %q", out.String())
	}
}

func TestPseudoRandomIsStable(t *testing.T) {
	first := NewPseudoRandomDataSource(t, 7)
	second := NewPseudoRandomDataSource(t, 7)
	if first.GetAddress() != second.GetAddress() {
		t.Error("expected identical sequences for identical salt")
	}
	if first.GetWei(10).Sign() <= 0 {
		t.Error("expected positive amount")
	}
}
