// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/forkharness/util/colors"
)

// Report writes one line per scenario followed by its observations and returns
// the number of failed scenarios.
func Report(w io.Writer, results []Result) int {
	failures := 0
	var total time.Duration
	for _, result := range results {
		total += result.Duration
		duration := result.Duration.Round(time.Millisecond)
		if result.Status == StatusSuccess {
			fmt.Fprintf(w, "%s %-24s %v\n", colors.Wrap(colors.Mint, "PASS"), result.Scenario, duration)
			log.Info("scenario report", "scenario", result.Scenario, "status", result.Status, "duration", duration)
		} else {
			failures++
			fmt.Fprintf(w, "%s %-24s %v step=%s\n", colors.Wrap(colors.Red, "FAIL"), result.Scenario, duration, result.FailedStep)
			fmt.Fprintf(w, "     %v\n", result.Err)
			log.Error("scenario report", "scenario", result.Scenario, "status", result.Status, "step", result.FailedStep, "err", result.Err, "duration", duration)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "     %s %s\n", colors.Wrap(colors.Yellow, "warning"), warning)
		}
		for _, observation := range result.Observations {
			asset := "ETH"
			if observation.Asset != (common.Address{}) {
				asset = observation.Asset.Hex()
			}
			fmt.Fprintf(w, "     %s %-32s holder=%s asset=%s value=%s\n", colors.Wrap(colors.Grey, "obs"), observation.Label, observation.Holder.Hex(), asset, observation.Value.Dec())
		}
	}
	summary := fmt.Sprintf("%d scenarios, %d passed, %d failed in %v", len(results), len(results)-failures, failures, total.Round(time.Millisecond))
	if failures > 0 {
		fmt.Fprintln(w, colors.Wrap(colors.Red, summary))
	} else {
		fmt.Fprintln(w, colors.Wrap(colors.Mint, summary))
	}
	return failures
}
