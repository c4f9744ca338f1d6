// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package colors

import "testing"

func TestUncolor(t *testing.T) {
	got := Uncolor(Wrap(Red, "scenario   failed"))
	if got != "scenario failed" {
		t.Fatalf("unexpected uncolored text %q", got)
	}
}
