// Copyright 2024-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package genericconf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

// ToSlogLevel accepts both level names and the numeric verbosity used by geth.
func ToSlogLevel(str string) (slog.Level, error) {
	switch strings.ToLower(str) {
	case "trace", "5":
		return log.LevelTrace, nil
	case "debug", "4":
		return log.LevelDebug, nil
	case "info", "3":
		return log.LevelInfo, nil
	case "warn", "2":
		return log.LevelWarn, nil
	case "error", "1":
		return log.LevelError, nil
	case "crit", "0":
		return log.LevelCrit, nil
	default:
		return log.LevelInfo, fmt.Errorf("invalid log-level: %q", str)
	}
}

func HandlerFromLogType(logType string, output io.Writer) (slog.Handler, error) {
	if logType == "plaintext" {
		return log.NewTerminalHandler(output, false), nil
	}
	if logType == "json" {
		return log.JSONHandler(output), nil
	}
	return nil, errors.New("invalid log type")
}
