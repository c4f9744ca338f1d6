// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrReset         = errors.New("fork reset failed")
	ErrImpersonation = errors.New("impersonation failed")
	ErrUnsupported   = errors.New("method not supported by node")

	// ErrImpersonatedSend is a node refusing eth_sendTransaction from an impersonated address.
	ErrImpersonatedSend = errors.New("send as impersonated account refused")
)

const methodNotFoundCode = -32601

// isMethodNotFound reports whether the node rejected the call because it does not
// implement the method, which is how a non-forking network answers cheat RPCs.
func isMethodNotFound(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == methodNotFoundCode {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "method not found") || strings.Contains(msg, "does not exist/is not available")
}
