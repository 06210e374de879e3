// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

// State is the lifecycle state of a [Client] connection.
type State int

const (
	// StateDisconnected is the initial state and the state after Disconnect.
	// No reconnect is pending.
	StateDisconnected State = iota
	// StateConnecting means a dial is in flight.
	StateConnecting
	// StateOpen means frames can be sent and received.
	StateOpen
	// StateClosed means the connection dropped and a reconnect is scheduled.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
