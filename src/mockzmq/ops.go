// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mockzmq

// Ops is the set of stub operations behind one calling convention.
//
// Implementations must have the same observable behavior as [Send],
// [Receive] and [Transform]; they differ only in how the call reaches the
// loop (direct Go call, cgo, and so on).
type Ops interface {
	Send(data []byte) int64
	Receive(buf []byte) int64
	Transform(data []byte)
}

// Direct calls the package functions without crossing any boundary.
type Direct struct{}

var _ Ops = Direct{}

// Send calls [Send].
func (Direct) Send(data []byte) int64 { return Send(data) }

// Receive calls [Receive].
func (Direct) Receive(buf []byte) int64 { return Receive(buf) }

// Transform calls [Transform].
func (Direct) Transform(data []byte) { Transform(data) }
