// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !cgo

package cshim

import "github.com/H0llyW00dzZ/mockzmq/src/mockzmq"

// Available reports whether the C backend is compiled in.
const Available = false

// Send falls back to [mockzmq.Send].
func Send(data []byte) int64 { return mockzmq.Send(data) }

// Receive falls back to [mockzmq.Receive].
func Receive(buf []byte) int64 { return mockzmq.Receive(buf) }

// Transform falls back to [mockzmq.Transform].
func Transform(data []byte) { mockzmq.Transform(data) }

// Ops is the [mockzmq.Ops] implementation backed by this package.
type Ops struct{}

var _ mockzmq.Ops = Ops{}

// Send calls [Send].
func (Ops) Send(data []byte) int64 { return Send(data) }

// Receive calls [Receive].
func (Ops) Receive(buf []byte) int64 { return Receive(buf) }

// Transform calls [Transform].
func (Ops) Transform(data []byte) { Transform(data) }
