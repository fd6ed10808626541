// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"fmt"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/cshim"
	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
)

// Backend is a named way of calling the stub.
type Backend struct {
	Name string
	Ops  mockzmq.Ops
}

// Backend names.
const (
	BackendGo  = "go"
	BackendCgo = "cgo"
)

// Backends returns the backends available in this build. The cgo backend is
// present only when the binary was built with cgo enabled.
func Backends() []Backend {
	out := []Backend{{Name: BackendGo, Ops: mockzmq.Direct{}}}
	if cshim.Available {
		out = append(out, Backend{Name: BackendCgo, Ops: cshim.Ops{}})
	}
	return out
}

// SelectBackends returns the named backends in the order given, or every
// available backend when names is empty.
func SelectBackends(names []string) ([]Backend, error) {
	available := Backends()
	if len(names) == 0 {
		return available, nil
	}

	out := make([]Backend, 0, len(names))
	for _, name := range names {
		found := false
		for _, b := range available {
			if b.Name == name {
				out = append(out, b)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, backendNames(available))
		}
	}
	return out, nil
}

func backendNames(bs []Backend) []string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name
	}
	return names
}
