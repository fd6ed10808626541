// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"runtime"
	"time"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/cshim"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/H0llyW00dzZ/mockzmq/src/version"
)

// Environment describes the machine and build a report was produced on.
type Environment struct {
	Timestamp    string  `json:"timestamp" yaml:"timestamp"`
	Version      string  `json:"version" yaml:"version"`
	GoVersion    string  `json:"goVersion" yaml:"goVersion"`
	GOOS         string  `json:"goos" yaml:"goos"`
	GOARCH       string  `json:"goarch" yaml:"goarch"`
	NumCPU       int     `json:"numCPU" yaml:"numCPU"`
	GOMAXPROCS   int     `json:"gomaxprocs" yaml:"gomaxprocs"`
	Cgo          bool    `json:"cgo" yaml:"cgo"`
	NativeMemory bool    `json:"nativeMemory" yaml:"nativeMemory"`
	Library      string  `json:"library" yaml:"library"`
	HeapAllocMB  float64 `json:"heapAllocMB" yaml:"heapAllocMB"`
	HeapSysMB    float64 `json:"heapSysMB" yaml:"heapSysMB"`
	NumGC        uint32  `json:"numGC" yaml:"numGC"`
}

// CollectEnvironment gathers the current environment.
func CollectEnvironment() Environment {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Environment{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Version:      version.Version,
		GoVersion:    runtime.Version(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		GOMAXPROCS:   runtime.GOMAXPROCS(0),
		Cgo:          cshim.Available,
		NativeMemory: probeNativeMemory(),
		Library:      posix.SharedLibraryName("mockzmq", runtime.GOOS),
		HeapAllocMB:  float64(memStats.HeapAlloc) / (1024 * 1024),
		HeapSysMB:    float64(memStats.HeapSys) / (1024 * 1024),
		NumGC:        memStats.NumGC,
	}
}

// probeNativeMemory reports whether segments really live outside the Go heap.
func probeNativeMemory() bool {
	seg, err := native.Alloc(1)
	if err != nil {
		return false
	}
	defer seg.Free()
	return seg.Native()
}
