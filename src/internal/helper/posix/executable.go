// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is the executable name used when os.Args[0] is unavailable.
const FallbackName = "mockzmq"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe extension
// to provide a clean name for CLI usage strings.
//
// This ensures consistent behavior across all operating systems:
//   - Linux/macOS: "mockzmq" from "/usr/local/bin/mockzmq"
//   - Windows: "mockzmq" from "C:\bin\mockzmq.exe"
//   - Fallback: [FallbackName] if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := filepath.Base(os.Args[0])

	// A Windows path seen on Unix (or the reverse) is not split by filepath.Base.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// SharedLibraryName returns the file name the platform loader expects for a
// shared library called base:
//   - Linux and other ELF systems: "lib<base>.so"
//   - macOS: "lib<base>.dylib"
//   - Windows: "<base>.dll"
func SharedLibraryName(base, goos string) string {
	switch goos {
	case "windows":
		return base + ".dll"
	case "darwin", "ios":
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}
