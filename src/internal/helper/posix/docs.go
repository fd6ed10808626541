// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - SharedLibraryName: Returns the platform file name of a shared library
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Byte buffer stub and interop overhead harness",
//	}
//
//	lib := posix.SharedLibraryName("mockzmq", runtime.GOOS) // "libmockzmq.so" on Linux
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
