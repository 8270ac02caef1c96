// Package cli holds pieces shared by the command-line front end: version
// information and terminal detection.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Version information.
const (
	Version   = "1.0.0"
	BuildDate = "2026-08-29"
)

// SemVersion returns the build version parsed as semver. The constant is
// fixed at compile time, so a parse failure is a build defect.
func SemVersion() *semver.Version {
	v, err := semver.NewVersion(Version)
	if err != nil {
		panic("cli: invalid build version: " + Version)
	}
	return v
}

// PrintVersion prints version and build information.
func PrintVersion(toolName string) {
	fmt.Printf("%s v%s\n", toolName, Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// ExitWithError prints an error message to stderr and exits with code 1.
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
