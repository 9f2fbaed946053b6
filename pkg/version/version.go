// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var (
	version     = "0.1.0"
	buildCommit = "none"
	buildTime   = "unknown"
)

// GetVersionString returns a standard version header
func GetVersionString() string {
	return fmt.Sprintf("%s %v (%s), built %v, %s/%s", filepath.Base(os.Args[0]), version, buildCommit, buildTime, runtime.GOOS, runtime.GOARCH)
}

func GetBuildCommit() string {
	return buildCommit
}

// GetVersion returns the semver compatible version number
func GetVersion() string {
	return version
}

// GetBuildTime returns the time at which the build took place
func GetBuildTime() string {
	return buildTime
}
