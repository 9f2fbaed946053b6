// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"os"
	"strings"

	"github.com/antgroup/progressors/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	ENV_PROGRESSORS_FORCE_TRUECOLOR = "PROGRESSORS_FORCE_TRUECOLOR"
)

type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

var (
	StderrLevel Level
	StdoutLevel Level
)

func (v Level) String() string {
	switch v {
	case Level256:
		return "256"
	case Level16M:
		return "truecolor"
	default:
	}
	return "none"
}

// DetectLevel reports the colour level advertised by the environment,
// regardless of whether the output is a terminal.
func DetectLevel(getenv func(string) string) Level {
	if strengthen.SimpleAtob(getenv(ENV_PROGRESSORS_FORCE_TRUECOLOR), false) {
		return Level16M
	}
	if len(getenv("NO_COLOR")) != 0 {
		return LevelNone
	}
	if len(getenv("WT_SESSION")) != 0 {
		return Level16M
	}
	colorTermEnv := getenv("COLORTERM")
	termEnv := getenv("TERM")
	if termEnv == "dumb" {
		return LevelNone
	}
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") || len(termEnv) != 0 {
		return Level256
	}
	return LevelNone
}

func init() {
	level := DetectLevel(os.Getenv)
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = level
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutLevel = level
	}
}

// IsTerminal also accepts cygwin/msys2 ptys, which are pipes to the
// native console API.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
