// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/antgroup/progressors/modules/term"
	"github.com/sirupsen/logrus"
)

func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf logs the message with the caller location and returns it as an error.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.Error(fn, ":", line, " ", msg)
	return errors.New(msg)
}

func EnableDebugMode() {
	logrus.SetLevel(logrus.DebugLevel)
}

type Tracker struct {
	w     io.Writer
	debug bool
	last  time.Time
}

func NewTracker(debugMode bool) *Tracker {
	return &Tracker{w: os.Stderr, debug: debugMode, last: time.Now()}
}

// StepNext reports the time elapsed since the previous step.
func (t *Tracker) StepNext(format string, a ...any) {
	if !t.debug {
		return
	}
	s := fmt.Sprintf(format, a...)
	now := time.Now()
	fmt.Fprintln(t.w, term.StderrLevel.Blue(fmt.Sprintf("* %s use time: %v", strings.Trim(s, "\n"), now.Sub(t.last))))
	t.last = now
}
