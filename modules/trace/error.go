// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/progressors/modules/term"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose}
}

type debuger struct {
	verbose bool
}

func formatDebug(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		if level == term.LevelNone {
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
			continue
		}
		_, _ = buffer.WriteString(level.Yellow("* " + s))
		_ = buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func fdbgPrint(w io.Writer, format string, args ...any) {
	_, _ = w.Write(formatDebug(term.StderrLevel, fmt.Sprintf(format, args...)))
}

func DbgPrint(format string, args ...any) {
	fdbgPrint(os.Stderr, format, args...)
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	DbgPrint(format, args...)
}

var (
	_ Debuger = &debuger{}
)
