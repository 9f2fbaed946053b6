// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"strings"

	"github.com/mgutz/ansi"
)

const (
	dimCode = "\x1b[2m"
)

// Styler renders text with a set of visual attributes. Apply must return
// s unchanged when a is the zero Attrs.
type Styler interface {
	Apply(s string, a Attrs) string
}

// ANSIStyler emits SGR escape sequences through mgutz/ansi.
type ANSIStyler struct{}

func (ANSIStyler) Apply(s string, a Attrs) string {
	if a.IsZero() {
		return s
	}
	var b strings.Builder
	// mgutz/ansi codes open with a reset, so dim has to follow them.
	if spec := a.Spec(); len(spec) != 0 {
		b.WriteString(ansi.ColorCode(spec))
	}
	if a.Dim {
		b.WriteString(dimCode)
	}
	b.WriteString(s)
	b.WriteString(ansi.Reset)
	return b.String()
}

// PlainStyler drops every attribute. Use it when the sink is not a
// colour-capable terminal.
type PlainStyler struct{}

func (PlainStyler) Apply(s string, _ Attrs) string {
	return s
}

var (
	_ Styler = ANSIStyler{}
	_ Styler = PlainStyler{}
)
