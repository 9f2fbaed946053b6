// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antgroup/progressors/modules/term"
)

const (
	DefaultTotal      = 10
	DefaultDisplayLen = 40
)

var (
	stdout io.Writer = os.Stdout
)

// Flusher is implemented by sinks that buffer, such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Bar is a single-line progress bar. It is owned by one goroutine and
// redrawn on demand by its caller:
//
//	bar := progress.New(progress.ASCII(), progress.WithTotal(400))
//	for i := uint64(0); i <= 400; i++ {
//		_ = bar.Erase()
//		bar.SetValue(i)
//		_ = bar.Draw()
//	}
type Bar struct {
	style   Style
	styler  Styler
	current uint64
	total   uint64
	width   int
}

type Option func(*Bar)

func WithStyler(s Styler) Option {
	return func(b *Bar) {
		if s != nil {
			b.styler = s
		}
	}
}

func WithTotal(total uint64) Option {
	return func(b *Bar) {
		b.total = total
	}
}

func WithDisplayLen(width int) Option {
	return func(b *Bar) {
		b.width = width
	}
}

// New creates a bar with its own copy of style.
func New(style Style, opts ...Option) *Bar {
	b := &Bar{
		style:  style.Clone(),
		styler: ANSIStyler{},
		total:  DefaultTotal,
		width:  DefaultDisplayLen,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Bar) Style() Style {
	return b.style.Clone()
}

func (b *Bar) Total() uint64 {
	return b.total
}

func (b *Bar) SetTotal(total uint64) {
	b.total = total
}

func (b *Bar) Value() uint64 {
	return b.current
}

// SetValue does not clamp against the total.
func (b *Bar) SetValue(v uint64) {
	b.current = v
}

// Add advances the value by n, saturating instead of wrapping.
func (b *Bar) Add(n uint64) {
	if b.current > ^uint64(0)-n {
		b.current = ^uint64(0)
		return
	}
	b.current += n
}

func (b *Bar) DisplayLen() int {
	return b.width
}

func (b *Bar) SetDisplayLen(width int) {
	b.width = width
}

func (b *Bar) Proportion() float64 {
	return b.Layout().Proportion
}

func (b *Bar) Layout() Layout {
	return ComputeLayout(b.current, b.total, b.width, len(b.style.Fill))
}

// Erase writes a carriage return to stdout.
func (b *Bar) Erase() error {
	return b.EraseTo(stdout)
}

// EraseTo returns the cursor of w to the start of the line.
func (b *Bar) EraseTo(w io.Writer) error {
	if _, err := io.WriteString(w, term.EraseLine); err != nil {
		return fmt.Errorf("erase progress bar: %w", err)
	}
	return nil
}

// Draw writes the bar to stdout.
func (b *Bar) Draw() error {
	return b.DrawTo(bufio.NewWriter(stdout))
}

// DrawTo writes the composed line to w in a single write, then flushes
// w once if it is a Flusher.
func (b *Bar) DrawTo(w io.Writer) error {
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("draw progress bar: %w", err)
	}
	if f, ok := w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush progress bar: %w", err)
		}
	}
	return nil
}

// String returns the line DrawTo would write.
func (b *Bar) String() string {
	l := b.Layout()
	var sb strings.Builder
	b.writeRun(&sb, b.style.LeftCap, 1)
	b.writeRun(&sb, b.style.Done, l.Done)
	if l.HasPartial() {
		b.writeRun(&sb, b.style.Fill[l.Partial], 1)
	}
	b.writeRun(&sb, b.style.Empty, l.Empty)
	b.writeRun(&sb, b.style.RightCap, 1)
	switch b.style.ValueDisplay {
	case ValueCurrent:
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(b.current, 10))
	case ValueCurrentAndTotal:
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(b.current, 10))
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(b.total, 10))
	case ValuePercentage:
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(l.Percent, 10))
		sb.WriteString(" %")
	default:
	}
	return sb.String()
}

// writeRun styles a run of identical glyphs as one unit.
func (b *Bar) writeRun(sb *strings.Builder, g Glyph, n int) {
	if n <= 0 {
		return
	}
	s := strings.Repeat(string(g.Rune), n)
	if !g.Styled() {
		sb.WriteString(s)
		return
	}
	sb.WriteString(b.styler.Apply(s, g.Attrs))
}
