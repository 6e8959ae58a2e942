package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// defaultLineWidth is used whenever w is not an interactive terminal.
const defaultLineWidth = 100

type palette struct {
	rng, leaf, inner, pending *color.Color
}

func makePalette(colored bool) palette {
	p := palette{
		rng:     color.New(color.FgBlue),
		leaf:    color.New(color.FgGreen),
		inner:   color.New(color.Bold),
		pending: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.rng, p.leaf, p.inner, p.pending} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes an indented rendering of a segment tree to w, one node per
// line in pre-order. If w is an interactive terminal, output is colored and
// lines are clipped to the terminal width.
func Print(w io.Writer, t Inspectable) error {
	colored, width := terminalProperties(w)
	p := makePalette(colored)
	var err error
	t.EachNode(func(info NodeInfo) bool {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", info.Depth))
		p.rng.Fprintf(&b, "[%d,%d]", info.Left, info.Right)
		b.WriteByte(' ')
		value := clip(info.Value, width-info.Depth*2-16)
		if info.IsLeaf() {
			p.leaf.Fprint(&b, value)
		} else {
			p.inner.Fprint(&b, value)
		}
		if info.Dirty {
			b.WriteByte(' ')
			p.pending.Fprintf(&b, "Δ%s", clip(info.Pending, 16))
		}
		b.WriteByte('\n')
		_, err = io.WriteString(w, b.String())
		return err == nil
	})
	if err != nil {
		tracer().Errorf("segment tree print: %v", err)
	}
	return err
}

func terminalProperties(w io.Writer) (colored bool, width int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, defaultLineWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 20 {
		width = defaultLineWidth
	}
	tracer().Debugf("segment tree print: terminal with %d columns", width)
	return true, width
}

func clip(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return fmt.Sprintf("%s…", string(r[:n-1]))
}
