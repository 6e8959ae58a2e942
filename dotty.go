package segtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a segment tree in Graphviz DOT
// format (for debugging purposes). Dirty nodes of lazy trees are highlighted
// and labeled with their pending delta.
func ToDot(w io.Writer, t Inspectable) error {
	var nodelist, edgelist strings.Builder
	t.EachNode(func(info NodeInfo) bool {
		label := fmt.Sprintf("[%d,%d]\\n%s", info.Left, info.Right, dotEscape(info.Value))
		if info.Dirty {
			label += fmt.Sprintf("\\nΔ %s", dotEscape(info.Pending))
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", info.ID, label, nodeDotStyles(info))
		for _, child := range info.Children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", info.ID, child)
		}
		return true
	})
	if _, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		tracer().Errorf("segment tree DOT: %s", err.Error())
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()+edgelist.String()+"}\n"); err != nil {
		tracer().Errorf("segment tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles(info NodeInfo) string {
	s := ",style=filled"
	if info.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	if info.Dirty {
		s += ",fillcolor=\"#FF9944\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
