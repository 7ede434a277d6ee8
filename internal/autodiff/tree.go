package autodiff

import (
	"io"
	"strings"
)

// WriteTree renders the expression tree below n as indentation-prefixed
// "value=… grad=… <op>" lines, in pre-order: left operand, the node itself,
// then the right operand. Each child is indented by the width of its
// parent's line. Diagnostic only.
func WriteTree(w io.Writer, n *Node) error {
	return writeTree(w, n, 0)
}

func writeTree(w io.Writer, n *Node, indent int) error {
	opTag := ""
	if n.op != OpNull {
		opTag = n.op.String()
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString("value=")
	sb.WriteString(n.value.String())
	sb.WriteString(" grad=")
	sb.WriteString(n.grad.String())
	sb.WriteByte(' ')
	sb.WriteString(opTag)
	sb.WriteByte('\n')
	line := sb.String()

	if len(n.inputs) > 0 {
		if err := writeTree(w, n.inputs[0], len(line)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, line); err != nil {
		return err
	}
	if len(n.inputs) > 1 {
		if err := writeTree(w, n.inputs[1], len(line)); err != nil {
			return err
		}
	}
	return nil
}

// Tree returns the WriteTree rendering as a string.
func Tree(n *Node) string {
	var sb strings.Builder
	_ = WriteTree(&sb, n)
	return sb.String()
}
