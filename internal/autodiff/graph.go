package autodiff

import "github.com/steep-ml/steep/internal/tensor"

// buildTopo appends the subgraph reachable from n to topo in dependency-first
// order: a node's operands are visited before the node itself, so every node
// appears after all of its operands. The visited set is keyed on node
// identity and scoped to a single traversal.
func buildTopo(n *Node, visited map[*Node]struct{}, topo *[]*Node) {
	if _, ok := visited[n]; ok {
		return
	}
	visited[n] = struct{}{}
	for _, input := range n.inputs {
		buildTopo(input, visited, topo)
	}
	*topo = append(*topo, n)
}

// Backward computes gradients for every node reachable from root.
//
// The root gradient is seeded with ones (the derivative of the output with
// respect to itself), then each node's backward rule runs in reverse
// topological order, accumulating into its operands' gradients. Gradients
// persist across calls; use ZeroAllGrads between unrelated passes.
func Backward(root *Node) error {
	var topo []*Node
	buildTopo(root, make(map[*Node]struct{}), &topo)

	root.grad = tensor.Ones(root.value.Shape())
	for i := len(topo) - 1; i >= 0; i-- {
		if err := topo[i].backwardOnce(); err != nil {
			return err
		}
	}
	return nil
}

// Parameters returns every node reachable from root in topological order,
// operands before dependents. Callers typically filter for leaves to iterate
// trainable parameters.
func Parameters(root *Node) []*Node {
	var topo []*Node
	buildTopo(root, make(map[*Node]struct{}), &topo)
	return topo
}

// ZeroAllGrads resets the gradient of every node reachable from root.
// Required before each new Backward call to avoid accumulating gradients
// across unrelated passes.
func ZeroAllGrads(root *Node) {
	for _, n := range Parameters(root) {
		n.ZeroGrad()
	}
}
