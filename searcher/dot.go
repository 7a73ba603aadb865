package searcher

import (
	"fmt"
	"io"
	"othello/game"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "mcts"

// WriteDOT renders the search tree down to depth levels below the root as a
// Graphviz digraph. Root children carry the merged statistics of all trees,
// deeper levels come from the first tree only.
func (r Result) WriteDOT(w io.Writer, depth int) error {
	if r.root == nil {
		return errors.New("result has no search tree")
	}

	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return errors.Wrap(err, "failed to name graph")
	}
	if err := g.SetDir(true); err != nil {
		return errors.Wrap(err, "failed to direct graph")
	}

	d := dotter{graph: g}
	if _, err := d.add(r.root, game.Pass, depth); err != nil {
		return err
	}

	if _, err := io.WriteString(w, g.String()); err != nil {
		return errors.Wrap(err, "failed to write graph")
	}
	return nil
}

type dotter struct {
	graph *gographviz.Graph
	count int
}

// add writes n and its subtree, returning the name given to n.
func (d *dotter) add(n *node, move game.Move, depth int) (string, error) {
	name := fmt.Sprintf("n%d", d.count)
	d.count++

	label := fmt.Sprintf("%v %v\n%d/%d", n.player, move, n.wins, n.playouts)
	if n.parent == nil {
		label = fmt.Sprintf("root %v\n%d/%d", n.player, n.wins, n.playouts)
	}
	attrs := map[string]string{"label": fmt.Sprintf("%q", label)}
	if err := d.graph.AddNode(graphName, name, attrs); err != nil {
		return "", errors.Wrapf(err, "failed to add node %s", name)
	}

	if depth <= 0 {
		return name, nil
	}
	for _, e := range n.children {
		if e.child == nil {
			continue
		}
		child, err := d.add(e.child, e.move, depth-1)
		if err != nil {
			return "", err
		}
		if err := d.graph.AddEdge(name, child, true, nil); err != nil {
			return "", errors.Wrapf(err, "failed to add edge %s -> %s", name, child)
		}
	}
	return name, nil
}
