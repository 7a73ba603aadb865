package searcher

import (
	"math"
	"othello/game"
)

// edge pairs a generated move with the child it leads to. The child is nil
// until the slot is built.
type edge struct {
	move  game.Move
	child *node
}

type node struct {
	position game.Position
	// player is the color whose move (or pass) produced this node, so the
	// children are moves by its opponent.
	player   game.Color
	wins     int
	playouts int
	// rootPlayouts points at the playout counter of the tree's root and is
	// shared by every node of the tree, whatever its depth.
	rootPlayouts *int
	parent       *node
	children     []edge
}

func newRoot(position game.Position, player game.Color) *node {
	n := &node{
		position: position,
		player:   player,
	}
	n.rootPlayouts = &n.playouts
	return n
}

// newChild copies the parent's position and advances it by move, played by
// the parent's opponent.
func newChild(parent *node, move game.Move) *node {
	mover := parent.player.Opponent()
	child := &node{
		position:     parent.position,
		player:       mover,
		rootPlayouts: parent.rootPlayouts,
		parent:       parent,
	}
	child.position.Play(mover, move)
	return child
}

func (n *node) isTerminal() bool {
	return n.position.IsTerminal()
}

// expand generates one level of children. It is a no-op on nodes that already
// have children and on terminal nodes.
func (n *node) expand() {
	if len(n.children) > 0 || n.isTerminal() {
		return
	}

	moves := n.position.LegalMoves(n.player.Opponent())
	if len(moves) == 0 {
		n.children = []edge{{move: game.Pass}}
	} else {
		n.children = make([]edge, len(moves))
		for i, move := range moves {
			n.children[i].move = move
		}
	}

	for i := range n.children {
		if n.children[i].child == nil {
			n.children[i].child = newChild(n, n.children[i].move)
		}
	}
}

// selectChild returns the child with the highest UCT score, keeping the first
// one generated on ties.
func (n *node) selectChild() *node {
	if len(n.children) == 0 {
		panic("cannot select a child: node has no children")
	}

	policy := newUCT(CSquared, float64(*n.rootPlayouts))
	best := n.children[0].child
	maxScore := math.Inf(-1)
	for _, e := range n.children {
		if score := policy.evaluate(e.child.wins, e.child.playouts); score > maxScore {
			maxScore = score
			best = e.child
		}
	}
	return best
}
