package searcher

import (
	"othello/game"
	"time"

	"golang.org/x/exp/rand"
)

// worker owns one search tree for the whole search window. Nothing in it is
// shared with other workers until the trees are merged.
type worker struct {
	id       int
	root     *node
	rng      *rand.Rand
	episodes int
}

func newWorker(id int, position game.Position, player game.Color, seed uint64) *worker {
	root := newRoot(position, player)
	root.expand()
	return &worker{
		id:   id,
		root: root,
		rng:  rand.New(rand.NewSource(seed + uint64(id))),
	}
}

// run repeats episodes until the duration since start or the episode budget
// runs out. A zero value disables the corresponding limit.
func (w *worker) run(start time.Time, duration time.Duration, episodes int) {
	for {
		if duration > 0 && time.Since(start) >= duration {
			return
		}
		if episodes > 0 && w.episodes >= episodes {
			return
		}
		w.simulate()
	}
}

func (w *worker) simulate() {
	leaf := traverse(w.root)
	if !leaf.isTerminal() && leaf.playouts != 0 {
		leaf.expand()
		leaf = leaf.children[0].child
	}
	result := rollout(leaf, w.rng)
	backup(leaf, result)
	w.episodes++
}

// traverse descends by UCT until it reaches a node without children.
func traverse(root *node) *node {
	target := root
	for len(target.children) > 0 {
		target = target.selectChild()
	}
	return target
}

// rollout plays uniformly random moves on a scratch copy of the node's
// position until neither side can move, and scores the final position for
// the player who moved into the node.
func rollout(n *node, rng *rand.Rand) int {
	position := n.position
	mover := n.player.Opponent()
	for !position.IsTerminal() {
		if moves := position.LegalMoves(mover); len(moves) > 0 {
			position.Play(mover, moves[rng.Intn(len(moves))])
		}
		mover = mover.Opponent()
	}

	switch score := position.Score(n.player); {
	case score > 0:
		return Win
	case score < 0:
		return Loss
	default:
		return Draw
	}
}

// backup adds the result to every node up to the root, negating it at each
// level since consecutive levels belong to opposing players.
func backup(n *node, result int) {
	for node := n; node != nil; node = node.parent {
		node.wins += result
		node.playouts++
		result = -result
	}
}
