package searcher

import (
	"fmt"
	"math"
	"othello/game"
)

// merge adds the root children statistics of every other tree into the first
// tree and returns its root. Trees grown from the same position generate the
// same children in the same order, so children are matched by index.
func merge(roots []*node) *node {
	if len(roots) == 0 {
		panic("cannot merge: no trees")
	}

	base := roots[0]
	for t, other := range roots[1:] {
		if len(other.children) != len(base.children) {
			panic(fmt.Sprintf("cannot merge tree %d: %d root children, want %d", t+1, len(other.children), len(base.children)))
		}
		for i, e := range other.children {
			target := base.children[i]
			if e.move != target.move {
				panic(fmt.Sprintf("cannot merge tree %d: child %d is %v, want %v", t+1, i, e.move, target.move))
			}
			target.child.wins += e.child.wins
			target.child.playouts += e.child.playouts
		}
	}
	return base
}

// decide picks the root child with the highest win rate, keeping the first
// one generated on ties. A root without children yields a pass.
func decide(root *node) Result {
	result := Result{
		Move:  game.Pass,
		Stats: make([]MoveStat, len(root.children)),
		root:  root,
	}

	maxRate := math.Inf(-1)
	for i, e := range root.children {
		stat := MoveStat{Move: e.move, Wins: e.child.wins, Playouts: e.child.playouts}
		result.Stats[i] = stat
		if rate := stat.WinRate(); rate > maxRate {
			maxRate = rate
			result.Move = e.move
		}
	}
	return result
}
