package game

// LegalMoves returns the cells where player can place a disc, in row-major order.
func (p *Position) LegalMoves(player Color) []Move {
	var moves []Move
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if p.Board.Get(i, j) != Empty {
				continue
			}
			m := Move{Row: i, Col: j}
			for _, d := range directions {
				if p.Board.flanks(m, d, player) {
					moves = append(moves, m)
					break
				}
			}
		}
	}
	return moves
}

// IsLegal reports whether player may place a disc at m.
func (p *Position) IsLegal(player Color, m Move) bool {
	if !m.inBounds() || p.Board.Get(m.Row, m.Col) != Empty {
		return false
	}
	for _, d := range directions {
		if p.Board.flanks(m, d, player) {
			return true
		}
	}
	return false
}

// Play places a disc of player at m and turns over every flanked run, keeping
// the disc tally in step. The move must be legal; a Pass leaves the position
// unchanged. Tree expansion and rollouts both advance positions through here.
func (p *Position) Play(player Color, m Move) {
	if m.IsPass() {
		return
	}
	for _, d := range directions {
		q := m.add(d)
		for q.inBounds() && p.Board.Get(q.Row, q.Col) != Empty {
			if p.Board.Get(q.Row, q.Col) == player {
				for q = q.sub(d); q != m; q = q.sub(d) {
					p.Board.Toggle(q.Row, q.Col)
					p.Discs[player]++
					p.Discs[player.Opponent()]--
				}
				break
			}
			q = q.add(d)
		}
	}
	p.Board.Set(m.Row, m.Col, player)
	p.Discs[Empty]--
	p.Discs[player]++
}

// flanks reports whether a disc of player at m would sandwich a non-empty run
// of opponent discs in direction d.
func (b *Board) flanks(m Move, d direction, player Color) bool {
	q := m.add(d)
	if !q.inBounds() || b.Get(q.Row, q.Col) != player.Opponent() {
		return false
	}
	for q = q.add(d); q.inBounds(); q = q.add(d) {
		switch b.Get(q.Row, q.Col) {
		case Empty:
			return false
		case player:
			return true
		}
	}
	return false
}

// IsTerminal reports whether no empty cell borders a run of one color that is
// closed by the other color, i.e. neither side has a legal move.
func (b *Board) IsTerminal() bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b.Get(i, j) != Empty {
				continue
			}
			for _, d := range directions {
				q := Move{Row: i, Col: j}.add(d)
				if !q.inBounds() {
					continue
				}
				first := b.Get(q.Row, q.Col)
				for q.inBounds() && b.Get(q.Row, q.Col) != Empty {
					if b.Get(q.Row, q.Col) != first {
						return false
					}
					q = q.add(d)
				}
			}
		}
	}
	return true
}
