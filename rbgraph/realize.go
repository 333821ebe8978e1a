package rbgraph

// Realize applies a signed character to the graph:
//
//   - Gain (`c+`): for every species s currently in the graph, if the edge
//     (s, c) is black it is deleted, otherwise a red edge (s, c) is added.
//     The character becomes active as a side effect when at least one
//     species lacked a black edge to it (it now has ≥1 red edge); a
//     universal character instead ends with no edges at all.
//   - Lose (`c-`): permitted only when c is active and every one of its
//     remaining edges is red (no black edges left); c is deleted entirely.
//
// Returns ErrVertexNotFound if the character does not exist, or
// ErrInconsistentMove if the precondition for the requested state is not
// met. Realize does not run Closure; the reduction driver runs Closure(g)
// after each forced move or applied candidate label.
func (g *Graph) Realize(sc Signed) error {
	if !g.HasVertex(Character, sc.Name) {
		return ErrVertexNotFound
	}

	switch sc.State {
	case Gain:
		return g.realizeGain(sc.Name)
	case Lose:
		return g.realizeLose(sc.Name)
	}

	return ErrInconsistentMove
}

func (g *Graph) realizeGain(ch string) error {
	for _, sp := range g.Species() {
		if color, ok := g.EdgeColor(sp, ch); ok {
			if color == Black {
				if err := g.RemoveEdge(sp, ch); err != nil {
					return err
				}
				continue
			}
			// already red: nothing to do for this species.
			continue
		}
		if err := g.AddEdge(sp, ch, Red); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) realizeLose(ch string) error {
	if !g.IsActive(ch) {
		return ErrInconsistentMove
	}
	black, _ := g.Degree(Character, ch)
	if black > 0 {
		return ErrInconsistentMove
	}

	return g.RemoveVertex(Character, ch)
}

// Closure runs the fixpoint: repeatedly delete any character left with no
// edges at all, and delete any species left with no remaining edges, until
// neither rule applies. Every pass strictly shrinks VertexCount()+EdgeCount()
// or the fixpoint is reached.
//
// A character with no edges is exactly the state a fully-gained universal
// character ends up in: every species has a black edge to it, so
// realizeGain removes every black edge and adds no red one. A character
// gained while not universal
// ends the same realizeGain call with black == 0 but red > 0 instead — it is
// active and every remaining edge is red, which makes it eligible for an
// explicit Lose, but Closure must not delete it out from under that: doing
// so would make a character disappear without ever recording the `c-` move,
// and would make it impossible for a free species to ever find a red
// neighbor to lose. Only a character left with zero edges of either color —
// the universal-gain case — is fair game for the unconditional sweep.
func Closure(g *Graph) {
	for {
		changed := false

		for _, ch := range g.Characters() {
			black, red := g.Degree(Character, ch)
			if black == 0 && red == 0 {
				_ = g.RemoveVertex(Character, ch)
				changed = true
			}
		}
		for _, sp := range g.Species() {
			black, red := g.Degree(Species, sp)
			if black == 0 && red == 0 {
				_ = g.RemoveVertex(Species, sp)
				changed = true
			}
		}

		if !changed {
			return
		}
	}
}
