package sudoku

import "fmt"

// Eliminate performs one sweep over all cells in row-major order,
// removing each resolved cell's value from the candidate sets of its
// peers. Peers already resolved to a singleton are left alone, so a
// locked-in cell is never shrunk to empty. One sweep is not a fixpoint:
// callers wanting full propagation keep sweeping until the return value
// reports no change.
func (pg *PossibilityGrid) Eliminate() bool {
	changed := false
	for i, s := range pg {
		v, ok := s.Sole()
		if !ok {
			continue
		}
		for _, p := range peers[i] {
			if pg[p].Count() > 1 && pg[p].Has(v) {
				pg[p] = pg[p].Without(v)
				changed = true
			}
		}
	}
	return changed
}

// Check scans for a contradiction after an elimination pass. A cell
// with no candidates left is one form; the other is two resolved peers
// locked to the same digit, which is how an unsatisfiable puzzle
// surfaces under Eliminate's skip-singleton rule (a singleton is never
// shrunk, so it clashes instead of emptying).
func (pg *PossibilityGrid) Check() error {
	for i, s := range pg {
		if s == 0 {
			return fmt.Errorf("%w: no candidates left at %d:%d",
				ErrContradiction, i/Size, i%Size)
		}
		v, ok := s.Sole()
		if !ok {
			continue
		}
		for _, p := range peers[i] {
			if p > i && pg[p] == SetOf(v) {
				return fmt.Errorf("%w: cells %d:%d and %d:%d both forced to %d",
					ErrContradiction, i/Size, i%Size, p/Size, p%Size, v)
			}
		}
	}
	return nil
}
