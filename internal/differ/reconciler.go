package differ

import "iter"

// Row pairs a left and a right line for one line of output.
// Either side may be a placeholder with empty content.
type Row struct {
	Left  Line
	Right Line
}

// DispatchedSet records the left line indices that already produced a row.
// It lives for a single comparison.
type DispatchedSet map[int]struct{}

// NewDispatchedSet creates an empty set
func NewDispatchedSet() DispatchedSet {
	return make(DispatchedSet)
}

// dispatch marks index as emitted. It returns false when the index was already emitted.
func (s DispatchedSet) dispatch(index int) bool {
	if _, seen := s[index]; seen {
		return false
	}
	s[index] = struct{}{}
	return true
}

// Reconciler turns an edit script into rows, recovering same-index pairs for
// entries the aligner reported on one side only.
type Reconciler struct{}

// NewReconciler creates a new reconciler
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile yields at most one row per left line index, in edit script order.
// Rows whose left index is already in dispatched are skipped.
func (rc *Reconciler) Reconcile(script iter.Seq[EditEntry], left, right []Line, dispatched DispatchedSet) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for entry := range script {
			row := rc.pair(entry, left, right)
			if !dispatched.dispatch(row.Left.Index) {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

// pair builds the row for a single entry.
func (rc *Reconciler) pair(entry EditEntry, left, right []Line) Row {
	switch entry.Kind {
	case EntryOnlyLeft:
		counterpart, ok := lineAt(right, entry.Left.Index)
		if !ok {
			counterpart = placeholder(entry.Left.Index)
		}
		return Row{Left: entry.Left, Right: counterpart}
	case EntryOnlyRight:
		counterpart, ok := lineAt(left, entry.Right.Index)
		if !ok {
			counterpart = placeholder(entry.Right.Index)
		}
		return Row{Left: counterpart, Right: entry.Right}
	default:
		return Row{Left: entry.Left, Right: entry.Right}
	}
}
