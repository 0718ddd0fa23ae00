// Package result provides the fallible-result container used by every
// boundary operation, plus the manual-lifetime storage cell backing it.
//
// # Results
//
// A Result holds either a success value or one owned structured error:
//
//	r := env.FindClass("java/lang/Object")
//	if e := r.Err(); e != nil {
//	    return e
//	}
//	cls := r.Value()
//
// Failures are move-only: Take transfers error ownership and leaves the
// source in the default (empty) state, so a diagnostic payload always has
// exactly one owner. The default state is reachable (the zero value, and
// the residue of a move) and reports neither IsOK nor IsErr.
//
// # Cells
//
// Cell is explicit zero-or-one storage that does not require T to have a
// meaningful zero value in use: Construct replaces, Destruct clears and
// runs an optional Dropper hook, and teardown never double-drops.
package result
