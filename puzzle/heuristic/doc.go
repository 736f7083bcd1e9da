// Package heuristic provides the admissible distance estimators used by the
// solver, plus standalone scoring for difficulty metrics.
//
// Three estimators form a closed set, in increasing order of informedness:
//
//   - Manhattan: sum of per-tile grid distances to home. Admissible and
//     consistent; every elementary slide changes it by exactly 1.
//   - LinearConflict: Manhattan plus 2 per tile that must leave a line it
//     shares with its home because of reversed ordering. Admissible and
//     consistent; the strongest estimator with a proven bound, and the
//     solver's default.
//   - Enhanced: LinearConflict plus empirically tuned corner and edge
//     penalties. Usually sharper but without a formal admissibility proof;
//     opt in when an occasionally non-optimal answer is acceptable.
//
// Estimators are selected by Kind rather than supplied as arbitrary
// implementations: the set is small and known, so the solver enumerates it.
//
//	est, err := heuristic.New(heuristic.LinearConflict)
//	if err != nil {
//		log.Fatal(err)
//	}
//	score := est.Estimate(board)
package heuristic
