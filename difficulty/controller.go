package difficulty

// MinTarget is the floor of the target. Halving stops here so the
// acceptance predicate can never become unsatisfiable.
const MinTarget = 1

// Retarget halves the target when more than RetargetInterval seconds elapsed
// since the last retarget. It reports whether the target changed. At the
// floor a due retarget still moves LastUpdate but reports false.
//
// The policy is purely time based: the ledger clock is the only trusted time
// source of the verifier, the rate of accepted work is not taken into account.
func Retarget(state *State, now int64) bool {
	if now <= state.LastUpdate {
		return false
	}
	// now > LastUpdate, so the true distance is positive and below 2^64.
	if uint64(now)-uint64(state.LastUpdate) <= uint64(state.RetargetInterval) {
		return false
	}
	state.LastUpdate = now
	if state.Target.IsUint64() && state.Target.Uint64() <= MinTarget {
		return false
	}
	state.Target.Rsh(&state.Target, 1)
	return true
}

// RecordWork accounts for one accepted submission.
func RecordWork(state *State) {
	state.WorkCounter++
}
