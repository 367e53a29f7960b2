package hackathon

// ActivityPhase is the lifecycle state of an Activity. Phases advance
// strictly forward, each reachable only from its immediate predecessor.
type ActivityPhase uint8

const (
	ActivityPhaseDraft ActivityPhase = iota
	ActivityPhaseRegistration
	ActivityPhaseCheckIn
	ActivityPhaseTeamFormation
	ActivityPhaseSubmission
	ActivityPhaseVoting
	ActivityPhaseEnded
)

func putActivityPhase(dst []byte, v ActivityPhase, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getActivityPhase(src []byte, dst *ActivityPhase, offset *int) {
	*dst = ActivityPhase(src[*offset])
	*offset += 1
}

func (p ActivityPhase) Valid() bool {
	return p <= ActivityPhaseEnded
}

func (p ActivityPhase) String() string {
	switch p {
	case ActivityPhaseDraft:
		return "draft"
	case ActivityPhaseRegistration:
		return "registration"
	case ActivityPhaseCheckIn:
		return "check_in"
	case ActivityPhaseTeamFormation:
		return "team_formation"
	case ActivityPhaseSubmission:
		return "submission"
	case ActivityPhaseVoting:
		return "voting"
	case ActivityPhaseEnded:
		return "ended"
	}
	return "unknown"
}
