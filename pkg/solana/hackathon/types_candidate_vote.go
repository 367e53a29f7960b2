package hackathon

import "fmt"

const CandidateVoteSize = (8 + // candidate_id
	8) // vote_count

// CandidateVote is one (candidate, count) pair in a VoteTally.
type CandidateVote struct {
	CandidateId uint64
	VoteCount   uint64
}

func putCandidateVote(dst []byte, v CandidateVote, offset *int) {
	putUint64(dst, v.CandidateId, offset)
	putUint64(dst, v.VoteCount, offset)
}

func getCandidateVote(src []byte, dst *CandidateVote, offset *int) {
	getUint64(src, &dst.CandidateId, offset)
	getUint64(src, &dst.VoteCount, offset)
}

func (v CandidateVote) String() string {
	return fmt.Sprintf("CandidateVote{candidate_id=%d,vote_count=%d}", v.CandidateId, v.VoteCount)
}
