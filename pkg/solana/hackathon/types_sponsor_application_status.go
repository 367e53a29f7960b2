package hackathon

// SponsorApplicationStatus is the decision state of a SponsorApplication.
// Pending is the only non-terminal status; Approved and Rejected are
// one-shot and final.
type SponsorApplicationStatus uint8

const (
	SponsorApplicationStatusPending SponsorApplicationStatus = iota
	SponsorApplicationStatusApproved
	SponsorApplicationStatusRejected
)

func putSponsorApplicationStatus(dst []byte, v SponsorApplicationStatus, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getSponsorApplicationStatus(src []byte, dst *SponsorApplicationStatus, offset *int) {
	*dst = SponsorApplicationStatus(src[*offset])
	*offset += 1
}

func (s SponsorApplicationStatus) Valid() bool {
	return s <= SponsorApplicationStatusRejected
}

func (s SponsorApplicationStatus) String() string {
	switch s {
	case SponsorApplicationStatusPending:
		return "pending"
	case SponsorApplicationStatusApproved:
		return "approved"
	case SponsorApplicationStatusRejected:
		return "rejected"
	}
	return "unknown"
}
