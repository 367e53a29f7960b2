package hackathon

import "fmt"

// Program errors use the Anchor custom error code space, which starts at
// 6000 and assigns codes in declaration order.
const customErrorCodeOffset = 6000

type ProgramError struct {
	Code    uint32
	Name    string
	Message string
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func newProgramError(ordinal uint32, name, message string) *ProgramError {
	return &ProgramError{
		Code:    customErrorCodeOffset + ordinal,
		Name:    name,
		Message: message,
	}
}

var (
	ErrTitleTooLong                  = newProgramError(0, "TitleTooLong", "title must be at most 128 bytes")
	ErrCannotDeleteAfterRegistration = newProgramError(1, "CannotDeleteAfterRegistration", "activity cannot be deleted after registration has started")
	ErrCheckInListTooLong            = newProgramError(2, "CheckInListTooLong", "check-in list must be at most 200 attendees")
	ErrInvalidPhaseForCheckInUpload  = newProgramError(3, "InvalidPhaseForCheckInUpload", "only check-in phase allows uploading check-in list")
	ErrNotInCheckInList              = newProgramError(4, "NotInCheckInList", "voter is not in check-in list")
	ErrInvalidPhaseForVote           = newProgramError(5, "InvalidPhaseForVote", "only voting phase allows vote/revoke")
	ErrTallyTooLong                  = newProgramError(6, "TallyTooLong", "tally must be at most 100 entries")
	ErrInvalidPhaseForTally          = newProgramError(7, "InvalidPhaseForTally", "only voting phase allows uploading tally")
	ErrTallyLengthMismatch           = newProgramError(8, "TallyLengthMismatch", "candidate ids and vote counts length mismatch")
	ErrConfigAlreadyInitialized      = newProgramError(9, "ConfigAlreadyInitialized", "sponsor config already initialized")
	ErrNotConfigAuthority            = newProgramError(10, "NotConfigAuthority", "only config authority can approve or reject")
	ErrApplicationNotPending         = newProgramError(11, "ApplicationNotPending", "application is not in pending status")
	ErrZeroAmount                    = newProgramError(12, "ZeroAmount", "sponsor application amount must be greater than zero")
	ErrSponsorWalletMismatch         = newProgramError(13, "SponsorWalletMismatch", "sponsor wallet account does not match application")
	ErrInvalidTreasury               = newProgramError(14, "InvalidTreasury", "invalid treasury pda")
	ErrInvalidPhaseTransition        = newProgramError(15, "InvalidPhaseTransition", "activity is not in the required phase for this transition")
	ErrAdminWalletMismatch           = newProgramError(16, "AdminWalletMismatch", "admin wallet account does not match config")
)
