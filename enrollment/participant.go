package enrollment

import (
	"errors"
	"time"
)

var (
	ErrAlreadyVerified    = errors.New("participant is already verified")
	ErrMissingDateOfBirth = errors.New("member record has no date of birth")
	ErrRosterFull         = errors.New("no free participant slots")
	ErrNoCategorySelected = errors.New("no category selected")
	ErrNotReady           = errors.New("draft is not ready for submission")
	ErrAlreadySubmitted   = errors.New("draft has already been submitted")
)

// Participant is a single entrant on a booking draft. Verified participants
// are copied from the member registry, non-verified ones are entered ad-hoc.
type Participant struct {
	MemberNumber string    `json:"member_number,omitempty"`
	Name         string    `json:"name"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile,omitempty"`
	Email        string    `json:"email,omitempty"`
	ChssNumber   string    `json:"chss_number,omitempty"`
}

type SlotKind int

const (
	EmptySlot SlotKind = iota
	VerifiedSlot
	NonVerifiedSlot
)

// Slot is one positional entry on a roster. A single ordered slice of slots
// replaces the three parallel participant lists the booking form used to
// keep in lockstep.
type Slot struct {
	Kind        SlotKind
	Participant Participant
}
