package enrollment

import (
	"clubdesk/repository"
)

// Roster classifies the participants on a booking draft and enforces the
// event's cardinality rule: exactly one slot for single events, two fixed
// slots for doubles, a growable list bounded by the event's player limits
// for team events.
type Roster struct {
	eventType  repository.EventType
	minPlayers int
	maxPlayers int
	fixed      bool
	slots      []Slot
}

func NewRoster(event *repository.Event) *Roster {
	switch event.EventType {
	case repository.SingleEvent:
		return &Roster{
			eventType:  event.EventType,
			minPlayers: 1,
			maxPlayers: 1,
			fixed:      true,
			slots:      make([]Slot, 1),
		}
	case repository.DoubleEvent:
		return &Roster{
			eventType:  event.EventType,
			minPlayers: 2,
			maxPlayers: 2,
			fixed:      true,
			slots:      make([]Slot, 2),
		}
	default:
		return &Roster{
			eventType:  event.EventType,
			minPlayers: event.MinPlayersLimit,
			maxPlayers: event.MaxPlayersLimit,
			slots:      make([]Slot, 0),
		}
	}
}

// AddVerified places a registry-confirmed member on the roster. Members
// without a recorded date of birth are rejected up front because the
// eligibility evaluator cannot bracket them. A member already on the roster,
// matched by member number, is rejected rather than duplicated.
func (r *Roster) AddVerified(participant Participant) error {
	if participant.DateOfBirth.IsZero() {
		return ErrMissingDateOfBirth
	}
	for _, slot := range r.slots {
		if slot.Kind == VerifiedSlot && slot.Participant.MemberNumber == participant.MemberNumber {
			return ErrAlreadyVerified
		}
	}
	return r.place(Slot{Kind: VerifiedSlot, Participant: participant})
}

func (r *Roster) AddNonVerified(participant Participant) error {
	return r.place(Slot{Kind: NonVerifiedSlot, Participant: participant})
}

func (r *Roster) place(slot Slot) error {
	for i := range r.slots {
		if r.slots[i].Kind == EmptySlot {
			r.slots[i] = slot
			return nil
		}
	}
	if r.fixed || len(r.slots) >= r.maxPlayers {
		return ErrRosterFull
	}
	r.slots = append(r.slots, slot)
	return nil
}

// SetSlot replaces the slot at position i outright. Toggling a fixed slot
// between member and non-member goes through here so that the prior
// participant's data never leaks into the new entry.
func (r *Roster) SetSlot(i int, slot Slot) {
	if i < 0 || i >= len(r.slots) {
		return
	}
	r.slots[i] = slot
}

// Remove drops the participant at position i. Fixed rosters keep the slot
// and empty it; team rosters shrink.
func (r *Roster) Remove(i int) {
	if i < 0 || i >= len(r.slots) {
		return
	}
	if r.fixed {
		r.slots[i] = Slot{}
		return
	}
	r.slots = append(r.slots[:i], r.slots[i+1:]...)
}

func (r *Roster) Count() int {
	count := 0
	for _, slot := range r.slots {
		if slot.Kind != EmptySlot {
			count++
		}
	}
	return count
}

func (r *Roster) Slots() []Slot {
	return r.slots
}

// Participants returns the filled slots in order, dropping empties.
func (r *Roster) Participants() []Participant {
	participants := make([]Participant, 0, len(r.slots))
	for _, slot := range r.slots {
		if slot.Kind != EmptySlot {
			participants = append(participants, slot.Participant)
		}
	}
	return participants
}

func (r *Roster) Verified() []Participant {
	return r.byKind(VerifiedSlot)
}

func (r *Roster) NonVerified() []Participant {
	return r.byKind(NonVerifiedSlot)
}

func (r *Roster) byKind(kind SlotKind) []Participant {
	participants := make([]Participant, 0, len(r.slots))
	for _, slot := range r.slots {
		if slot.Kind == kind {
			participants = append(participants, slot.Participant)
		}
	}
	return participants
}

// CardinalitySatisfied reports whether the roster meets the event's player
// count rule. Team rosters additionally require a name and date of birth on
// every entry before the draft may advance.
func (r *Roster) CardinalitySatisfied() bool {
	participants := r.Participants()
	if len(participants) < r.minPlayers || len(participants) > r.maxPlayers {
		return false
	}
	if r.eventType == repository.TeamEvent {
		for _, participant := range participants {
			if participant.Name == "" || participant.DateOfBirth.IsZero() {
				return false
			}
		}
	}
	return true
}
