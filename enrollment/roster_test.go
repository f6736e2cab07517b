package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterRejectsMemberWithoutDateOfBirth(t *testing.T) {
	roster := NewRoster(singleEvent())

	err := roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", Gender: "Male"})

	assert.ErrorIs(t, err, ErrMissingDateOfBirth)
	assert.Equal(t, 0, roster.Count())
}

func TestRosterRejectsDuplicateMember(t *testing.T) {
	roster := NewRoster(doubleEvent())
	participant := Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}

	assert.NoError(t, roster.AddVerified(participant))
	err := roster.AddVerified(participant)

	assert.ErrorIs(t, err, ErrAlreadyVerified)
	assert.Equal(t, 1, roster.Count())
}

func TestSingleRosterHasOneSlot(t *testing.T) {
	roster := NewRoster(singleEvent())

	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(20), Gender: "Male"}))
	err := roster.AddNonVerified(Participant{Name: "Another", DateOfBirth: dob(21), Gender: "Male"})

	assert.ErrorIs(t, err, ErrRosterFull)
	assert.True(t, roster.CardinalitySatisfied())
}

func TestDoubleRosterNeedsBothSlots(t *testing.T) {
	roster := NewRoster(doubleEvent())
	assert.False(t, roster.CardinalitySatisfied())

	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.False(t, roster.CardinalitySatisfied())

	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	assert.True(t, roster.CardinalitySatisfied())
}

func TestToggleSlotClearsPriorData(t *testing.T) {
	roster := NewRoster(doubleEvent())
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))

	roster.SetSlot(0, Slot{Kind: NonVerifiedSlot})

	slot := roster.Slots()[0]
	assert.Equal(t, NonVerifiedSlot, slot.Kind)
	assert.Equal(t, "", slot.Participant.MemberNumber)
	assert.Equal(t, "", slot.Participant.Name)
}

func TestTeamRosterBounds(t *testing.T) {
	roster := NewRoster(teamEvent(2, 3))
	assert.False(t, roster.CardinalitySatisfied())

	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.False(t, roster.CardinalitySatisfied())

	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	assert.True(t, roster.CardinalitySatisfied())

	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Late", DateOfBirth: dob(23), Gender: "Male"}))
	assert.True(t, roster.CardinalitySatisfied())

	err := roster.AddNonVerified(Participant{Name: "Overflow", DateOfBirth: dob(24), Gender: "Male"})
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestTeamRosterRequiresNameAndDob(t *testing.T) {
	roster := NewRoster(teamEvent(1, 3))

	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", Gender: "Male"}))

	assert.Equal(t, 1, roster.Count())
	assert.False(t, roster.CardinalitySatisfied())
}

func TestTeamRemoveShrinksInOrder(t *testing.T) {
	roster := NewRoster(teamEvent(1, 5))
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M101", Name: "Arun", DateOfBirth: dob(24), Gender: "Male"}))

	roster.Remove(1)

	participants := roster.Participants()
	assert.Len(t, participants, 2)
	assert.Equal(t, "Ravi", participants[0].Name)
	assert.Equal(t, "Arun", participants[1].Name)
	assert.Len(t, roster.Verified(), 2)
	assert.Len(t, roster.NonVerified(), 0)
}

func TestFixedRemoveKeepsSlot(t *testing.T) {
	roster := NewRoster(doubleEvent())
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))

	roster.Remove(0)

	assert.Len(t, roster.Slots(), 2)
	assert.Equal(t, 1, roster.Count())

	// the freed slot is reused by the next addition
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M102", Name: "Kiran", DateOfBirth: dob(30), Gender: "Male"}))
	assert.Equal(t, VerifiedSlot, roster.Slots()[0].Kind)
	assert.Equal(t, "Kiran", roster.Slots()[0].Participant.Name)
}
