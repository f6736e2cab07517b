package enrollment

import (
	"testing"

	"clubdesk/repository"

	"github.com/stretchr/testify/assert"
)

func singleEvent() *repository.Event {
	return &repository.Event{Id: 1, EventType: repository.SingleEvent}
}

func doubleEvent() *repository.Event {
	return &repository.Event{Id: 2, EventType: repository.DoubleEvent}
}

func teamEvent(min int, max int) *repository.Event {
	return &repository.Event{
		Id:                      3,
		EventType:               repository.TeamEvent,
		MinPlayersLimit:         min,
		MaxPlayersLimit:         max,
		MemberTeamEventPrice:    "500",
		NonMemberTeamEventPrice: "800",
	}
}

func TestSinglePricingByVerification(t *testing.T) {
	event := singleEvent()
	category := &repository.Category{MembersFees: "150", NonMembersFees: "250"}

	roster := NewRoster(event)
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	total, err := ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 150, total)

	// toggling the slot to a non-member recomputes at the non-member fee
	roster.SetSlot(0, Slot{Kind: NonVerifiedSlot, Participant: Participant{Name: "Guest", DateOfBirth: dob(20), Gender: "Male"}})
	total, err = ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 250, total)
}

func TestDoublePricingPerParticipant(t *testing.T) {
	event := doubleEvent()
	category := &repository.Category{MembersFees: "100", NonMembersFees: "200"}

	roster := NewRoster(event)
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))

	total, err := ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 300, total)
}

func TestDoublePricingBothVerifiedIgnoresNonMemberFee(t *testing.T) {
	event := doubleEvent()
	// garbage non-member fee must not matter when both slots are members
	category := &repository.Category{MembersFees: "100", NonMembersFees: "n/a"}

	roster := NewRoster(event)
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M101", DateOfBirth: dob(21), Gender: "Male"}))

	total, err := ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 200, total)
}

func TestTeamPricingFlatRate(t *testing.T) {
	event := teamEvent(2, 5)
	category := &repository.Category{}

	roster := NewRoster(event)
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M101", Name: "Arun", DateOfBirth: dob(22), Gender: "Male"}))

	total, err := ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 500, total)

	// one non-member switches the whole team to the non-member rate
	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(25), Gender: "Male"}))
	total, err = ComputeTotal(event, category, roster)
	assert.NoError(t, err)
	assert.Equal(t, 800, total)
}

func TestEmptyRosterPricesToZero(t *testing.T) {
	event := teamEvent(2, 5)
	total, err := ComputeTotal(event, &repository.Category{}, NewRoster(event))
	assert.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestNonNumericFeeFailsLoudly(t *testing.T) {
	event := singleEvent()
	category := &repository.Category{MembersFees: "free"}

	roster := NewRoster(event)
	assert.NoError(t, roster.AddVerified(Participant{MemberNumber: "M100", DateOfBirth: dob(20), Gender: "Male"}))

	_, err := ComputeTotal(event, category, roster)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "members_fees")
}

func TestNonNumericTeamPriceFailsLoudly(t *testing.T) {
	event := teamEvent(1, 5)
	event.NonMemberTeamEventPrice = ""

	roster := NewRoster(event)
	assert.NoError(t, roster.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(25), Gender: "Male"}))

	_, err := ComputeTotal(event, &repository.Category{}, roster)
	assert.Error(t, err)
}
