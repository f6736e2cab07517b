package enrollment

import (
	"errors"
	"testing"

	"clubdesk/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func openCategory() *repository.Category {
	return &repository.Category{Id: 10, Name: "Open", StartAge: 10, EndAge: 60, MembersFees: "100", NonMembersFees: "200"}
}

func TestDraftStartsIncomplete(t *testing.T) {
	draft := NewDraft(doubleEvent())
	assert.Equal(t, Incomplete, draft.State())
}

func TestDraftAdvancesToAwaitingCategory(t *testing.T) {
	draft := NewDraft(singleEvent())

	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))

	assert.Equal(t, AwaitingCategory, draft.State())
}

func TestDraftReadyAfterEligibleCategory(t *testing.T) {
	draft := NewDraft(singleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))

	evaluation := draft.SelectCategory(openCategory())

	assert.True(t, evaluation.Eligible)
	assert.Equal(t, Ready, draft.State())
}

func TestIneligibleCategoryDoesNotStick(t *testing.T) {
	draft := NewDraft(singleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(40), Gender: "Male"}))

	narrow := &repository.Category{Id: 11, StartAge: 18, EndAge: 35}
	evaluation := draft.SelectCategory(narrow)

	assert.False(t, evaluation.Eligible)
	assert.Equal(t, "Age 40 not in range 18 - 35", evaluation.Reason)
	assert.Nil(t, draft.SelectedCategory())
	assert.Equal(t, AwaitingCategory, draft.State())
}

func TestMutationRegressesStateAndClearsCategory(t *testing.T) {
	draft := NewDraft(teamEvent(1, 3))
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))

	men := &repository.Category{Id: 12, StartAge: 18, EndAge: 35, Genders: pq.StringArray{"Male"}}
	assert.True(t, draft.SelectCategory(men).Eligible)
	assert.Equal(t, Ready, draft.State())

	// a participant the category no longer covers drops the selection
	assert.NoError(t, draft.AddNonVerified(Participant{Name: "Meera", DateOfBirth: dob(25), Gender: "Female"}))

	assert.Nil(t, draft.SelectedCategory())
	assert.Equal(t, AwaitingCategory, draft.State())
}

func TestRemovalRegressesToIncomplete(t *testing.T) {
	draft := NewDraft(doubleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, draft.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	assert.True(t, draft.SelectCategory(openCategory()).Eligible)
	assert.Equal(t, Ready, draft.State())

	draft.Remove(1)

	assert.Equal(t, Incomplete, draft.State())
	// the category was still eligible for the remaining participant
	assert.NotNil(t, draft.SelectedCategory())
}

func TestDraftTotal(t *testing.T) {
	draft := NewDraft(doubleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, draft.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))

	_, err := draft.Total()
	assert.ErrorIs(t, err, ErrNoCategorySelected)

	draft.SelectCategory(openCategory())
	total, err := draft.Total()
	assert.NoError(t, err)
	assert.Equal(t, 300, total)
}

func TestSubmitRequiresReady(t *testing.T) {
	draft := NewDraft(singleEvent())

	_, err := draft.Submit(func(Snapshot) error { return nil })

	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSubmitFreezesSnapshot(t *testing.T) {
	draft := NewDraft(doubleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	assert.NoError(t, draft.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	draft.SelectCategory(openCategory())

	var persisted Snapshot
	snapshot, err := draft.Submit(func(s Snapshot) error {
		persisted = s
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, Submitted, draft.State())
	assert.Equal(t, persisted, *snapshot)
	assert.Equal(t, 10, snapshot.CategoryId)
	assert.Equal(t, 300, snapshot.Amount)
	assert.Len(t, snapshot.Members, 1)
	assert.Len(t, snapshot.NonMembers, 1)

	_, err = draft.Submit(func(Snapshot) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitFailureStaysReady(t *testing.T) {
	draft := NewDraft(singleEvent())
	assert.NoError(t, draft.AddVerified(Participant{MemberNumber: "M100", Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}))
	draft.SelectCategory(openCategory())

	serverErr := errors.New("persistence unavailable")
	_, err := draft.Submit(func(Snapshot) error { return serverErr })

	assert.ErrorIs(t, err, serverErr)
	assert.Equal(t, Ready, draft.State())
}

func TestSubmittedDraftIgnoresMutations(t *testing.T) {
	draft := NewDraft(singleEvent())
	assert.NoError(t, draft.AddNonVerified(Participant{Name: "Guest", DateOfBirth: dob(22), Gender: "Male"}))
	draft.SelectCategory(openCategory())
	_, err := draft.Submit(func(Snapshot) error { return nil })
	assert.NoError(t, err)

	assert.ErrorIs(t, draft.AddVerified(Participant{MemberNumber: "M100", DateOfBirth: dob(20), Gender: "Male"}), ErrAlreadySubmitted)
	draft.Remove(0)
	assert.Equal(t, Submitted, draft.State())
	assert.Equal(t, 1, draft.Roster().Count())
}
