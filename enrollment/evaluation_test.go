package enrollment

import (
	"testing"
	"time"

	"clubdesk/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func dob(age int) time.Time {
	return time.Date(time.Now().Year()-age, time.March, 15, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateEligible(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35, Genders: pq.StringArray{"Male"}}
	participants := []Participant{{Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}}

	evaluation := Evaluate(category, participants)

	assert.True(t, evaluation.Eligible)
	assert.Equal(t, "", evaluation.Reason)
}

func TestEvaluateAgeOutOfRange(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35, Genders: pq.StringArray{"Male"}}
	participants := []Participant{{Name: "Ravi", DateOfBirth: dob(40), Gender: "Male"}}

	evaluation := Evaluate(category, participants)

	assert.False(t, evaluation.Eligible)
	assert.Equal(t, "Age 40 not in range 18 - 35", evaluation.Reason)
}

func TestEvaluateGenderNotAllowed(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35, Genders: pq.StringArray{"Female"}}
	participants := []Participant{{Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}}

	evaluation := Evaluate(category, participants)

	assert.False(t, evaluation.Eligible)
	assert.Equal(t, "Gender Male not allowed", evaluation.Reason)
}

func TestEvaluateEmptyGenderSetAllowsEveryone(t *testing.T) {
	category := &repository.Category{StartAge: 10, EndAge: 60}
	participants := []Participant{
		{Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"},
		{Name: "Meera", DateOfBirth: dob(30), Gender: "Female"},
	}

	assert.True(t, Evaluate(category, participants).Eligible)
}

func TestEvaluateInclusiveBounds(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35}

	assert.True(t, Evaluate(category, []Participant{{DateOfBirth: dob(18), Gender: "Male"}}).Eligible)
	assert.True(t, Evaluate(category, []Participant{{DateOfBirth: dob(35), Gender: "Male"}}).Eligible)
	assert.False(t, Evaluate(category, []Participant{{DateOfBirth: dob(17), Gender: "Male"}}).Eligible)
	assert.False(t, Evaluate(category, []Participant{{DateOfBirth: dob(36), Gender: "Male"}}).Eligible)
}

func TestEvaluateAllParticipantsMustQualify(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35}
	participants := []Participant{
		{Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"},
		{Name: "Arun", DateOfBirth: dob(40), Gender: "Male"},
	}

	evaluation := Evaluate(category, participants)

	assert.False(t, evaluation.Eligible)
	assert.Equal(t, "Age 40 not in range 18 - 35", evaluation.Reason)
}

func TestEvaluateMissingDetailsIneligibleNotError(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35}

	noDob := Evaluate(category, []Participant{{Name: "Ravi", Gender: "Male"}})
	assert.False(t, noDob.Eligible)
	assert.Equal(t, "Participant details incomplete", noDob.Reason)

	noGender := Evaluate(category, []Participant{{Name: "Ravi", DateOfBirth: dob(20)}})
	assert.False(t, noGender.Eligible)
}

func TestEvaluateIdempotent(t *testing.T) {
	category := &repository.Category{StartAge: 18, EndAge: 35, Genders: pq.StringArray{"Male"}}
	participants := []Participant{{Name: "Ravi", DateOfBirth: dob(20), Gender: "Male"}}

	first := Evaluate(category, participants)
	second := Evaluate(category, participants)

	assert.Equal(t, first, second)
}

func TestEvaluateAtCalendarYearAge(t *testing.T) {
	// age is a plain year subtraction, even before the birthday
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(2006, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 20, Age(birth, now))

	category := &repository.Category{StartAge: 20, EndAge: 25}
	evaluation := EvaluateAt(category, []Participant{{DateOfBirth: birth, Gender: "Male"}}, now)
	assert.True(t, evaluation.Eligible)
}
