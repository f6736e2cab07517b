package service

import (
	"testing"
	"time"

	"clubdesk/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func storedEvent() *repository.Event {
	hallId := 3
	return &repository.Event{
		Id:              7,
		Name:            "Club Championship",
		EventType:       repository.TeamEvent,
		StartTime:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		HallId:          &hallId,
		Published:       true,
		MinPlayersLimit: 3,
		MaxPlayersLimit: 5,
	}
}

func storedCategory() *repository.Category {
	return &repository.Category{
		Id:             10,
		EventId:        7,
		Name:           "Open 18-35",
		StartAge:       18,
		EndAge:         35,
		Genders:        pq.StringArray{"Female"},
		MembersFees:    "150",
		NonMembersFees: "250",
	}
}

func TestEventUpdateKeepsOmittedFields(t *testing.T) {
	event := storedEvent()

	update := &EventUpdate{Name: "Winter Championship"}
	update.apply(event)

	assert.Equal(t, "Winter Championship", event.Name)
	assert.True(t, event.Published)
	assert.Equal(t, repository.TeamEvent, event.EventType)
	assert.Equal(t, 3, event.MinPlayersLimit)
	assert.Equal(t, 5, event.MaxPlayersLimit)
	assert.Equal(t, 3, *event.HallId)
	assert.False(t, event.StartTime.IsZero())
}

func TestEventUpdateUnpublishIsExplicit(t *testing.T) {
	event := storedEvent()

	// a patch without the published field leaves it alone
	update := &EventUpdate{MaxPlayersLimit: 6}
	update.apply(event)
	assert.True(t, event.Published)
	assert.Equal(t, 6, event.MaxPlayersLimit)

	// only an explicit false unpublishes
	published := false
	update = &EventUpdate{Published: &published}
	update.apply(event)
	assert.False(t, event.Published)
}

func TestCategoryUpdateKeepsAgeBracketAndGenders(t *testing.T) {
	category := storedCategory()

	update := &CategoryUpdate{Name: "Open"}
	update.apply(category)

	assert.Equal(t, "Open", category.Name)
	assert.Equal(t, 18, category.StartAge)
	assert.Equal(t, 35, category.EndAge)
	assert.Equal(t, pq.StringArray{"Female"}, category.Genders)
	assert.Equal(t, "150", category.MembersFees)
}

func TestCategoryUpdateFeeOnly(t *testing.T) {
	category := storedCategory()

	update := &CategoryUpdate{MembersFees: "175"}
	update.apply(category)

	assert.Equal(t, "175", category.MembersFees)
	assert.Equal(t, "250", category.NonMembersFees)
	assert.Equal(t, "Open 18-35", category.Name)
	assert.Equal(t, 18, category.StartAge)
	assert.Equal(t, 35, category.EndAge)
}

func TestCategoryUpdateAgeBounds(t *testing.T) {
	category := storedCategory()

	// zero is a legal bound, distinguishable from an omitted one
	startAge := 0
	endAge := 12
	update := &CategoryUpdate{StartAge: &startAge, EndAge: &endAge}
	update.apply(category)

	assert.Equal(t, 0, category.StartAge)
	assert.Equal(t, 12, category.EndAge)
	assert.Equal(t, pq.StringArray{"Female"}, category.Genders)
}

func TestCategoryUpdateGenders(t *testing.T) {
	category := storedCategory()

	// nil leaves the restriction untouched
	update := &CategoryUpdate{Name: "Girls U12"}
	update.apply(category)
	assert.Equal(t, pq.StringArray{"Female"}, category.Genders)

	// an explicit empty list clears it
	update = &CategoryUpdate{Genders: []string{}}
	update.apply(category)
	assert.Empty(t, category.Genders)
	assert.NotNil(t, category.Genders)

	update = &CategoryUpdate{Genders: []string{"Male", "Female"}}
	update.apply(category)
	assert.Equal(t, pq.StringArray{"Male", "Female"}, category.Genders)
}
