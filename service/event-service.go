package service

import (
	"fmt"
	"time"

	"clubdesk/repository"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepository    *repository.EventRepository
	categoryRepository *repository.CategoryRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository:    repository.NewEventRepository(db),
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

// EventUpdate is a partial event patch. Omitted fields keep their stored
// values: strings and times are skipped when zero, Published and HallId use
// pointers so that false/absent can be told apart. Player limits of 0 count
// as omitted since a 0-player team event is meaningless.
type EventUpdate struct {
	Name                    string
	EventType               repository.EventType
	StartTime               time.Time
	EndTime                 time.Time
	HallId                  *int
	Published               *bool
	MinPlayersLimit         int
	MaxPlayersLimit         int
	MemberTeamEventPrice    string
	NonMemberTeamEventPrice string
}

func (u *EventUpdate) apply(event *repository.Event) {
	if u.Name != "" {
		event.Name = u.Name
	}
	if u.EventType != "" {
		event.EventType = u.EventType
	}
	if !u.StartTime.IsZero() {
		event.StartTime = u.StartTime
	}
	if !u.EndTime.IsZero() {
		event.EndTime = u.EndTime
	}
	if u.HallId != nil {
		event.HallId = u.HallId
	}
	if u.Published != nil {
		event.Published = *u.Published
	}
	if u.MinPlayersLimit != 0 {
		event.MinPlayersLimit = u.MinPlayersLimit
	}
	if u.MaxPlayersLimit != 0 {
		event.MaxPlayersLimit = u.MaxPlayersLimit
	}
	if u.MemberTeamEventPrice != "" {
		event.MemberTeamEventPrice = u.MemberTeamEventPrice
	}
	if u.NonMemberTeamEventPrice != "" {
		event.NonMemberTeamEventPrice = u.NonMemberTeamEventPrice
	}
}

// CategoryUpdate is a partial category patch. The age bounds use pointers
// because 0 is a legal bound; Genders nil leaves the restriction untouched
// while an empty non-nil slice clears it.
type CategoryUpdate struct {
	Name           string
	StartAge       *int
	EndAge         *int
	Genders        []string
	Distance       string
	MembersFees    string
	NonMembersFees string
}

func (u *CategoryUpdate) apply(category *repository.Category) {
	if u.Name != "" {
		category.Name = u.Name
	}
	if u.StartAge != nil {
		category.StartAge = *u.StartAge
	}
	if u.EndAge != nil {
		category.EndAge = *u.EndAge
	}
	if u.Genders != nil {
		category.Genders = pq.StringArray(u.Genders)
	}
	if u.Distance != "" {
		category.Distance = u.Distance
	}
	if u.MembersFees != "" {
		category.MembersFees = u.MembersFees
	}
	if u.NonMembersFees != "" {
		category.NonMembersFees = u.NonMembersFees
	}
}

func (s *EventService) GetAllEvents() ([]*repository.Event, error) {
	return s.eventRepository.FindAll("Categories", "Hall")
}

func (s *EventService) GetEventById(eventId int, preloads ...string) (*repository.Event, error) {
	return s.eventRepository.GetEventById(eventId, preloads...)
}

func (s *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	return s.eventRepository.Save(event)
}

func (s *EventService) UpdateEvent(eventId int, update *EventUpdate) (*repository.Event, error) {
	event, err := s.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	update.apply(event)
	return s.eventRepository.Save(event)
}

func (s *EventService) DeleteEvent(eventId int) error {
	return s.eventRepository.Delete(eventId)
}

func (s *EventService) AddCategory(eventId int, category *repository.Category) (*repository.Category, error) {
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	category.EventId = eventId
	return s.categoryRepository.Save(category)
}

func (s *EventService) UpdateCategory(eventId int, categoryId int, update *CategoryUpdate) (*repository.Category, error) {
	category, err := s.categoryRepository.GetCategoryById(categoryId)
	if err != nil {
		return nil, err
	}
	if category.EventId != eventId {
		return nil, fmt.Errorf("category %d does not belong to event %d", categoryId, eventId)
	}
	update.apply(category)
	return s.categoryRepository.Save(category)
}

func (s *EventService) DeleteCategory(eventId int, categoryId int) error {
	category, err := s.categoryRepository.GetCategoryById(categoryId)
	if err != nil {
		return err
	}
	if category.EventId != eventId {
		return fmt.Errorf("category %d does not belong to event %d", categoryId, eventId)
	}
	return s.categoryRepository.Delete(categoryId)
}
