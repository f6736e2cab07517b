package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type EventType string

const (
	SingleEvent EventType = "SINGLE"
	DoubleEvent EventType = "DOUBLE"
	TeamEvent   EventType = "TEAM"
)

type Event struct {
	Id        int       `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	EventType EventType `gorm:"not null;type:clubdesk.event_type"`
	StartTime time.Time `gorm:"null"`
	EndTime   time.Time `gorm:"null"`
	HallId    *int      `gorm:"null"`
	Hall      *Hall     `gorm:"foreignKey:HallId"`
	Published bool      `gorm:"not null;default:false"`

	// team events only
	MinPlayersLimit int `gorm:"not null;default:0"`
	MaxPlayersLimit int `gorm:"not null;default:0"`
	// flat team prices; fees are stored as strings and parsed at pricing time
	MemberTeamEventPrice    string `gorm:"null"`
	NonMemberTeamEventPrice string `gorm:"null"`

	Categories []*Category `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int, preloads ...string) (*Event, error) {
	var event Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save event: %v", result.Error)
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId int) error {
	event, err := r.GetEventById(eventId)
	if err != nil {
		return err
	}
	return r.DB.Delete(event).Error
}

func (r *EventRepository) FindAll(preloads ...string) ([]*Event, error) {
	var events []*Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("id").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find events: %v", result.Error)
	}
	return events, nil
}
