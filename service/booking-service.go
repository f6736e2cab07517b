package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"clubdesk/client"
	"clubdesk/config"
	"clubdesk/enrollment"
	"clubdesk/metrics"
	"clubdesk/repository"

	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// IneligibleError reports why a booking draft cannot be priced or submitted
// against the requested category. It maps to a 400 at the HTTP boundary.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return e.Reason
}

// BookingRequest carries the draft the client assembled: the chosen
// category, member numbers to verify against the registry, and manually
// entered non-member participants.
type BookingRequest struct {
	CategoryId    int
	FormData      string
	MemberNumbers []string
	NonMembers    []enrollment.Participant
}

// CategoryQuote pairs a category with its evaluation for the current
// participant set; ineligible categories carry the reason shown next to the
// disabled option.
type CategoryQuote struct {
	Category   *repository.Category
	Evaluation enrollment.Evaluation
}

type Quote struct {
	State      enrollment.State
	Categories []CategoryQuote
	Total      int
}

// BookingEvent is the envelope published to the booking-events topic.
type BookingEvent struct {
	BookingId    int                      `json:"booking_id"`
	EventId      int                      `json:"event_id"`
	EventName    string                   `json:"event_name"`
	CategoryId   int                      `json:"category_id"`
	CategoryName string                   `json:"category_name"`
	Amount       int                      `json:"amount"`
	Status       repository.BookingStatus `json:"status"`
	Timestamp    time.Time                `json:"timestamp"`
}

type BookingService struct {
	bookingRepository *repository.BookingRepository
	memberService     *MemberService
	writer            *kafka.Writer
	discord           *client.DiscordClient
}

func NewBookingService(db *gorm.DB) *BookingService {
	s := &BookingService{
		bookingRepository: repository.NewBookingRepository(db),
		memberService:     NewMemberService(db),
	}
	writer, err := config.GetBookingWriter()
	if err != nil {
		log.Printf("booking event stream disabled: %v", err)
	} else {
		s.writer = writer
	}
	discordClient, err := client.NewDiscordClient()
	if err != nil {
		log.Printf("discord booking notifications disabled: %v", err)
	} else {
		s.discord = discordClient
	}
	return s
}

func (s *BookingService) GetBookingsForEvent(eventId int) ([]*repository.Booking, error) {
	return s.bookingRepository.FindByEvent(eventId)
}

func (s *BookingService) GetBookingById(bookingId int) (*repository.Booking, error) {
	return s.bookingRepository.GetBookingById(bookingId)
}

// buildDraft verifies the requested members against the registry, places all
// participants, and selects the category. The returned draft reflects
// exactly what the readiness rules make of the request.
func (s *BookingService) buildDraft(event *repository.Event, request *BookingRequest) (*enrollment.Draft, error) {
	draft := enrollment.NewDraft(event)
	for _, memberNumber := range request.MemberNumbers {
		participant, err := s.memberService.LookupParticipant(memberNumber)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", memberNumber, err)
		}
		if err := draft.AddVerified(*participant); err != nil {
			return nil, fmt.Errorf("member %s: %w", memberNumber, err)
		}
	}
	for _, participant := range request.NonMembers {
		if err := draft.AddNonVerified(participant); err != nil {
			return nil, err
		}
	}
	if request.CategoryId != 0 {
		category := findCategory(event, request.CategoryId)
		if category == nil {
			return nil, gorm.ErrRecordNotFound
		}
		draft.SelectCategory(category)
	}
	return draft, nil
}

// QuoteBooking is the dry run behind the booking form: it classifies the
// participants, evaluates every category of the event, and prices the
// selected one if the draft is ready.
func (s *BookingService) QuoteBooking(event *repository.Event, request *BookingRequest) (*Quote, error) {
	metrics.QuoteRequestCounter.Inc()
	draft, err := s.buildDraft(event, request)
	if err != nil {
		return nil, err
	}
	quote := &Quote{
		State:      draft.State(),
		Categories: make([]CategoryQuote, 0, len(event.Categories)),
	}
	participants := draft.Roster().Participants()
	for _, category := range event.Categories {
		quote.Categories = append(quote.Categories, CategoryQuote{
			Category:   category,
			Evaluation: enrollment.Evaluate(category, participants),
		})
	}
	if draft.State() == enrollment.Ready {
		total, err := draft.Total()
		if err != nil {
			return nil, err
		}
		quote.Total = total
	}
	return quote, nil
}

func (s *BookingService) CreateBooking(event *repository.Event, request *BookingRequest) (*repository.Booking, error) {
	return s.submitBooking(event, request, nil)
}

// UpdateBooking rebuilds the draft from scratch and overwrites the stored
// snapshot; the amount is always recomputed server-side.
func (s *BookingService) UpdateBooking(event *repository.Event, bookingId int, request *BookingRequest) (*repository.Booking, error) {
	existing, err := s.bookingRepository.GetBookingById(bookingId)
	if err != nil {
		return nil, err
	}
	return s.submitBooking(event, request, existing)
}

func (s *BookingService) submitBooking(event *repository.Event, request *BookingRequest, existing *repository.Booking) (*repository.Booking, error) {
	draft, err := s.buildDraft(event, request)
	if err != nil {
		return nil, err
	}
	if draft.State() != enrollment.Ready {
		return nil, &IneligibleError{Reason: readinessReason(event, draft)}
	}

	var booking *repository.Booking
	_, err = draft.Submit(func(snapshot enrollment.Snapshot) error {
		memberData, err := json.Marshal(snapshot.Members)
		if err != nil {
			return err
		}
		nonMemberData, err := json.Marshal(snapshot.NonMembers)
		if err != nil {
			return err
		}
		booking = &repository.Booking{
			EventId:         snapshot.EventId,
			CategoryId:      snapshot.CategoryId,
			BookingFormData: request.FormData,
			MemberData:      string(memberData),
			NonMemberData:   string(nonMemberData),
			AmountPaid:      snapshot.Amount,
			Status:          repository.BookingPending,
		}
		if existing != nil {
			booking.Id = existing.Id
			booking.Status = existing.Status
			booking.CreatedAt = existing.CreatedAt
		}
		_, err = s.bookingRepository.Save(booking)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsSubmittedCounter.WithLabelValues(string(event.EventType)).Inc()
	metrics.BookingAmount.Observe(float64(booking.AmountPaid))
	s.announce(booking, event, draft.SelectedCategory())
	return booking, nil
}

func (s *BookingService) SetStatus(bookingId int, status repository.BookingStatus) error {
	return s.bookingRepository.SetStatus(bookingId, status)
}

func (s *BookingService) DeleteBooking(bookingId int) error {
	return s.bookingRepository.Delete(bookingId)
}

// announce is best-effort fan-out: kafka for the live dashboard feed,
// discord for the staff channel. Failures are logged, never surfaced to the
// booking user.
func (s *BookingService) announce(booking *repository.Booking, event *repository.Event, category *repository.Category) {
	if s.writer != nil {
		payload, err := json.Marshal(BookingEvent{
			BookingId:    booking.Id,
			EventId:      event.Id,
			EventName:    event.Name,
			CategoryId:   category.Id,
			CategoryName: category.Name,
			Amount:       booking.AmountPaid,
			Status:       booking.Status,
			Timestamp:    time.Now(),
		})
		if err == nil {
			err = s.writer.WriteMessages(context.Background(), kafka.Message{
				Key:   []byte(strconv.Itoa(booking.Id)),
				Value: payload,
			})
		}
		if err != nil {
			log.Printf("failed to publish booking event %d: %v", booking.Id, err)
		}
	}
	if s.discord != nil {
		if err := s.discord.NotifyBooking(booking, event, category); err != nil {
			log.Printf("failed to send discord notification for booking %d: %v", booking.Id, err)
		}
	}
}

func findCategory(event *repository.Event, categoryId int) *repository.Category {
	for _, category := range event.Categories {
		if category.Id == categoryId {
			return category
		}
	}
	return nil
}

func readinessReason(event *repository.Event, draft *enrollment.Draft) string {
	if draft.State() == enrollment.Incomplete {
		switch event.EventType {
		case repository.SingleEvent:
			return "Single events require exactly 1 participant"
		case repository.DoubleEvent:
			return "Double events require exactly 2 participants"
		default:
			return fmt.Sprintf("Team events require %d to %d participants with name and date of birth",
				event.MinPlayersLimit, event.MaxPlayersLimit)
		}
	}
	return "No eligible category selected"
}
