package repository

import (
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB
var enumQueries = []string{
	`CREATE TYPE clubdesk.event_type AS ENUM ('SINGLE', 'DOUBLE', 'TEAM')`,
	`CREATE TYPE clubdesk.booking_status AS ENUM ('PENDING', 'CONFIRMED', 'CANCELLED')`,
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=clubdesk",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "clubdesk.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err != nil {
			return err
		}
		db.Exec(`CREATE SCHEMA IF NOT EXISTS clubdesk`)
		for _, query := range enumQueries {
			x := db.Exec(query)
			if x.Error != nil {
				if strings.Contains(x.Error.Error(), "already exists") {
					continue
				}
			}
		}
		return db.AutoMigrate(
			&Member{},
			&Staff{},
			&Activity{},
			&Batch{},
			&Hall{},
			&Event{},
			&Category{},
			&Booking{},
		)

	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}

	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM clubdesk.bookings")
	db.Exec("DELETE FROM clubdesk.categories")
	db.Exec("DELETE FROM clubdesk.events")
	db.Exec("DELETE FROM clubdesk.members")
}

func SetUp() *Event {
	event := &Event{
		Name:      "Annual Swim Meet",
		EventType: SingleEvent,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(8 * time.Hour),
		Published: true,
		Categories: []*Category{
			{
				Name:           "Open 18-35",
				StartAge:       18,
				EndAge:         35,
				Genders:        pq.StringArray{},
				MembersFees:    "150",
				NonMembersFees: "250",
			},
			{
				Name:           "Girls U12 50m",
				StartAge:       8,
				EndAge:         12,
				Genders:        pq.StringArray{"Female"},
				MembersFees:    "100",
				NonMembersFees: "200",
			},
		},
	}
	if err := db.Save(event).Error; err != nil {
		panic(err)
	}
	return event
}

func TestBookingRoundTrip(t *testing.T) {
	defer TearDown()
	event := SetUp()
	repo := NewBookingRepository(db)

	booking, err := repo.Save(&Booking{
		EventId:    event.Id,
		CategoryId: event.Categories[0].Id,
		MemberData: `[{"member_number":"M-1024","name":"Asha"}]`,
		AmountPaid: 150,
		Status:     BookingPending,
	})
	assert.Nil(t, err)
	assert.NotZero(t, booking.Id)

	fetched, err := repo.GetBookingById(booking.Id)
	assert.Nil(t, err)
	assert.Equal(t, event.Id, fetched.EventId)
	assert.Equal(t, event.Categories[0].Id, fetched.CategoryId)
	assert.Equal(t, 150, fetched.AmountPaid)
	assert.Equal(t, BookingPending, fetched.Status)
	assert.Equal(t, "Open 18-35", fetched.Category.Name)
	assert.Equal(t, "Annual Swim Meet", fetched.Event.Name)
}

func TestBookingSetStatus(t *testing.T) {
	defer TearDown()
	event := SetUp()
	repo := NewBookingRepository(db)

	booking, err := repo.Save(&Booking{
		EventId:    event.Id,
		CategoryId: event.Categories[0].Id,
		AmountPaid: 150,
		Status:     BookingPending,
	})
	assert.Nil(t, err)

	err = repo.SetStatus(booking.Id, BookingConfirmed)
	assert.Nil(t, err)

	fetched, err := repo.GetBookingById(booking.Id)
	assert.Nil(t, err)
	assert.Equal(t, BookingConfirmed, fetched.Status)
}

func TestBookingSetStatusMissing(t *testing.T) {
	defer TearDown()
	SetUp()
	repo := NewBookingRepository(db)

	err := repo.SetStatus(99999, BookingCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingFindByEvent(t *testing.T) {
	defer TearDown()
	event := SetUp()
	repo := NewBookingRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Save(&Booking{
			EventId:    event.Id,
			CategoryId: event.Categories[0].Id,
			AmountPaid: 150 * (i + 1),
			Status:     BookingPending,
		})
		assert.Nil(t, err)
	}

	bookings, err := repo.FindByEvent(event.Id)
	assert.Nil(t, err)
	assert.Len(t, bookings, 3)
	// ordered by id
	assert.Equal(t, 150, bookings[0].AmountPaid)
	assert.Equal(t, 450, bookings[2].AmountPaid)

	bookings, err = repo.FindByEvent(event.Id + 1)
	assert.Nil(t, err)
	assert.Empty(t, bookings)
}

func TestEventDeleteCascadesCategories(t *testing.T) {
	defer TearDown()
	event := SetUp()
	eventRepo := NewEventRepository(db)
	categoryRepo := NewCategoryRepository(db)

	categories, err := categoryRepo.FindByEvent(event.Id)
	assert.Nil(t, err)
	assert.Len(t, categories, 2)

	err = eventRepo.Delete(event.Id)
	assert.Nil(t, err)

	categories, err = categoryRepo.FindByEvent(event.Id)
	assert.Nil(t, err)
	assert.Empty(t, categories)
}

func TestMemberLookupByNumber(t *testing.T) {
	defer TearDown()
	repo := NewMemberRepository(db)

	parent, err := repo.Save(&Member{
		MemberNumber: "M-2001",
		Name:         "Ravi",
		DateOfBirth:  time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:       "Male",
		Active:       true,
	})
	assert.Nil(t, err)

	_, err = repo.Save(&Member{
		MemberNumber: "F-2001-1",
		Name:         "Meera",
		DateOfBirth:  time.Date(2014, 2, 10, 0, 0, 0, 0, time.UTC),
		Gender:       "Female",
		Active:       true,
		ParentId:     &parent.Id,
	})
	assert.Nil(t, err)

	fetched, err := repo.GetMemberByNumber("M-2001")
	assert.Nil(t, err)
	assert.Equal(t, "Ravi", fetched.Name)
	assert.Len(t, fetched.FamilyMembers, 1)
	assert.Equal(t, "F-2001-1", fetched.FamilyMembers[0].MemberNumber)

	// family members resolve directly by their own number
	family, err := repo.GetMemberByNumber("F-2001-1")
	assert.Nil(t, err)
	assert.Equal(t, "Meera", family.Name)

	_, err = repo.GetMemberByNumber("M-9999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// primary listing excludes family members
	primaries, err := repo.FindAll(50, 0)
	assert.Nil(t, err)
	assert.Len(t, primaries, 1)
}
