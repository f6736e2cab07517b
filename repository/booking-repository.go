package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	Id         int       `gorm:"primaryKey"`
	EventId    int       `gorm:"not null"`
	Event      *Event    `gorm:"foreignKey:EventId"`
	CategoryId int       `gorm:"not null"`
	Category   *Category `gorm:"foreignKey:CategoryId"`
	// frozen draft snapshots
	BookingFormData string        `gorm:"type:jsonb;null"`
	MemberData      string        `gorm:"type:jsonb;not null;default:'[]'"`
	NonMemberData   string        `gorm:"type:jsonb;not null;default:'[]'"`
	AmountPaid      int           `gorm:"not null"`
	Status          BookingStatus `gorm:"not null;type:clubdesk.booking_status;default:'PENDING'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) GetBookingById(bookingId int) (*Booking, error) {
	var booking Booking
	result := r.DB.Preload("Category").Preload("Event").First(&booking, bookingId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &booking, nil
}

func (r *BookingRepository) Save(booking *Booking) (*Booking, error) {
	result := r.DB.Save(booking)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save booking: %v", result.Error)
	}
	return booking, nil
}

func (r *BookingRepository) SetStatus(bookingId int, status BookingStatus) error {
	result := r.DB.Model(&Booking{}).Where("id = ?", bookingId).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(bookingId int) error {
	booking, err := r.GetBookingById(bookingId)
	if err != nil {
		return err
	}
	return r.DB.Delete(booking).Error
}

func (r *BookingRepository) FindByEvent(eventId int) ([]*Booking, error) {
	var bookings []*Booking
	result := r.DB.Preload("Category").Where("event_id = ?", eventId).Order("id").Find(&bookings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find bookings: %v", result.Error)
	}
	return bookings, nil
}
