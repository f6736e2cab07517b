package repository

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Permission string

const (
	PermissionAdmin     Permission = "admin"
	PermissionFrontDesk Permission = "front_desk"
	PermissionCoach     Permission = "coach"
)

type Staff struct {
	Id          int            `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Email       string         `gorm:"uniqueIndex;not null"`
	Mobile      string         `gorm:"null"`
	Designation string         `gorm:"null"`
	Active      bool           `gorm:"not null;default:true"`
	Permissions pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) GetStaffById(staffId int) (*Staff, error) {
	var staff Staff
	result := r.DB.First(&staff, staffId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &staff, nil
}

func (r *StaffRepository) Save(staff *Staff) (*Staff, error) {
	result := r.DB.Save(staff)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save staff: %v", result.Error)
	}
	return staff, nil
}

func (r *StaffRepository) Delete(staffId int) error {
	staff, err := r.GetStaffById(staffId)
	if err != nil {
		return err
	}
	return r.DB.Delete(staff).Error
}

func (r *StaffRepository) FindAll() ([]*Staff, error) {
	var staff []*Staff
	result := r.DB.Order("id").Find(&staff)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find staff: %v", result.Error)
	}
	return staff, nil
}
