package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Activity struct {
	Id          int      `gorm:"primaryKey"`
	Name        string   `gorm:"not null"`
	Description string   `gorm:"null"`
	Active      bool     `gorm:"not null;default:true"`
	Batches     []*Batch `gorm:"foreignKey:ActivityId;constraint:OnDelete:CASCADE"`
}

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) GetActivityById(activityId int, preloads ...string) (*Activity, error) {
	var activity Activity
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&activity, activityId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &activity, nil
}

func (r *ActivityRepository) Save(activity *Activity) (*Activity, error) {
	result := r.DB.Save(activity)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save activity: %v", result.Error)
	}
	return activity, nil
}

func (r *ActivityRepository) Delete(activityId int) error {
	activity, err := r.GetActivityById(activityId)
	if err != nil {
		return err
	}
	return r.DB.Delete(activity).Error
}

func (r *ActivityRepository) FindAll(preloads ...string) ([]*Activity, error) {
	var activities []*Activity
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("id").Find(&activities)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find activities: %v", result.Error)
	}
	return activities, nil
}
