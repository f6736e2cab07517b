package service

import (
	"clubdesk/repository"

	"gorm.io/gorm"
)

type ActivityService struct {
	activityRepository *repository.ActivityRepository
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{
		activityRepository: repository.NewActivityRepository(db),
	}
}

func (s *ActivityService) GetAllActivities() ([]*repository.Activity, error) {
	return s.activityRepository.FindAll("Batches")
}

func (s *ActivityService) GetActivityById(activityId int) (*repository.Activity, error) {
	return s.activityRepository.GetActivityById(activityId, "Batches")
}

func (s *ActivityService) SaveActivity(activity *repository.Activity) (*repository.Activity, error) {
	return s.activityRepository.Save(activity)
}

func (s *ActivityService) DeleteActivity(activityId int) error {
	return s.activityRepository.Delete(activityId)
}
