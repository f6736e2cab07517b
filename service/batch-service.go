package service

import (
	"clubdesk/repository"

	"gorm.io/gorm"
)

type BatchService struct {
	batchRepository    *repository.BatchRepository
	activityRepository *repository.ActivityRepository
}

func NewBatchService(db *gorm.DB) *BatchService {
	return &BatchService{
		batchRepository:    repository.NewBatchRepository(db),
		activityRepository: repository.NewActivityRepository(db),
	}
}

func (s *BatchService) GetBatchesForActivity(activityId int) ([]*repository.Batch, error) {
	return s.batchRepository.FindByActivity(activityId)
}

func (s *BatchService) GetBatchById(batchId int) (*repository.Batch, error) {
	return s.batchRepository.GetBatchById(batchId)
}

func (s *BatchService) CreateBatch(activityId int, batch *repository.Batch) (*repository.Batch, error) {
	if _, err := s.activityRepository.GetActivityById(activityId); err != nil {
		return nil, err
	}
	batch.ActivityId = activityId
	return s.batchRepository.Save(batch)
}

func (s *BatchService) UpdateBatch(batchId int, update *repository.Batch) (*repository.Batch, error) {
	batch, err := s.batchRepository.GetBatchById(batchId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		batch.Name = update.Name
	}
	if update.CoachId != nil {
		batch.CoachId = update.CoachId
	}
	if update.Timing != "" {
		batch.Timing = update.Timing
	}
	if update.Capacity != 0 {
		batch.Capacity = update.Capacity
	}
	if update.Fees != "" {
		batch.Fees = update.Fees
	}
	return s.batchRepository.Save(batch)
}

func (s *BatchService) DeleteBatch(batchId int) error {
	return s.batchRepository.Delete(batchId)
}
