package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Batch struct {
	Id         int    `gorm:"primaryKey"`
	ActivityId int    `gorm:"not null"`
	Name       string `gorm:"not null"`
	CoachId    *int   `gorm:"null"`
	Coach      *Staff `gorm:"foreignKey:CoachId"`
	Timing     string `gorm:"null"`
	Capacity   int    `gorm:"not null"`
	Fees       string `gorm:"null"`
}

type BatchRepository struct {
	DB *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{DB: db}
}

func (r *BatchRepository) GetBatchById(batchId int) (*Batch, error) {
	var batch Batch
	result := r.DB.Preload("Coach").First(&batch, batchId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &batch, nil
}

func (r *BatchRepository) Save(batch *Batch) (*Batch, error) {
	result := r.DB.Save(batch)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save batch: %v", result.Error)
	}
	return batch, nil
}

func (r *BatchRepository) Delete(batchId int) error {
	batch, err := r.GetBatchById(batchId)
	if err != nil {
		return err
	}
	return r.DB.Delete(batch).Error
}

func (r *BatchRepository) FindByActivity(activityId int) ([]*Batch, error) {
	var batches []*Batch
	result := r.DB.Preload("Coach").Where("activity_id = ?", activityId).Order("id").Find(&batches)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find batches: %v", result.Error)
	}
	return batches, nil
}
