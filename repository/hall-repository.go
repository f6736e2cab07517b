package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Hall struct {
	Id         int    `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Location   string `gorm:"null"`
	Capacity   int    `gorm:"not null"`
	HourlyRate string `gorm:"null"`
}

type HallRepository struct {
	DB *gorm.DB
}

func NewHallRepository(db *gorm.DB) *HallRepository {
	return &HallRepository{DB: db}
}

func (r *HallRepository) GetHallById(hallId int) (*Hall, error) {
	var hall Hall
	result := r.DB.First(&hall, hallId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &hall, nil
}

func (r *HallRepository) Save(hall *Hall) (*Hall, error) {
	result := r.DB.Save(hall)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save hall: %v", result.Error)
	}
	return hall, nil
}

func (r *HallRepository) Delete(hallId int) error {
	hall, err := r.GetHallById(hallId)
	if err != nil {
		return err
	}
	return r.DB.Delete(hall).Error
}

func (r *HallRepository) FindAll() ([]*Hall, error) {
	var halls []*Hall
	result := r.DB.Order("id").Find(&halls)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find halls: %v", result.Error)
	}
	return halls, nil
}
