package service

import (
	"clubdesk/repository"

	"gorm.io/gorm"
)

type HallService struct {
	hallRepository *repository.HallRepository
}

func NewHallService(db *gorm.DB) *HallService {
	return &HallService{
		hallRepository: repository.NewHallRepository(db),
	}
}

func (s *HallService) GetAllHalls() ([]*repository.Hall, error) {
	return s.hallRepository.FindAll()
}

func (s *HallService) GetHallById(hallId int) (*repository.Hall, error) {
	return s.hallRepository.GetHallById(hallId)
}

func (s *HallService) SaveHall(hall *repository.Hall) (*repository.Hall, error) {
	return s.hallRepository.Save(hall)
}

func (s *HallService) DeleteHall(hallId int) error {
	return s.hallRepository.Delete(hallId)
}
