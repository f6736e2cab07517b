package service

import (
	"clubdesk/auth"
	"clubdesk/repository"

	"gorm.io/gorm"
)

type StaffService struct {
	staffRepository *repository.StaffRepository
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{
		staffRepository: repository.NewStaffRepository(db),
	}
}

func (s *StaffService) GetAllStaff() ([]*repository.Staff, error) {
	return s.staffRepository.FindAll()
}

func (s *StaffService) GetStaffById(staffId int) (*repository.Staff, error) {
	return s.staffRepository.GetStaffById(staffId)
}

func (s *StaffService) SaveStaff(staff *repository.Staff) (*repository.Staff, error) {
	return s.staffRepository.Save(staff)
}

func (s *StaffService) DeleteStaff(staffId int) error {
	return s.staffRepository.Delete(staffId)
}

// IssueToken mints a dashboard token carrying the staff account's
// permissions. Token distribution is an admin action here; the sign-in flow
// itself lives outside this service.
func (s *StaffService) IssueToken(staffId int) (string, error) {
	staff, err := s.staffRepository.GetStaffById(staffId)
	if err != nil {
		return "", err
	}
	return auth.CreateToken(staff)
}
