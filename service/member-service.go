package service

import (
	"errors"

	"clubdesk/enrollment"
	"clubdesk/metrics"
	"clubdesk/repository"

	"gorm.io/gorm"
)

var ErrMemberMissingDateOfBirth = errors.New("member record has no usable date of birth")

type MemberService struct {
	memberRepository *repository.MemberRepository
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{
		memberRepository: repository.NewMemberRepository(db),
	}
}

func (s *MemberService) GetAllMembers(limit int, offset int) ([]*repository.Member, error) {
	return s.memberRepository.FindAll(limit, offset)
}

func (s *MemberService) GetMemberById(memberId int) (*repository.Member, error) {
	return s.memberRepository.GetMemberById(memberId)
}

func (s *MemberService) SaveMember(member *repository.Member) (*repository.Member, error) {
	return s.memberRepository.Save(member)
}

func (s *MemberService) DeleteMember(memberId int) error {
	return s.memberRepository.Delete(memberId)
}

// LookupParticipant resolves a member number to a booking participant.
// Family members carry their own numbers (issued with an "F-" prefix) and
// resolve the same way. A member without a recorded date of birth cannot be
// placed on a roster, so the lookup fails rather than returning a
// half-usable participant.
func (s *MemberService) LookupParticipant(memberNumber string) (*enrollment.Participant, error) {
	member, err := s.memberRepository.GetMemberByNumber(memberNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.VerificationFailureCounter.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}
	if member.DateOfBirth.IsZero() {
		metrics.VerificationFailureCounter.WithLabelValues("missing_dob").Inc()
		return nil, ErrMemberMissingDateOfBirth
	}
	return &enrollment.Participant{
		MemberNumber: member.MemberNumber,
		Name:         member.Name,
		DateOfBirth:  member.DateOfBirth,
		Gender:       member.Gender,
		Mobile:       member.Mobile,
		Email:        member.Email,
		ChssNumber:   member.ChssNumber,
	}, nil
}
