package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Member struct {
	Id           int       `gorm:"primaryKey"`
	MemberNumber string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	DateOfBirth  time.Time `gorm:"null"`
	Gender       string    `gorm:"null"`
	Mobile       string    `gorm:"null"`
	Email        string    `gorm:"null"`
	ChssNumber   string    `gorm:"null"`
	Active       bool      `gorm:"not null;default:true"`
	ParentId     *int      `gorm:"null"`
	// family members carry their own member numbers, prefixed with "F-"
	FamilyMembers []*Member `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
}

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetMemberById(memberId int) (*Member, error) {
	var member Member
	result := r.DB.Preload("FamilyMembers").First(&member, memberId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &member, nil
}

func (r *MemberRepository) GetMemberByNumber(memberNumber string) (*Member, error) {
	var member Member
	result := r.DB.Preload("FamilyMembers").First(&member, "member_number = ?", memberNumber)
	if result.Error != nil {
		return nil, result.Error
	}
	return &member, nil
}

func (r *MemberRepository) Save(member *Member) (*Member, error) {
	result := r.DB.Save(member)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save member: %v", result.Error)
	}
	return member, nil
}

func (r *MemberRepository) Delete(memberId int) error {
	member, err := r.GetMemberById(memberId)
	if err != nil {
		return err
	}
	return r.DB.Delete(member).Error
}

func (r *MemberRepository) FindAll(limit int, offset int) ([]*Member, error) {
	var members []*Member
	result := r.DB.Where("parent_id IS NULL").Limit(limit).Offset(offset).Order("id").Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find members: %v", result.Error)
	}
	return members, nil
}
