package repository

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Category struct {
	Id      int    `gorm:"primaryKey"`
	EventId int    `gorm:"not null"`
	Name    string `gorm:"not null"`
	// inclusive age bounds, integer years
	StartAge int `gorm:"not null"`
	EndAge   int `gorm:"not null"`
	// empty means no gender restriction
	Genders  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Distance string         `gorm:"null"`
	// single/double events only; parsed as integers at pricing time
	MembersFees    string `gorm:"null"`
	NonMembersFees string `gorm:"null"`
}

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) GetCategoryById(categoryId int) (*Category, error) {
	var category Category
	result := r.DB.First(&category, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *Category) (*Category, error) {
	if category.StartAge > category.EndAge {
		return nil, fmt.Errorf("start age %d exceeds end age %d", category.StartAge, category.EndAge)
	}
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save category: %v", result.Error)
	}
	return category, nil
}

func (r *CategoryRepository) Delete(categoryId int) error {
	category, err := r.GetCategoryById(categoryId)
	if err != nil {
		return err
	}
	return r.DB.Delete(category).Error
}

func (r *CategoryRepository) FindByEvent(eventId int) ([]*Category, error) {
	var categories []*Category
	result := r.DB.Where("event_id = ?", eventId).Order("id").Find(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find categories: %v", result.Error)
	}
	return categories, nil
}
