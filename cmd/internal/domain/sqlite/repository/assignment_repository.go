package repository

import (
	"errors"
	"strings"

	"voloconnect/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{db: db}
}

func (a *DefaultAssignmentRepository) FindByID(id int) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := a.db.First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &assignment, err
}

// FindByEvent returns the event's assignments with the Volunteer
// relation loaded.
func (a *DefaultAssignmentRepository) FindByEvent(eventID int) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	err := a.db.Preload("Volunteer").
		Where("event_id = ?", eventID).
		Find(&assignments).Error
	return assignments, err
}

// FindByVolunteer returns the volunteer's assignments with the Event
// relation loaded.
func (a *DefaultAssignmentRepository) FindByVolunteer(volunteerID int) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	err := a.db.Preload("Event").
		Where("volunteer_id = ?", volunteerID).
		Find(&assignments).Error
	return assignments, err
}

// FindByEventAndVolunteer returns the single assignment for the pair,
// or nil when the pair has none.
func (a *DefaultAssignmentRepository) FindByEventAndVolunteer(eventID, volunteerID int) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := a.db.Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &assignment, err
}

func (a *DefaultAssignmentRepository) FindByRole(role string) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	err := a.db.Where("LOWER(role) = ?", strings.ToLower(role)).
		Find(&assignments).Error
	return assignments, err
}

func (a *DefaultAssignmentRepository) CountByEvent(eventID int) (int64, error) {
	var count int64
	err := a.db.Model(&entity.Assignment{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (a *DefaultAssignmentRepository) CountByVolunteer(volunteerID int) (int64, error) {
	var count int64
	err := a.db.Model(&entity.Assignment{}).
		Where("volunteer_id = ?", volunteerID).
		Count(&count).Error
	return count, err
}

func (a *DefaultAssignmentRepository) Save(assignment *entity.Assignment) error {
	return a.db.Save(assignment).Error
}

func (a *DefaultAssignmentRepository) Delete(assignment *entity.Assignment) error {
	return a.db.Delete(assignment).Error
}

func (a *DefaultAssignmentRepository) DeleteByEvent(eventID int) error {
	return a.db.Where("event_id = ?", eventID).
		Delete(&entity.Assignment{}).Error
}

func (a *DefaultAssignmentRepository) DeleteByVolunteer(volunteerID int) error {
	return a.db.Where("volunteer_id = ?", volunteerID).
		Delete(&entity.Assignment{}).Error
}
