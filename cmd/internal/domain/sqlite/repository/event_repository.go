package repository

import (
	"errors"

	"voloconnect/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *DefaultEventRepository {
	return &DefaultEventRepository{db: db}
}

func (e *DefaultEventRepository) FindByID(id int) (*entity.Event, error) {
	var event entity.Event
	err := e.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

func (e *DefaultEventRepository) FindAll() ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) FindByStatus(status entity.EventStatus) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("status = ?", status).Find(&events).Error
	return events, err
}

// FindByDateBetween returns events whose date falls inside [start, end],
// both bounds in epoch millis, both inclusive.
func (e *DefaultEventRepository) FindByDateBetween(start, end int64) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("date BETWEEN ? AND ?", start, end).Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) FindByDateAfter(date int64) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("date > ?", date).Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) FindByLocationContaining(keyword string) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("LOWER(location) LIKE ?", contains(keyword)).Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) FindByTitleContaining(keyword string) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("LOWER(title) LIKE ?", contains(keyword)).Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) FindByCapacityGreaterThan(minimumCapacity int) ([]*entity.Event, error) {
	var events []*entity.Event
	err := e.db.Where("capacity > ?", minimumCapacity).Find(&events).Error
	return events, err
}

func (e *DefaultEventRepository) Save(event *entity.Event) error {
	return e.db.Save(event).Error
}

func (e *DefaultEventRepository) Delete(event *entity.Event) error {
	return e.db.Delete(event).Error
}
