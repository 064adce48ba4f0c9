package repository

import (
	"errors"

	"voloconnect/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultQueryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) *DefaultQueryRepository {
	return &DefaultQueryRepository{db: db}
}

func (q *DefaultQueryRepository) FindByID(id int) (*entity.Query, error) {
	var query entity.Query
	err := q.db.First(&query, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &query, err
}

func (q *DefaultQueryRepository) FindAll() ([]*entity.Query, error) {
	var queries []*entity.Query
	err := q.db.Find(&queries).Error
	return queries, err
}

func (q *DefaultQueryRepository) FindByStatus(status entity.QueryStatus) ([]*entity.Query, error) {
	var queries []*entity.Query
	err := q.db.Where("status = ?", status).Find(&queries).Error
	return queries, err
}

func (q *DefaultQueryRepository) FindByEmailContaining(keyword string) ([]*entity.Query, error) {
	var queries []*entity.Query
	err := q.db.Where("LOWER(email) LIKE ?", contains(keyword)).Find(&queries).Error
	return queries, err
}

func (q *DefaultQueryRepository) FindByNameContaining(keyword string) ([]*entity.Query, error) {
	var queries []*entity.Query
	err := q.db.Where("LOWER(name) LIKE ?", contains(keyword)).Find(&queries).Error
	return queries, err
}

func (q *DefaultQueryRepository) FindBySubjectContaining(keyword string) ([]*entity.Query, error) {
	var queries []*entity.Query
	err := q.db.Where("LOWER(subject) LIKE ?", contains(keyword)).Find(&queries).Error
	return queries, err
}

func (q *DefaultQueryRepository) CountByStatus(status entity.QueryStatus) (int64, error) {
	var count int64
	err := q.db.Model(&entity.Query{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (q *DefaultQueryRepository) Save(query *entity.Query) error {
	return q.db.Save(query).Error
}

func (q *DefaultQueryRepository) Delete(query *entity.Query) error {
	return q.db.Delete(query).Error
}
