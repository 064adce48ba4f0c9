package repository

import (
	"errors"
	"strings"

	"voloconnect/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultVolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *DefaultVolunteerRepository {
	return &DefaultVolunteerRepository{db: db}
}

func (v *DefaultVolunteerRepository) FindByID(id int) (*entity.Volunteer, error) {
	var vol entity.Volunteer
	err := v.db.First(&vol, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vol, err
}

func (v *DefaultVolunteerRepository) FindAll() ([]*entity.Volunteer, error) {
	var vols []*entity.Volunteer
	err := v.db.Find(&vols).Error
	return vols, err
}

func (v *DefaultVolunteerRepository) FindByEmail(email string) (*entity.Volunteer, error) {
	var vol entity.Volunteer
	err := v.db.Where("email = ?", email).First(&vol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vol, err
}

func (v *DefaultVolunteerRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := v.db.Model(&entity.Volunteer{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (v *DefaultVolunteerRepository) FindByPhone(phone string) (*entity.Volunteer, error) {
	var vol entity.Volunteer
	err := v.db.Where("phone = ?", phone).First(&vol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vol, err
}

func (v *DefaultVolunteerRepository) FindByNameAndEmail(name, email string) (*entity.Volunteer, error) {
	var vol entity.Volunteer
	err := v.db.Where("name = ? AND email = ?", name, email).First(&vol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vol, err
}

func (v *DefaultVolunteerRepository) FindByStatus(status entity.VolunteerStatus) ([]*entity.Volunteer, error) {
	var vols []*entity.Volunteer
	err := v.db.Where("status = ?", status).Find(&vols).Error
	return vols, err
}

func (v *DefaultVolunteerRepository) FindByNameContaining(keyword string) ([]*entity.Volunteer, error) {
	var vols []*entity.Volunteer
	err := v.db.Where("LOWER(name) LIKE ?", contains(keyword)).Find(&vols).Error
	return vols, err
}

func (v *DefaultVolunteerRepository) FindBySkillsContaining(keyword string) ([]*entity.Volunteer, error) {
	var vols []*entity.Volunteer
	err := v.db.Where("LOWER(skills) LIKE ?", contains(keyword)).Find(&vols).Error
	return vols, err
}

func (v *DefaultVolunteerRepository) CountByStatus(status entity.VolunteerStatus) (int64, error) {
	var count int64
	err := v.db.Model(&entity.Volunteer{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (v *DefaultVolunteerRepository) Save(vol *entity.Volunteer) error {
	return v.db.Save(vol).Error
}

func (v *DefaultVolunteerRepository) Delete(vol *entity.Volunteer) error {
	return v.db.Delete(vol).Error
}

// contains builds the LIKE pattern for a case-insensitive substring match.
func contains(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}
