package service

import (
	"strings"

	"voloconnect/cmd/internal/domain/entity"
	"voloconnect/cmd/internal/domain/sqlite/repository"
	"voloconnect/cmd/internal/utils"
	"voloconnect/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type VolunteerRepository interface {
	FindByID(id int) (*entity.Volunteer, error)
	FindAll() ([]*entity.Volunteer, error)
	FindByEmail(email string) (*entity.Volunteer, error)
	ExistsByEmail(email string) (bool, error)
	FindByPhone(phone string) (*entity.Volunteer, error)
	FindByNameAndEmail(name, email string) (*entity.Volunteer, error)
	FindByStatus(status entity.VolunteerStatus) ([]*entity.Volunteer, error)
	FindByNameContaining(keyword string) ([]*entity.Volunteer, error)
	FindBySkillsContaining(keyword string) ([]*entity.Volunteer, error)
	CountByStatus(status entity.VolunteerStatus) (int64, error)
	Save(volunteer *entity.Volunteer) error
	Delete(volunteer *entity.Volunteer) error
}

type RegisterVolunteerRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=120"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,max=32"`
	Skills       *string `json:"skills" validate:"omitempty,max=2000"`
	Availability *string `json:"availability" validate:"omitempty,max=2000"`
	Bio          *string `json:"bio" validate:"omitempty,max=2000"`
	Preferences  *string `json:"preferences" validate:"omitempty,max=2000"`
}

type UpdateVolunteerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}

// VolunteerListQuery narrows the volunteer listing. Zero values impose
// no constraint.
type VolunteerListQuery struct {
	Status string
	Name   string
	Skills string
}

type VolunteerResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
	Bio          string `json:"bio"`
	Preferences  string `json:"preferences"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type VolunteerCountsResponse struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Pending  int64 `json:"pending"`
}

type DefaultVolunteerService struct {
	DB            *gorm.DB
	VolunteerRepo VolunteerRepository
	Validate      *validator.Validate
}

func NewVolunteerService(db *gorm.DB, volunteerRepo VolunteerRepository, validate *validator.Validate) *DefaultVolunteerService {
	return &DefaultVolunteerService{DB: db, VolunteerRepo: volunteerRepo, Validate: validate}
}

// RegisterVolunteer creates a volunteer record in status PENDING.
// The email must not already be taken.
func (v *DefaultVolunteerService) RegisterVolunteer(req *RegisterVolunteerRequest) (*VolunteerResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := v.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var (
		response *VolunteerResponse
		apierr   apierror.ErrorResponse
	)
	err := v.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)

		found, err := volunteers.ExistsByEmail(req.Email)
		if err != nil {
			return err
		}
		if found {
			apierr = apierror.NewConflict("A volunteer with this email already exists")
			return errAborted
		}

		volunteer := &entity.Volunteer{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Status:       entity.VolunteerPending,
			Skills:       req.Skills,
			Availability: req.Availability,
			Bio:          req.Bio,
			Preferences:  req.Preferences,
		}
		if err := volunteers.Save(volunteer); err != nil {
			return err
		}

		response = toVolunteerResponse(volunteer)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to register volunteer: %v", err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

func (v *DefaultVolunteerService) GetVolunteer(id int) (*VolunteerResponse, apierror.ErrorResponse) {
	volunteer, err := v.VolunteerRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch volunteer by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if volunteer == nil {
		return nil, apierror.NewNotFound("Volunteer", id)
	}
	return toVolunteerResponse(volunteer), nil
}

func (v *DefaultVolunteerService) GetVolunteers(query *VolunteerListQuery) ([]*VolunteerResponse, apierror.ErrorResponse) {
	if query == nil {
		query = &VolunteerListQuery{}
	}

	var status entity.VolunteerStatus
	if query.Status != "" {
		var ok bool
		status, ok = parseVolunteerStatus(query.Status)
		if !ok {
			return nil, apierror.NewSimple(400, "Unknown volunteer status '"+query.Status+"'")
		}
	}

	var (
		volunteers []*entity.Volunteer
		err        error
	)
	switch {
	case query.Status != "":
		volunteers, err = v.VolunteerRepo.FindByStatus(status)
	case query.Name != "":
		volunteers, err = v.VolunteerRepo.FindByNameContaining(query.Name)
	case query.Skills != "":
		volunteers, err = v.VolunteerRepo.FindBySkillsContaining(query.Skills)
	default:
		volunteers, err = v.VolunteerRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch volunteers: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*VolunteerResponse, 0, len(volunteers))
	for _, volunteer := range volunteers {
		if volunteerMatchesQuery(volunteer, query, status) {
			response = append(response, toVolunteerResponse(volunteer))
		}
	}
	return response, nil
}

func volunteerMatchesQuery(volunteer *entity.Volunteer, query *VolunteerListQuery, status entity.VolunteerStatus) bool {
	if query.Status != "" && volunteer.Status != status {
		return false
	}
	if query.Name != "" &&
		!strings.Contains(strings.ToLower(volunteer.Name), strings.ToLower(query.Name)) {
		return false
	}
	if query.Skills != "" && !containsFold(volunteer.Skills, query.Skills) {
		return false
	}
	return true
}

func (v *DefaultVolunteerService) UpdateVolunteer(id int, req *UpdateVolunteerRequest) (*VolunteerResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := v.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var (
		response *VolunteerResponse
		apierr   apierror.ErrorResponse
	)
	err := v.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)

		volunteer, err := volunteers.FindByID(id)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", id)
			return errAborted
		}

		if req.Email != nil && *req.Email != volunteer.Email {
			taken, err := volunteers.ExistsByEmail(*req.Email)
			if err != nil {
				return err
			}
			if taken {
				apierr = apierror.NewConflict("A volunteer with this email already exists")
				return errAborted
			}
			volunteer.Email = *req.Email
		}
		if req.Name != nil {
			volunteer.Name = *req.Name
		}
		if req.Phone != nil {
			volunteer.Phone = *req.Phone
		}

		if err := volunteers.Save(volunteer); err != nil {
			return err
		}

		response = toVolunteerResponse(volunteer)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update volunteer %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

func (v *DefaultVolunteerService) UpdateVolunteerStatus(id int, rawStatus string) (*VolunteerResponse, apierror.ErrorResponse) {
	status, ok := parseVolunteerStatus(rawStatus)
	if !ok {
		return nil, apierror.NewSimple(400, "Unknown volunteer status '"+rawStatus+"'")
	}

	var (
		response *VolunteerResponse
		apierr   apierror.ErrorResponse
	)
	err := v.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)

		volunteer, err := volunteers.FindByID(id)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", id)
			return errAborted
		}

		volunteer.Status = status
		if err := volunteers.Save(volunteer); err != nil {
			return err
		}

		response = toVolunteerResponse(volunteer)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update status of volunteer %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

// DeleteVolunteer removes the volunteer together with their
// assignment rows.
func (v *DefaultVolunteerService) DeleteVolunteer(id int) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse
	err := v.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		volunteer, err := volunteers.FindByID(id)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", id)
			return errAborted
		}

		if err := assignments.DeleteByVolunteer(id); err != nil {
			return err
		}
		return volunteers.Delete(volunteer)
	})

	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to delete volunteer %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (v *DefaultVolunteerService) GetVolunteerCounts() (*VolunteerCountsResponse, apierror.ErrorResponse) {
	counts := &VolunteerCountsResponse{}
	for status, dest := range map[entity.VolunteerStatus]*int64{
		entity.VolunteerActive:   &counts.Active,
		entity.VolunteerInactive: &counts.Inactive,
		entity.VolunteerPending:  &counts.Pending,
	} {
		count, err := v.VolunteerRepo.CountByStatus(status)
		if err != nil {
			log.Errorf("failed to count volunteers by status %s: %v", status, err)
			return nil, apierror.InternalServerError
		}
		*dest = count
	}
	return counts, nil
}

func parseVolunteerStatus(raw string) (entity.VolunteerStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(entity.VolunteerActive):
		return entity.VolunteerActive, true
	case string(entity.VolunteerInactive):
		return entity.VolunteerInactive, true
	case string(entity.VolunteerPending):
		return entity.VolunteerPending, true
	default:
		return "", false
	}
}

func toVolunteerResponse(volunteer *entity.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:           volunteer.ID,
		Name:         volunteer.Name,
		Email:        volunteer.Email,
		Phone:        volunteer.Phone,
		Status:       string(volunteer.Status),
		Skills:       strVal(volunteer.Skills),
		Availability: strVal(volunteer.Availability),
		Bio:          strVal(volunteer.Bio),
		Preferences:  strVal(volunteer.Preferences),
		CreatedAt:    utils.FormatEpoch(volunteer.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(volunteer.UpdatedAt),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
