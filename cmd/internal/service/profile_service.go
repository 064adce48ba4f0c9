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

// UpdateProfileRequest carries the optional profile fields. A nil
// field is left untouched; a present empty string clears the field.
type UpdateProfileRequest struct {
	Bio          *string `json:"bio" validate:"omitempty,max=2000"`
	Skills       *string `json:"skills" validate:"omitempty,max=2000"`
	Availability *string `json:"availability" validate:"omitempty,max=2000"`
	Preferences  *string `json:"preferences" validate:"omitempty,max=2000"`
}

type VolunteerStatsResponse struct {
	TotalEvents     int    `json:"totalEvents"`
	CompletedEvents int    `json:"completedEvents"`
	Roles           string `json:"roles"`
}

// SearchCriteria are optional constraints combined with a logical AND.
// Nil fields impose no constraint.
type SearchCriteria struct {
	Skills       *string `json:"skills"`
	Availability *string `json:"availability"`
	Status       *string `json:"status"`
}

type DefaultProfileService struct {
	DB             *gorm.DB
	VolunteerRepo  VolunteerRepository
	AssignmentRepo AssignmentRepository
	Validate       *validator.Validate
}

func NewProfileService(db *gorm.DB, volunteerRepo VolunteerRepository, assignmentRepo AssignmentRepository, validate *validator.Validate) *DefaultProfileService {
	return &DefaultProfileService{
		DB:             db,
		VolunteerRepo:  volunteerRepo,
		AssignmentRepo: assignmentRepo,
		Validate:       validate,
	}
}

// UpdateProfile overwrites the profile fields present in the request
// and leaves the rest unchanged.
func (p *DefaultProfileService) UpdateProfile(volunteerID int, req *UpdateProfileRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	var apierr apierror.ErrorResponse
	err := p.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)

		volunteer, err := volunteers.FindByID(volunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", volunteerID)
			return errAborted
		}

		if req.Bio != nil {
			volunteer.Bio = req.Bio
		}
		if req.Skills != nil {
			volunteer.Skills = req.Skills
		}
		if req.Availability != nil {
			volunteer.Availability = req.Availability
		}
		if req.Preferences != nil {
			volunteer.Preferences = req.Preferences
		}

		return volunteers.Save(volunteer)
	})

	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to update profile of volunteer %d: %v", volunteerID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (p *DefaultProfileService) UpdateSkills(volunteerID int, skills string) apierror.ErrorResponse {
	return p.updateField(volunteerID, func(volunteer *entity.Volunteer) {
		volunteer.Skills = &skills
	})
}

func (p *DefaultProfileService) UpdateAvailability(volunteerID int, availability string) apierror.ErrorResponse {
	return p.updateField(volunteerID, func(volunteer *entity.Volunteer) {
		volunteer.Availability = &availability
	})
}

func (p *DefaultProfileService) updateField(volunteerID int, mutate func(*entity.Volunteer)) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse
	err := p.DB.Transaction(func(tx *gorm.DB) error {
		volunteers := repository.NewVolunteerRepository(tx)

		volunteer, err := volunteers.FindByID(volunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", volunteerID)
			return errAborted
		}

		mutate(volunteer)
		return volunteers.Save(volunteer)
	})

	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to update volunteer %d: %v", volunteerID, err)
		return apierror.InternalServerError
	}
	return nil
}

// GetVolunteerStats aggregates the volunteer's assignments: total
// count, count of completed events, and the distinct roles joined
// with ", " in first-seen order.
func (p *DefaultProfileService) GetVolunteerStats(volunteerID int) (*VolunteerStatsResponse, apierror.ErrorResponse) {
	volunteer, err := p.VolunteerRepo.FindByID(volunteerID)
	if err != nil {
		log.Errorf("failed to fetch volunteer by id %d: %v", volunteerID, err)
		return nil, apierror.InternalServerError
	}
	if volunteer == nil {
		return nil, apierror.NewNotFound("Volunteer", volunteerID)
	}

	assignments, err := p.AssignmentRepo.FindByVolunteer(volunteerID)
	if err != nil {
		log.Errorf("failed to fetch assignments for volunteer %d: %v", volunteerID, err)
		return nil, apierror.InternalServerError
	}

	completed := 0
	var roles []string
	seen := map[string]bool{}
	for _, assignment := range assignments {
		if assignment.Event.Status == entity.EventCompleted {
			completed++
		}
		if !seen[assignment.Role] {
			seen[assignment.Role] = true
			roles = append(roles, assignment.Role)
		}
	}

	return &VolunteerStatsResponse{
		TotalEvents:     len(assignments),
		CompletedEvents: completed,
		Roles:           strings.Join(roles, ", "),
	}, nil
}

// SearchVolunteers loads all volunteers and filters them in memory
// against the supplied criteria.
func (p *DefaultProfileService) SearchVolunteers(criteria *SearchCriteria) ([]*VolunteerResponse, apierror.ErrorResponse) {
	volunteers, err := p.VolunteerRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all volunteers: %v", err)
		return nil, apierror.InternalServerError
	}

	matches := make([]*VolunteerResponse, 0, len(volunteers))
	for _, volunteer := range volunteers {
		if matchesCriteria(volunteer, criteria) {
			matches = append(matches, toVolunteerResponse(volunteer))
		}
	}
	return matches, nil
}

func matchesCriteria(volunteer *entity.Volunteer, criteria *SearchCriteria) bool {
	if criteria == nil {
		return true
	}
	if criteria.Skills != nil && !containsFold(volunteer.Skills, *criteria.Skills) {
		return false
	}
	if criteria.Availability != nil && !containsFold(volunteer.Availability, *criteria.Availability) {
		return false
	}
	if criteria.Status != nil && !strings.EqualFold(string(volunteer.Status), *criteria.Status) {
		return false
	}
	return true
}

// containsFold reports whether the field holds the keyword,
// case-insensitively. An unset or empty field never matches.
func containsFold(field *string, keyword string) bool {
	if field == nil || *field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(keyword))
}
