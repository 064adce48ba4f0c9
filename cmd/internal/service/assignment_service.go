package service

import (
	"errors"
	"strings"

	"voloconnect/cmd/internal/domain/entity"
	"voloconnect/cmd/internal/domain/sqlite/repository"
	"voloconnect/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	FindByID(id int) (*entity.Assignment, error)
	FindByEvent(eventID int) ([]*entity.Assignment, error)
	FindByVolunteer(volunteerID int) ([]*entity.Assignment, error)
	FindByEventAndVolunteer(eventID, volunteerID int) (*entity.Assignment, error)
	FindByRole(role string) ([]*entity.Assignment, error)
	CountByEvent(eventID int) (int64, error)
	CountByVolunteer(volunteerID int) (int64, error)
	Save(assignment *entity.Assignment) error
	Delete(assignment *entity.Assignment) error
	DeleteByEvent(eventID int) error
	DeleteByVolunteer(volunteerID int) error
}

// errAborted rolls a transaction back once the failure has been
// captured as an ErrorResponse.
var errAborted = errors.New("operation aborted")

type DefaultAssignmentService struct {
	DB             *gorm.DB
	AssignmentRepo AssignmentRepository
	EventRepo      EventRepository
	VolunteerRepo  VolunteerRepository
}

func NewAssignmentService(db *gorm.DB, assignmentRepo AssignmentRepository, eventRepo EventRepository, volunteerRepo VolunteerRepository) *DefaultAssignmentService {
	return &DefaultAssignmentService{
		DB:             db,
		AssignmentRepo: assignmentRepo,
		EventRepo:      eventRepo,
		VolunteerRepo:  volunteerRepo,
	}
}

// AssignVolunteer creates the assignment for the pair and returns its
// generated id. Both parents must exist; a pair that is already
// assigned is a conflict.
func (a *DefaultAssignmentService) AssignVolunteer(eventID, volunteerID int, role string) (int, apierror.ErrorResponse) {
	role = strings.TrimSpace(role)

	var (
		assignmentID int
		apierr       apierror.ErrorResponse
	)
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		volunteers := repository.NewVolunteerRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		event, err := events.FindByID(eventID)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", eventID)
			return errAborted
		}

		volunteer, err := volunteers.FindByID(volunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", volunteerID)
			return errAborted
		}

		existing, err := assignments.FindByEventAndVolunteer(eventID, volunteerID)
		if err != nil {
			return err
		}
		if existing != nil {
			apierr = apierror.NewConflict("Volunteer is already assigned to this event")
			return errAborted
		}

		assignment := &entity.Assignment{
			EventID:     eventID,
			VolunteerID: volunteerID,
			Role:        role,
		}
		if err := assignments.Save(assignment); err != nil {
			return err
		}

		assignmentID = assignment.ID
		return nil
	})

	if apierr != nil {
		return 0, apierr
	}
	if err != nil {
		log.Errorf("failed to assign volunteer %d to event %d: %v", volunteerID, eventID, err)
		return 0, apierror.InternalServerError
	}
	return assignmentID, nil
}

// RemoveVolunteer deletes the assignment for the pair. A pair that has
// no assignment reports false without raising an error.
func (a *DefaultAssignmentService) RemoveVolunteer(eventID, volunteerID int) (bool, apierror.ErrorResponse) {
	var (
		removed bool
		apierr  apierror.ErrorResponse
	)
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		volunteers := repository.NewVolunteerRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		event, err := events.FindByID(eventID)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", eventID)
			return errAborted
		}

		volunteer, err := volunteers.FindByID(volunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", volunteerID)
			return errAborted
		}

		assignment, err := assignments.FindByEventAndVolunteer(eventID, volunteerID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return nil
		}

		if err := assignments.Delete(assignment); err != nil {
			return err
		}

		removed = true
		return nil
	})

	if apierr != nil {
		return false, apierr
	}
	if err != nil {
		log.Errorf("failed to remove volunteer %d from event %d: %v", volunteerID, eventID, err)
		return false, apierror.InternalServerError
	}
	return removed, nil
}

// UpdateVolunteerRole overwrites the role of the pair's assignment.
// Reports false when the pair has no assignment.
func (a *DefaultAssignmentService) UpdateVolunteerRole(eventID, volunteerID int, newRole string) (bool, apierror.ErrorResponse) {
	newRole = strings.TrimSpace(newRole)

	var (
		updated bool
		apierr  apierror.ErrorResponse
	)
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		volunteers := repository.NewVolunteerRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		event, err := events.FindByID(eventID)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", eventID)
			return errAborted
		}

		volunteer, err := volunteers.FindByID(volunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			apierr = apierror.NewNotFound("Volunteer", volunteerID)
			return errAborted
		}

		assignment, err := assignments.FindByEventAndVolunteer(eventID, volunteerID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return nil
		}

		assignment.Role = newRole
		if err := assignments.Save(assignment); err != nil {
			return err
		}

		updated = true
		return nil
	})

	if apierr != nil {
		return false, apierr
	}
	if err != nil {
		log.Errorf("failed to update role of volunteer %d on event %d: %v", volunteerID, eventID, err)
		return false, apierror.InternalServerError
	}
	return updated, nil
}

func (a *DefaultAssignmentService) GetEventVolunteers(eventID int) ([]*VolunteerResponse, apierror.ErrorResponse) {
	event, err := a.EventRepo.FindByID(eventID)
	if err != nil {
		log.Errorf("failed to fetch event by id %d: %v", eventID, err)
		return nil, apierror.InternalServerError
	}
	if event == nil {
		return nil, apierror.NewNotFound("Event", eventID)
	}

	assignments, err := a.AssignmentRepo.FindByEvent(eventID)
	if err != nil {
		log.Errorf("failed to fetch assignments for event %d: %v", eventID, err)
		return nil, apierror.InternalServerError
	}

	volunteers := make([]*VolunteerResponse, len(assignments))
	for i, assignment := range assignments {
		volunteers[i] = toVolunteerResponse(&assignment.Volunteer)
	}
	return volunteers, nil
}

func (a *DefaultAssignmentService) GetVolunteerEvents(volunteerID int) ([]*EventResponse, apierror.ErrorResponse) {
	volunteer, err := a.VolunteerRepo.FindByID(volunteerID)
	if err != nil {
		log.Errorf("failed to fetch volunteer by id %d: %v", volunteerID, err)
		return nil, apierror.InternalServerError
	}
	if volunteer == nil {
		return nil, apierror.NewNotFound("Volunteer", volunteerID)
	}

	assignments, err := a.AssignmentRepo.FindByVolunteer(volunteerID)
	if err != nil {
		log.Errorf("failed to fetch assignments for volunteer %d: %v", volunteerID, err)
		return nil, apierror.InternalServerError
	}

	events := make([]*EventResponse, len(assignments))
	for i, assignment := range assignments {
		events[i] = toEventResponse(&assignment.Event)
	}
	return events, nil
}
