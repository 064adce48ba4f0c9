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

type EventRepository interface {
	FindByID(id int) (*entity.Event, error)
	FindAll() ([]*entity.Event, error)
	FindByStatus(status entity.EventStatus) ([]*entity.Event, error)
	FindByDateBetween(start, end int64) ([]*entity.Event, error)
	FindByDateAfter(date int64) ([]*entity.Event, error)
	FindByLocationContaining(keyword string) ([]*entity.Event, error)
	FindByTitleContaining(keyword string) ([]*entity.Event, error)
	FindByCapacityGreaterThan(minimumCapacity int) ([]*entity.Event, error)
	Save(event *entity.Event) error
	Delete(event *entity.Event) error
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
}

// EventListQuery narrows the event listing. Zero values impose no
// constraint; the constraints combine with a logical AND.
type EventListQuery struct {
	Status      string
	Search      string
	After       string
	MinCapacity int
}

type EventResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DefaultEventService struct {
	DB        *gorm.DB
	EventRepo EventRepository
	Validate  *validator.Validate
}

func NewEventService(db *gorm.DB, eventRepo EventRepository, validate *validator.Validate) *DefaultEventService {
	return &DefaultEventService{DB: db, EventRepo: eventRepo, Validate: validate}
}

func (e *DefaultEventService) CreateEvent(req *CreateEventRequest) (*EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	date, err := utils.FromEpoch(req.Date)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("date", "RFC3339 timestamp")
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      entity.EventUpcoming,
	}

	if err := e.EventRepo.Save(event); err != nil {
		log.Errorf("failed to save event: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(event), nil
}

func (e *DefaultEventService) GetEvent(id int) (*EventResponse, apierror.ErrorResponse) {
	event, err := e.EventRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch event by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if event == nil {
		return nil, apierror.NewNotFound("Event", id)
	}
	return toEventResponse(event), nil
}

// GetEvents lists events matching the query. The first set constraint
// is pushed down to the repository; the rest are applied in memory.
func (e *DefaultEventService) GetEvents(query *EventListQuery) ([]*EventResponse, apierror.ErrorResponse) {
	if query == nil {
		query = &EventListQuery{}
	}

	after := int64(0)
	if query.After != "" {
		var err error
		after, err = utils.FromEpoch(query.After)
		if err != nil {
			return nil, apierror.NewInvalidParamTypeError("after", "RFC3339 timestamp")
		}
	}

	var status entity.EventStatus
	if query.Status != "" {
		var ok bool
		status, ok = parseEventStatus(query.Status)
		if !ok {
			return nil, apierror.NewSimple(400, "Unknown event status '"+query.Status+"'")
		}
	}

	var (
		events []*entity.Event
		err    error
	)
	switch {
	case query.Status != "":
		events, err = e.EventRepo.FindByStatus(status)
	case query.Search != "":
		events, err = e.findBySearch(query.Search)
	case query.After != "":
		events, err = e.EventRepo.FindByDateAfter(after)
	case query.MinCapacity > 0:
		events, err = e.EventRepo.FindByCapacityGreaterThan(query.MinCapacity)
	default:
		events, err = e.EventRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch events: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*EventResponse, 0, len(events))
	for _, event := range events {
		if eventMatchesQuery(event, query, status, after) {
			response = append(response, toEventResponse(event))
		}
	}
	return response, nil
}

// findBySearch matches the term against title or location.
func (e *DefaultEventService) findBySearch(term string) ([]*entity.Event, error) {
	byTitle, err := e.EventRepo.FindByTitleContaining(term)
	if err != nil {
		return nil, err
	}
	byLocation, err := e.EventRepo.FindByLocationContaining(term)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(byTitle))
	events := byTitle
	for _, event := range byTitle {
		seen[event.ID] = true
	}
	for _, event := range byLocation {
		if !seen[event.ID] {
			events = append(events, event)
		}
	}
	return events, nil
}

func eventMatchesQuery(event *entity.Event, query *EventListQuery, status entity.EventStatus, after int64) bool {
	if query.Status != "" && event.Status != status {
		return false
	}
	if query.Search != "" {
		term := strings.ToLower(query.Search)
		if !strings.Contains(strings.ToLower(event.Title), term) &&
			!strings.Contains(strings.ToLower(event.Location), term) {
			return false
		}
	}
	if query.After != "" && event.Date <= after {
		return false
	}
	if query.MinCapacity > 0 && event.Capacity <= query.MinCapacity {
		return false
	}
	return true
}

func (e *DefaultEventService) UpdateEvent(id int, req *UpdateEventRequest) (*EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var date int64
	if req.Date != nil {
		var err error
		date, err = utils.FromEpoch(*req.Date)
		if err != nil {
			return nil, apierror.NewInvalidParamTypeError("date", "RFC3339 timestamp")
		}
	}

	var (
		response *EventResponse
		apierr   apierror.ErrorResponse
	)
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)

		event, err := events.FindByID(id)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", id)
			return errAborted
		}

		if req.Title != nil {
			event.Title = *req.Title
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.Date != nil {
			event.Date = date
		}
		if req.Location != nil {
			event.Location = *req.Location
		}
		if req.Capacity != nil {
			event.Capacity = *req.Capacity
		}

		if err := events.Save(event); err != nil {
			return err
		}

		response = toEventResponse(event)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update event %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

func (e *DefaultEventService) UpdateEventStatus(id int, rawStatus string) (*EventResponse, apierror.ErrorResponse) {
	status, ok := parseEventStatus(rawStatus)
	if !ok {
		return nil, apierror.NewSimple(400, "Unknown event status '"+rawStatus+"'")
	}

	var (
		response *EventResponse
		apierr   apierror.ErrorResponse
	)
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)

		event, err := events.FindByID(id)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", id)
			return errAborted
		}

		event.Status = status
		if err := events.Save(event); err != nil {
			return err
		}

		response = toEventResponse(event)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update status of event %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

// DeleteEvent removes the event together with its assignment rows.
func (e *DefaultEventService) DeleteEvent(id int) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		event, err := events.FindByID(id)
		if err != nil {
			return err
		}
		if event == nil {
			apierr = apierror.NewNotFound("Event", id)
			return errAborted
		}

		if err := assignments.DeleteByEvent(id); err != nil {
			return err
		}
		return events.Delete(event)
	})

	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to delete event %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func parseEventStatus(raw string) (entity.EventStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(entity.EventUpcoming):
		return entity.EventUpcoming, true
	case string(entity.EventOngoing):
		return entity.EventOngoing, true
	case string(entity.EventCompleted):
		return entity.EventCompleted, true
	case string(entity.EventCancelled):
		return entity.EventCancelled, true
	default:
		return "", false
	}
}

func toEventResponse(event *entity.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        utils.FormatEpoch(event.Date),
		Location:    event.Location,
		Capacity:    event.Capacity,
		Status:      string(event.Status),
		CreatedAt:   utils.FormatEpoch(event.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(event.UpdatedAt),
	}
}
