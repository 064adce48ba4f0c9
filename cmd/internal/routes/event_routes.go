package routes

import (
	"net/http"
	"strconv"
	"strings"

	"voloconnect/cmd/internal/service"
	"voloconnect/cmd/internal/utils"
	"voloconnect/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EventService interface {
	CreateEvent(req *service.CreateEventRequest) (*service.EventResponse, apierror.ErrorResponse)
	GetEvent(id int) (*service.EventResponse, apierror.ErrorResponse)
	GetEvents(query *service.EventListQuery) ([]*service.EventResponse, apierror.ErrorResponse)
	UpdateEvent(id int, req *service.UpdateEventRequest) (*service.EventResponse, apierror.ErrorResponse)
	UpdateEventStatus(id int, status string) (*service.EventResponse, apierror.ErrorResponse)
	DeleteEvent(id int) apierror.ErrorResponse
}

type AssignmentService interface {
	AssignVolunteer(eventID, volunteerID int, role string) (int, apierror.ErrorResponse)
	RemoveVolunteer(eventID, volunteerID int) (bool, apierror.ErrorResponse)
	UpdateVolunteerRole(eventID, volunteerID int, newRole string) (bool, apierror.ErrorResponse)
	GetEventVolunteers(eventID int) ([]*service.VolunteerResponse, apierror.ErrorResponse)
	GetVolunteerEvents(volunteerID int) ([]*service.EventResponse, apierror.ErrorResponse)
}

type assignVolunteerRequest struct {
	VolunteerID int    `json:"volunteer_id"`
	Role        string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type DefaultEventRoute struct {
	EventService      EventService
	AssignmentService AssignmentService
}

func NewEventDefault(eventService EventService, assignmentService AssignmentService) *DefaultEventRoute {
	return &DefaultEventRoute{EventService: eventService, AssignmentService: assignmentService}
}

func (e *DefaultEventRoute) GetEvents(c echo.Context) error {
	query := &service.EventListQuery{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		After:  c.QueryParam("after"),
	}

	if raw := c.QueryParam("min_capacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			apierr := apierror.NewInvalidParamTypeError("min_capacity", "int")
			return c.JSON(apierr.Code(), apierr)
		}
		query.MinCapacity = minCapacity
	}

	events, apierr := e.EventService.GetEvents(query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"events": events}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEventRoute) GetEvent(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	event, apierr := e.EventService.GetEvent(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, event)
}

func (e *DefaultEventRoute) CreateEvent(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	var req service.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := e.EventService.CreateEvent(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, event)
}

func (e *DefaultEventRoute) UpdateEvent(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := e.EventService.UpdateEvent(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, event)
}

func (e *DefaultEventRoute) UpdateEventStatus(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	if strings.TrimSpace(req.Status) == "" {
		apierr := apierror.NewMissingParamError("status")
		return c.JSON(apierr.Code(), apierr)
	}

	event, apierr := e.EventService.UpdateEventStatus(id, req.Status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, event)
}

func (e *DefaultEventRoute) DeleteEvent(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := e.EventService.DeleteEvent(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (e *DefaultEventRoute) GetEventVolunteers(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	volunteers, apierr := e.AssignmentService.GetEventVolunteers(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"volunteers": volunteers}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEventRoute) AssignVolunteer(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	eventID, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req assignVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	if req.VolunteerID == 0 {
		apierr := apierror.NewMissingParamError("volunteer_id")
		return c.JSON(apierr.Code(), apierr)
	}
	if strings.TrimSpace(req.Role) == "" {
		apierr := apierror.NewMissingParamError("role")
		return c.JSON(apierr.Code(), apierr)
	}

	assignmentID, apierr := e.AssignmentService.AssignVolunteer(eventID, req.VolunteerID, req.Role)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"id": assignmentID}
	return c.JSON(http.StatusCreated, &resp)
}

func (e *DefaultEventRoute) RemoveVolunteer(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	eventID, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	volunteerID, apierr := parseIDParam(c, "volunteerId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	removed, apierr := e.AssignmentService.RemoveVolunteer(eventID, volunteerID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"removed": removed}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEventRoute) UpdateVolunteerRole(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	eventID, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	volunteerID, apierr := parseIDParam(c, "volunteerId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	if strings.TrimSpace(req.Role) == "" {
		apierr := apierror.NewMissingParamError("role")
		return c.JSON(apierr.Code(), apierr)
	}

	updated, apierr := e.AssignmentService.UpdateVolunteerRole(eventID, volunteerID, req.Role)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"updated": updated}
	return c.JSON(http.StatusOK, &resp)
}
