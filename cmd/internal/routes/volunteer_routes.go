package routes

import (
	"net/http"

	"voloconnect/cmd/internal/service"
	"voloconnect/cmd/internal/utils"
	"voloconnect/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type VolunteerService interface {
	RegisterVolunteer(req *service.RegisterVolunteerRequest) (*service.VolunteerResponse, apierror.ErrorResponse)
	GetVolunteer(id int) (*service.VolunteerResponse, apierror.ErrorResponse)
	GetVolunteers(query *service.VolunteerListQuery) ([]*service.VolunteerResponse, apierror.ErrorResponse)
	UpdateVolunteer(id int, req *service.UpdateVolunteerRequest) (*service.VolunteerResponse, apierror.ErrorResponse)
	UpdateVolunteerStatus(id int, status string) (*service.VolunteerResponse, apierror.ErrorResponse)
	DeleteVolunteer(id int) apierror.ErrorResponse
	GetVolunteerCounts() (*service.VolunteerCountsResponse, apierror.ErrorResponse)
}

type ProfileService interface {
	UpdateProfile(volunteerID int, req *service.UpdateProfileRequest) apierror.ErrorResponse
	UpdateSkills(volunteerID int, skills string) apierror.ErrorResponse
	UpdateAvailability(volunteerID int, availability string) apierror.ErrorResponse
	GetVolunteerStats(volunteerID int) (*service.VolunteerStatsResponse, apierror.ErrorResponse)
	SearchVolunteers(criteria *service.SearchCriteria) ([]*service.VolunteerResponse, apierror.ErrorResponse)
}

type updateSkillsRequest struct {
	Skills string `json:"skills"`
}

type updateAvailabilityRequest struct {
	Availability string `json:"availability"`
}

type DefaultVolunteerRoute struct {
	VolunteerService  VolunteerService
	ProfileService    ProfileService
	AssignmentService AssignmentService
}

func NewVolunteerDefault(volunteerService VolunteerService, profileService ProfileService, assignmentService AssignmentService) *DefaultVolunteerRoute {
	return &DefaultVolunteerRoute{
		VolunteerService:  volunteerService,
		ProfileService:    profileService,
		AssignmentService: assignmentService,
	}
}

func (v *DefaultVolunteerRoute) RegisterVolunteer(c echo.Context) error {
	var req service.RegisterVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	volunteer, apierr := v.VolunteerService.RegisterVolunteer(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, volunteer)
}

func (v *DefaultVolunteerRoute) GetVolunteers(c echo.Context) error {
	query := &service.VolunteerListQuery{
		Status: c.QueryParam("status"),
		Name:   c.QueryParam("name"),
		Skills: c.QueryParam("skills"),
	}

	volunteers, apierr := v.VolunteerService.GetVolunteers(query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"volunteers": volunteers}
	return c.JSON(http.StatusOK, &resp)
}

// SearchVolunteers keeps absent and empty query parameters distinct:
// "?skills=" constrains to an empty match, no parameter at all does
// not constrain.
func (v *DefaultVolunteerRoute) SearchVolunteers(c echo.Context) error {
	params := c.QueryParams()
	criteria := &service.SearchCriteria{}
	if values, ok := params["skills"]; ok {
		criteria.Skills = &values[0]
	}
	if values, ok := params["availability"]; ok {
		criteria.Availability = &values[0]
	}
	if values, ok := params["status"]; ok {
		criteria.Status = &values[0]
	}

	volunteers, apierr := v.ProfileService.SearchVolunteers(criteria)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"volunteers": volunteers}
	return c.JSON(http.StatusOK, &resp)
}

func (v *DefaultVolunteerRoute) GetVolunteerCounts(c echo.Context) error {
	counts, apierr := v.VolunteerService.GetVolunteerCounts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, counts)
}

func (v *DefaultVolunteerRoute) GetVolunteer(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	volunteer, apierr := v.VolunteerService.GetVolunteer(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, volunteer)
}

func (v *DefaultVolunteerRoute) UpdateVolunteer(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	volunteer, apierr := v.VolunteerService.UpdateVolunteer(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, volunteer)
}

func (v *DefaultVolunteerRoute) UpdateVolunteerStatus(c echo.Context) error {
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
	if req.Status == "" {
		apierr := apierror.NewMissingParamError("status")
		return c.JSON(apierr.Code(), apierr)
	}

	volunteer, apierr := v.VolunteerService.UpdateVolunteerStatus(id, req.Status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, volunteer)
}

func (v *DefaultVolunteerRoute) DeleteVolunteer(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := v.VolunteerService.DeleteVolunteer(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (v *DefaultVolunteerRoute) UpdateProfile(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := v.ProfileService.UpdateProfile(id, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (v *DefaultVolunteerRoute) UpdateSkills(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req updateSkillsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := v.ProfileService.UpdateSkills(id, req.Skills); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (v *DefaultVolunteerRoute) UpdateAvailability(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req updateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := v.ProfileService.UpdateAvailability(id, req.Availability); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (v *DefaultVolunteerRoute) GetVolunteerStats(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	stats, apierr := v.ProfileService.GetVolunteerStats(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}

func (v *DefaultVolunteerRoute) GetVolunteerEvents(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	events, apierr := v.AssignmentService.GetVolunteerEvents(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"events": events}
	return c.JSON(http.StatusOK, &resp)
}
