package routes

import (
	"net/http"

	"voloconnect/cmd/internal/service"
	"voloconnect/cmd/internal/utils"
	"voloconnect/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type QueryService interface {
	SubmitQuery(req *service.SubmitQueryRequest) (*service.QueryResponse, apierror.ErrorResponse)
	GetQuery(id int) (*service.QueryResponse, apierror.ErrorResponse)
	GetQueries(listQuery *service.QueryListQuery) ([]*service.QueryResponse, apierror.ErrorResponse)
	RespondQuery(id int, req *service.RespondQueryRequest) (*service.QueryResponse, apierror.ErrorResponse)
	CloseQuery(id int) (*service.QueryResponse, apierror.ErrorResponse)
	DeleteQuery(id int) apierror.ErrorResponse
	GetQueryCounts() (*service.QueryCountsResponse, apierror.ErrorResponse)
}

type DefaultQueryRoute struct {
	QueryService QueryService
}

func NewQueryDefault(queryService QueryService) *DefaultQueryRoute {
	return &DefaultQueryRoute{QueryService: queryService}
}

// SubmitQuery is the public contact-form endpoint.
func (q *DefaultQueryRoute) SubmitQuery(c echo.Context) error {
	var req service.SubmitQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	query, apierr := q.QueryService.SubmitQuery(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, query)
}

func (q *DefaultQueryRoute) GetQueries(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	listQuery := &service.QueryListQuery{
		Status:  c.QueryParam("status"),
		Subject: c.QueryParam("subject"),
		Email:   c.QueryParam("email"),
	}

	queries, apierr := q.QueryService.GetQueries(listQuery)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"queries": queries}
	return c.JSON(http.StatusOK, &resp)
}

func (q *DefaultQueryRoute) GetQueryCounts(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	counts, apierr := q.QueryService.GetQueryCounts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, counts)
}

func (q *DefaultQueryRoute) GetQuery(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	query, apierr := q.QueryService.GetQuery(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, query)
}

func (q *DefaultQueryRoute) RespondQuery(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.RespondQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	query, apierr := q.QueryService.RespondQuery(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, query)
}

func (q *DefaultQueryRoute) CloseQuery(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	query, apierr := q.QueryService.CloseQuery(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, query)
}

func (q *DefaultQueryRoute) DeleteQuery(c echo.Context) error {
	if _, err := utils.ParseTokenDataCtx(c); err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := q.QueryService.DeleteQuery(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
