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

type QueryRepository interface {
	FindByID(id int) (*entity.Query, error)
	FindAll() ([]*entity.Query, error)
	FindByStatus(status entity.QueryStatus) ([]*entity.Query, error)
	FindByEmailContaining(keyword string) ([]*entity.Query, error)
	FindByNameContaining(keyword string) ([]*entity.Query, error)
	FindBySubjectContaining(keyword string) ([]*entity.Query, error)
	CountByStatus(status entity.QueryStatus) (int64, error)
	Save(query *entity.Query) error
	Delete(query *entity.Query) error
}

type SubmitQueryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}

type RespondQueryRequest struct {
	Response string `json:"response" validate:"required,max=4000"`
}

// QueryListQuery narrows the inbox listing. Zero values impose no
// constraint.
type QueryListQuery struct {
	Status  string
	Subject string
	Email   string
}

type QueryResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type QueryCountsResponse struct {
	Pending   int64 `json:"pending"`
	Responded int64 `json:"responded"`
	Closed    int64 `json:"closed"`
}

type DefaultQueryService struct {
	DB        *gorm.DB
	QueryRepo QueryRepository
	Validate  *validator.Validate
}

func NewQueryService(db *gorm.DB, queryRepo QueryRepository, validate *validator.Validate) *DefaultQueryService {
	return &DefaultQueryService{DB: db, QueryRepo: queryRepo, Validate: validate}
}

// SubmitQuery records a contact-form submission in status PENDING.
func (q *DefaultQueryService) SubmitQuery(req *SubmitQueryRequest) (*QueryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := q.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	query := &entity.Query{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.QueryPending,
	}

	if err := q.QueryRepo.Save(query); err != nil {
		log.Errorf("failed to save query: %v", err)
		return nil, apierror.InternalServerError
	}
	return toQueryResponse(query), nil
}

func (q *DefaultQueryService) GetQuery(id int) (*QueryResponse, apierror.ErrorResponse) {
	query, err := q.QueryRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch query by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if query == nil {
		return nil, apierror.NewNotFound("Query", id)
	}
	return toQueryResponse(query), nil
}

func (q *DefaultQueryService) GetQueries(listQuery *QueryListQuery) ([]*QueryResponse, apierror.ErrorResponse) {
	if listQuery == nil {
		listQuery = &QueryListQuery{}
	}

	var status entity.QueryStatus
	if listQuery.Status != "" {
		var ok bool
		status, ok = parseQueryStatus(listQuery.Status)
		if !ok {
			return nil, apierror.NewSimple(400, "Unknown query status '"+listQuery.Status+"'")
		}
	}

	var (
		queries []*entity.Query
		err     error
	)
	switch {
	case listQuery.Status != "":
		queries, err = q.QueryRepo.FindByStatus(status)
	case listQuery.Subject != "":
		queries, err = q.QueryRepo.FindBySubjectContaining(listQuery.Subject)
	case listQuery.Email != "":
		queries, err = q.QueryRepo.FindByEmailContaining(listQuery.Email)
	default:
		queries, err = q.QueryRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch queries: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*QueryResponse, 0, len(queries))
	for _, query := range queries {
		if queryMatchesListQuery(query, listQuery, status) {
			response = append(response, toQueryResponse(query))
		}
	}
	return response, nil
}

func queryMatchesListQuery(query *entity.Query, listQuery *QueryListQuery, status entity.QueryStatus) bool {
	if listQuery.Status != "" && query.Status != status {
		return false
	}
	if listQuery.Subject != "" &&
		!strings.Contains(strings.ToLower(query.Subject), strings.ToLower(listQuery.Subject)) {
		return false
	}
	if listQuery.Email != "" &&
		!strings.Contains(strings.ToLower(query.Email), strings.ToLower(listQuery.Email)) {
		return false
	}
	return true
}

// RespondQuery records the response text and moves the query to
// RESPONDED.
func (q *DefaultQueryService) RespondQuery(id int, req *RespondQueryRequest) (*QueryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := q.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	return q.mutateQuery(id, func(query *entity.Query) {
		query.Response = &req.Response
		query.Status = entity.QueryResponded
	})
}

func (q *DefaultQueryService) CloseQuery(id int) (*QueryResponse, apierror.ErrorResponse) {
	return q.mutateQuery(id, func(query *entity.Query) {
		query.Status = entity.QueryClosed
	})
}

func (q *DefaultQueryService) mutateQuery(id int, mutate func(*entity.Query)) (*QueryResponse, apierror.ErrorResponse) {
	var (
		response *QueryResponse
		apierr   apierror.ErrorResponse
	)
	err := q.DB.Transaction(func(tx *gorm.DB) error {
		queries := repository.NewQueryRepository(tx)

		query, err := queries.FindByID(id)
		if err != nil {
			return err
		}
		if query == nil {
			apierr = apierror.NewNotFound("Query", id)
			return errAborted
		}

		mutate(query)
		if err := queries.Save(query); err != nil {
			return err
		}

		response = toQueryResponse(query)
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update query %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return response, nil
}

func (q *DefaultQueryService) DeleteQuery(id int) apierror.ErrorResponse {
	query, err := q.QueryRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch query by id %d: %v", id, err)
		return apierror.InternalServerError
	}
	if query == nil {
		return apierror.NewNotFound("Query", id)
	}

	if err := q.QueryRepo.Delete(query); err != nil {
		log.Errorf("failed to delete query %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (q *DefaultQueryService) GetQueryCounts() (*QueryCountsResponse, apierror.ErrorResponse) {
	counts := &QueryCountsResponse{}
	for status, dest := range map[entity.QueryStatus]*int64{
		entity.QueryPending:   &counts.Pending,
		entity.QueryResponded: &counts.Responded,
		entity.QueryClosed:    &counts.Closed,
	} {
		count, err := q.QueryRepo.CountByStatus(status)
		if err != nil {
			log.Errorf("failed to count queries by status %s: %v", status, err)
			return nil, apierror.InternalServerError
		}
		*dest = count
	}
	return counts, nil
}

func parseQueryStatus(raw string) (entity.QueryStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(entity.QueryPending):
		return entity.QueryPending, true
	case string(entity.QueryResponded):
		return entity.QueryResponded, true
	case string(entity.QueryClosed):
		return entity.QueryClosed, true
	default:
		return "", false
	}
}

func toQueryResponse(query *entity.Query) *QueryResponse {
	return &QueryResponse{
		ID:        query.ID,
		Name:      query.Name,
		Email:     query.Email,
		Subject:   query.Subject,
		Message:   query.Message,
		Response:  strVal(query.Response),
		Status:    string(query.Status),
		CreatedAt: utils.FormatEpoch(query.CreatedAt),
		UpdatedAt: utils.FormatEpoch(query.UpdatedAt),
	}
}
