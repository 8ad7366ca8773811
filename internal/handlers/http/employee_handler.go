package http

import (
	"context"
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	"github.com/rafabene/docgestor-backend/internal/domain/errors"
	"github.com/rafabene/docgestor-backend/internal/handlers/dto"
	"github.com/rafabene/docgestor-backend/internal/services"
)

// EmployeeService é o que o handler precisa da camada de serviço
type EmployeeService interface {
	CreateEmployee(ctx context.Context, input services.CreateEmployeeInput) (*entities.Employee, error)
	ListEmployees(ctx context.Context) ([]*entities.Employee, error)
}

// EmployeeHandler lida com requisições HTTP relacionadas a funcionários
type EmployeeHandler struct {
	employeeService EmployeeService
}

// NewEmployeeHandler cria um novo EmployeeHandler
func NewEmployeeHandler(employeeService EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployee cadastra um novo funcionário
//
//	@Summary	Cadastra um funcionário
//	@Tags		employees
//	@Accept		json
//	@Produce	json
//	@Param		employee	body		dto.CreateEmployeeRequest	true	"Dados do funcionário"
//	@Success	201			{object}	dto.EmployeeResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Failure	409			{object}	dto.ErrorResponse
//	@Failure	500			{object}	dto.ErrorResponse
//	@Router		/api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.IncompleteDataResponse(c, dto.ToValidationErrors(c, err)))
		return
	}

	input := services.CreateEmployeeInput{
		Name:       *req.Name,
		Email:      *req.Email,
		CPF:        *req.CPF,
		Position:   *req.Position,
		Department: *req.Department,
		HireDate:   *req.HireDate,
	}
	if req.Status != nil {
		input.Status = *req.Status
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), input)
	if err != nil {
		if errs.Is(err, errors.ErrEmployeeAlreadyExists) {
			c.JSON(http.StatusConflict, dto.ConflictResponse(c))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StorageErrorResponse(c, err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// ListEmployees lista todos os funcionários
//
//	@Summary	Lista os funcionários
//	@Tags		employees
//	@Produce	json
//	@Success	200	{array}		dto.EmployeeResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StorageErrorResponse(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}
