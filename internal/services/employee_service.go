package services

import (
	"context"
	stderrors "errors"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	"github.com/rafabene/docgestor-backend/internal/domain/errors"
	"github.com/rafabene/docgestor-backend/internal/domain/ports"
	"github.com/rafabene/docgestor-backend/internal/domain/repositories"
	"github.com/rafabene/docgestor-backend/internal/shared/contextutil"
)

const (
	msgSaveFailed  = "Erro ao salvar no banco de dados"
	msgQueryFailed = "Erro ao consultar o banco de dados"
)

// EmployeeService contém a lógica de negócio para funcionários
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewEmployeeService cria um novo EmployeeService
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateEmployeeInput representa os dados para criar um funcionário
type CreateEmployeeInput struct {
	Name       string
	Email      string
	CPF        string
	Position   string
	Department string
	HireDate   string
	Status     string // opcional
}

// CreateEmployee cadastra um funcionário.
// Email e CPF são verificados e inseridos na mesma transação.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*entities.Employee, error) {
	logger := s.logger.With("request_id", contextutil.GetRequestID(ctx))
	logger.Info("creating employee", "email", input.Email)

	employee := &entities.Employee{
		Name:       input.Name,
		Email:      input.Email,
		CPF:        input.CPF,
		Position:   input.Position,
		Department: input.Department,
		HireDate:   input.HireDate,
		Status:     input.Status,
	}
	employee.ApplyDefaults()

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.employeeRepo.ExistsByEmailOrCPF(txCtx, employee.Email, employee.CPF)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrEmployeeAlreadyExists
		}
		return s.employeeRepo.Create(txCtx, employee)
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrEmployeeAlreadyExists) {
			logger.Warn("employee already exists", "email", input.Email)
			return nil, err
		}
		logger.Error("failed to persist employee", "error", err)
		return nil, errors.NewStorageError(msgSaveFailed, err)
	}

	logger.Info("employee created", "employee_id", employee.ID)
	return employee, nil
}

// ListEmployees lista todos os funcionários na ordem de cadastro
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*entities.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list employees",
			"request_id", contextutil.GetRequestID(ctx),
			"error", err,
		)
		return nil, errors.NewStorageError(msgQueryFailed, err)
	}
	return employees, nil
}

// sampleEmployees são os funcionários de exemplo para ambientes de desenvolvimento
var sampleEmployees = []CreateEmployeeInput{
	{Name: "João Silva", Email: "joao.silva@empresa.com", CPF: "12345678901", Position: "Desenvolvedor", Department: "TI", HireDate: "2023-03-01", Status: "OK"},
	{Name: "Maria Santos", Email: "maria.santos@empresa.com", CPF: "98765432109", Position: "Analista de RH", Department: "Recursos Humanos", HireDate: "2022-08-15", Status: "Pendente"},
	{Name: "Pedro Oliveira", Email: "pedro.oliveira@empresa.com", CPF: "11122233344", Position: "Gerente de Vendas", Department: "Vendas", HireDate: "2021-11-22", Status: "Alerta"},
}

// SeedSampleEmployees insere os funcionários de exemplo que ainda não existem.
// Retorna quantos foram criados.
func (s *EmployeeService) SeedSampleEmployees(ctx context.Context) (int, error) {
	created := 0
	for _, input := range sampleEmployees {
		_, err := s.CreateEmployee(ctx, input)
		if stderrors.Is(err, errors.ErrEmployeeAlreadyExists) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
