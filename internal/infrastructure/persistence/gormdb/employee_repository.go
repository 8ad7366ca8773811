package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/docgestor-backend/internal/domain/errors"
	"github.com/rafabene/docgestor-backend/internal/domain/repositories"
)

// EmployeeRepository implementa repositories.EmployeeRepository
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository cria um novo EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) repositories.EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create persiste o funcionário e preenche o ID atribuído.
// Violações de unicidade viram ErrEmployeeAlreadyExists.
func (r *EmployeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	model := r.toModel(employee)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if IsDuplicateKey(err) {
			return domainerrors.ErrEmployeeAlreadyExists
		}
		return err
	}

	employee.ID = model.ID
	employee.Status = model.Status
	return nil
}

func (r *EmployeeRepository) ExistsByEmailOrCPF(ctx context.Context, email, cpf string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&EmployeeModel{}).
		Where("email = ? OR cpf = ?", email, cpf).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*entities.Employee, error) {
	var models []*EmployeeModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores
func (r *EmployeeRepository) toModel(employee *entities.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		CPF:        employee.CPF,
		Position:   employee.Position,
		Department: employee.Department,
		HireDate:   employee.HireDate,
		Status:     employee.Status,
	}
}

func (r *EmployeeRepository) toEntity(model *EmployeeModel) *entities.Employee {
	return &entities.Employee{
		ID:         model.ID,
		Name:       model.Name,
		Email:      model.Email,
		CPF:        model.CPF,
		Position:   model.Position,
		Department: model.Department,
		HireDate:   model.HireDate,
		Status:     model.Status,
	}
}

func (r *EmployeeRepository) toEntities(models []*EmployeeModel) []*entities.Employee {
	employees := make([]*entities.Employee, 0, len(models))
	for _, model := range models {
		employees = append(employees, r.toEntity(model))
	}
	return employees
}
