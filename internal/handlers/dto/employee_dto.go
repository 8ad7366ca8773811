package dto

import (
	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

// CreateEmployeeRequest representa a requisição para cadastrar um funcionário.
// Ponteiros distinguem campo ausente (ou null) de string vazia.
type CreateEmployeeRequest struct {
	Name       *string `json:"name" binding:"required,max=100"`
	Email      *string `json:"email" binding:"required,max=100"`
	CPF        *string `json:"cpf" binding:"required,max=11"`
	Position   *string `json:"position" binding:"required,max=100"`
	Department *string `json:"department" binding:"required,max=100"`
	HireDate   *string `json:"hireDate" binding:"required,max=10"`
	Status     *string `json:"status" binding:"omitempty,max=50"`
}

// EmployeeResponse representa a resposta de um funcionário
type EmployeeResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate"`
	Status     string `json:"status"`
}

// ToEmployeeResponse converte uma entidade Employee para EmployeeResponse
func ToEmployeeResponse(employee *entities.Employee) EmployeeResponse {
	return EmployeeResponse{
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

// ToEmployeeResponses converte uma lista de entidades; nunca retorna nil
func ToEmployeeResponses(employees []*entities.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = ToEmployeeResponse(employee)
	}
	return responses
}
