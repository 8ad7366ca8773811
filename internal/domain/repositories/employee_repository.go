package repositories

import (
	"context"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

// EmployeeRepository define a interface para persistência de funcionários
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entities.Employee) error
	ExistsByEmailOrCPF(ctx context.Context, email, cpf string) (bool, error)
	// List retorna todos os funcionários na ordem de criação
	List(ctx context.Context) ([]*entities.Employee, error)
}
