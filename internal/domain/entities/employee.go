package entities

// DefaultEmployeeStatus é o status atribuído quando nenhum é informado
const DefaultEmployeeStatus = "Pendente"

// Employee representa um funcionário cadastrado no RH
type Employee struct {
	ID         uint
	Name       string
	Email      string
	CPF        string
	Position   string
	Department string
	HireDate   string // YYYY-MM-DD, armazenado como texto
	Status     string
}

// ApplyDefaults preenche campos opcionais não informados
func (e *Employee) ApplyDefaults() {
	if e.Status == "" {
		e.Status = DefaultEmployeeStatus
	}
}
