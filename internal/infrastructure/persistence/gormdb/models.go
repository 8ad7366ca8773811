package gormdb

// EmployeeModel é o model GORM para funcionários
type EmployeeModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(100);uniqueIndex:idx_employees_email;not null"`
	CPF        string `gorm:"column:cpf;type:varchar(11);uniqueIndex:idx_employees_cpf;not null"`
	Position   string `gorm:"type:varchar(100);not null"`
	Department string `gorm:"type:varchar(100);not null"`
	HireDate   string `gorm:"column:hire_date;type:varchar(10);not null"`
	Status     string `gorm:"type:varchar(50);default:Pendente"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
