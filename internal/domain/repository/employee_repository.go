package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee y pagos de nómina.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Employee, error)

	// CreatePayment persiste un pago de nómina. Devuelve domain.ErrDuplicate
	// si ya existe un pago para el mismo (empleado, período).
	CreatePayment(p *entity.SalaryPayment) error
	ListPaymentsByEmployee(employeeID string) ([]*entity.SalaryPayment, error)
	ListPaymentsByPeriod(period string) ([]*entity.SalaryPayment, error)
}
