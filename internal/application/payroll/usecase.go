package payroll

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// periodRe valida el período de nómina: YYYY-MM con mes 01..12.
var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PayrollUseCase casos de uso de empleados y pagos de nómina. Un empleado
// cobra a lo sumo una vez por período; el UNIQUE de la tabla lo garantiza
// también bajo concurrencia.
type PayrollUseCase struct {
	empRepo repository.EmployeeRepository
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(empRepo repository.EmployeeRepository) *PayrollUseCase {
	return &PayrollUseCase{empRepo: empRepo}
}

// CreateEmployee registra un empleado.
func (uc *PayrollUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Salary.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	joinedAt := time.Now()
	if in.JoinedAt != "" {
		var err error
		joinedAt, err = time.Parse(dateLayout, in.JoinedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	e := &entity.Employee{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Designation: in.Designation,
		Phone:       in.Phone,
		Salary:      in.Salary,
		JoinedAt:    joinedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.empRepo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetEmployee obtiene un empleado por ID.
func (uc *PayrollUseCase) GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.empRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// UpdateEmployee actualiza los datos del empleado.
func (uc *PayrollUseCase) UpdateEmployee(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.empRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		e.Name = in.Name
	}
	if in.Designation != "" {
		e.Designation = in.Designation
	}
	if in.Phone != "" {
		e.Phone = in.Phone
	}
	if in.Salary.GreaterThan(decimal.Zero) {
		e.Salary = in.Salary
	}
	e.UpdatedAt = time.Now()
	if err := uc.empRepo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// DeleteEmployee elimina un empleado.
func (uc *PayrollUseCase) DeleteEmployee(ctx context.Context, id string) error {
	e, err := uc.empRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.empRepo.Delete(id)
}

// ListEmployees lista empleados con paginación.
func (uc *PayrollUseCase) ListEmployees(ctx context.Context, in dto.PageRequest) ([]dto.EmployeeResponse, error) {
	in.DefaultPage()
	list, err := uc.empRepo.List(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// PaySalary registra el pago de nómina de un empleado para un período.
// Si el monto viene en cero se usa el salario del empleado. Un segundo pago
// del mismo período devuelve ErrDuplicate.
func (uc *PayrollUseCase) PaySalary(ctx context.Context, userID string, in dto.PaySalaryRequest) (*dto.SalaryPaymentResponse, error) {
	if !periodRe.MatchString(in.Period) {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThan(decimal.Zero) || in.Bonus.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.empRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	amount := in.Amount
	if amount.IsZero() {
		amount = e.Salary
	}
	p := &entity.SalaryPayment{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Period:     in.Period,
		Amount:     amount,
		Bonus:      in.Bonus,
		PaidAt:     time.Now(),
		CreatedBy:  userID,
	}
	if err := uc.empRepo.CreatePayment(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// ListPaymentsByEmployee lista el historial de pagos de un empleado.
func (uc *PayrollUseCase) ListPaymentsByEmployee(ctx context.Context, employeeID string) ([]dto.SalaryPaymentResponse, error) {
	e, err := uc.empRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.empRepo.ListPaymentsByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListPaymentsByPeriod lista los pagos de todos los empleados en un período.
func (uc *PayrollUseCase) ListPaymentsByPeriod(ctx context.Context, period string) ([]dto.SalaryPaymentResponse, error) {
	if !periodRe.MatchString(period) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.empRepo.ListPaymentsByPeriod(period)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Phone:       e.Phone,
		Salary:      e.Salary,
		JoinedAt:    e.JoinedAt.Format(dateLayout),
	}
}

func toPaymentResponse(p *entity.SalaryPayment) *dto.SalaryPaymentResponse {
	return &dto.SalaryPaymentResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Period:     p.Period,
		Amount:     p.Amount,
		Bonus:      p.Bonus,
		PaidAt:     p.PaidAt.Format(time.RFC3339),
	}
}

func toPaymentResponses(list []*entity.SalaryPayment) []dto.SalaryPaymentResponse {
	out := make([]dto.SalaryPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out
}
