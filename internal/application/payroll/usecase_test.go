package payroll_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// fakeEmployeeRepo almacén en memoria con el UNIQUE (empleado, período) del
// repositorio real.
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*entity.Employee
	payments  map[string]*entity.SalaryPayment // clave employeeID+period
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*entity.Employee),
		payments:  make(map[string]*entity.SalaryPayment),
	}
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) Update(e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CreatePayment(p *entity.SalaryPayment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := p.EmployeeID + "|" + p.Period
	if _, exists := f.payments[key]; exists {
		return domain.ErrDuplicate
	}
	cp := *p
	f.payments[key] = &cp
	return nil
}

func (f *fakeEmployeeRepo) ListPaymentsByEmployee(employeeID string) ([]*entity.SalaryPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SalaryPayment
	for _, p := range f.payments {
		if p.EmployeeID == employeeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListPaymentsByPeriod(period string) ([]*entity.SalaryPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SalaryPayment
	for _, p := range f.payments {
		if p.Period == period {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newPayrollFixture(t *testing.T) (*payroll.PayrollUseCase, string) {
	t.Helper()
	uc := payroll.NewPayrollUseCase(newFakeEmployeeRepo())
	emp, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Name:        "Laura Méndez",
		Designation: "vendedora",
		Salary:      decimal.NewFromInt(1500000),
	})
	require.NoError(t, err)
	return uc, emp.ID
}

func TestPaySalary_UsaSalarioPorDefecto(t *testing.T) {
	uc, empID := newPayrollFixture(t)

	p, err := uc.PaySalary(context.Background(), "admin-1", dto.PaySalaryRequest{
		EmployeeID: empID,
		Period:     "2026-08",
		Bonus:      decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(1500000)),
		"monto en cero debe tomar el salario del empleado")
	assert.True(t, p.Bonus.Equal(decimal.NewFromInt(100000)))
}

// Un empleado cobra a lo sumo una vez por período.
func TestPaySalary_PeriodoDuplicado(t *testing.T) {
	uc, empID := newPayrollFixture(t)
	ctx := context.Background()

	_, err := uc.PaySalary(ctx, "admin-1", dto.PaySalaryRequest{EmployeeID: empID, Period: "2026-08"})
	require.NoError(t, err)

	_, err = uc.PaySalary(ctx, "admin-1", dto.PaySalaryRequest{EmployeeID: empID, Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el segundo pago del mismo período debe fallar")

	// El mes siguiente sí procede.
	_, err = uc.PaySalary(ctx, "admin-1", dto.PaySalaryRequest{EmployeeID: empID, Period: "2026-09"})
	assert.NoError(t, err)
}

func TestPaySalary_PeriodoInvalido(t *testing.T) {
	uc, empID := newPayrollFixture(t)
	ctx := context.Background()

	cases := []string{"2026-13", "2026-00", "08-2026", "2026/08", "202608", ""}
	for _, period := range cases {
		_, err := uc.PaySalary(ctx, "admin-1", dto.PaySalaryRequest{EmployeeID: empID, Period: period})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "período %q debe rechazarse", period)
	}
}

func TestPaySalary_EmpleadoInexistente(t *testing.T) {
	uc, _ := newPayrollFixture(t)

	_, err := uc.PaySalary(context.Background(), "admin-1", dto.PaySalaryRequest{
		EmployeeID: "no-existe",
		Period:     "2026-08",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPaymentsByPeriod(t *testing.T) {
	uc, empID := newPayrollFixture(t)
	ctx := context.Background()

	_, err := uc.PaySalary(ctx, "admin-1", dto.PaySalaryRequest{EmployeeID: empID, Period: "2026-08"})
	require.NoError(t, err)

	list, err := uc.ListPaymentsByPeriod(ctx, "2026-08")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, empID, list[0].EmployeeID)

	empty, err := uc.ListPaymentsByPeriod(ctx, "2026-07")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
