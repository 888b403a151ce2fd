package service

import (
	"errors"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/store"
)

var (
	ErrSalaryNotFound = errors.New("salary structure not found")
	ErrUserNotFound   = errors.New("user not found")
)

type PayrollService interface {
	SlipFor(userID string) (*Payslip, error)
	All() ([]EmployeePayroll, error)
	Update(userID string, salary model.SalaryStructure) (*Payslip, error)
}

// Payslip is a salary structure with the computed totals.
type Payslip struct {
	Salary          model.SalaryStructure `json:"salary"`
	TotalEarnings   float64               `json:"total_earnings"`
	TotalDeductions float64               `json:"total_deductions"`
	NetPayable      float64               `json:"net_payable"`
}

// EmployeePayroll is one row of the payroll management table.
type EmployeePayroll struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	EmployeeID string  `json:"employee_id"`
	Payslip
}

type payrollService struct {
	salaries store.SalaryStore
	users    store.UserStore
}

func NewPayrollService(salaries store.SalaryStore, users store.UserStore) PayrollService {
	return &payrollService{salaries: salaries, users: users}
}

func buildPayslip(s model.SalaryStructure) Payslip {
	return Payslip{
		Salary:          s,
		TotalEarnings:   s.TotalEarnings(),
		TotalDeductions: s.TotalDeductions(),
		NetPayable:      s.NetPayable(),
	}
}

func (p *payrollService) SlipFor(userID string) (*Payslip, error) {
	salary, err := p.salaries.FindByUser(userID)
	if err != nil {
		return nil, ErrSalaryNotFound
	}
	slip := buildPayslip(*salary)
	return &slip, nil
}

// All joins salaries with the directory, in directory order. Users
// without a salary structure are skipped.
func (p *payrollService) All() ([]EmployeePayroll, error) {
	users, err := p.users.FindAll()
	if err != nil {
		return nil, err
	}
	salaries, err := p.salaries.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]EmployeePayroll, 0, len(salaries))
	for _, u := range users {
		salary, ok := salaries[u.ID]
		if !ok {
			continue
		}
		out = append(out, EmployeePayroll{
			UserID:     u.ID,
			Name:       u.Name,
			EmployeeID: u.EmployeeID,
			Payslip:    buildPayslip(salary),
		})
	}
	return out, nil
}

func (p *payrollService) Update(userID string, salary model.SalaryStructure) (*Payslip, error) {
	if _, err := p.users.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}
	if err := p.salaries.Update(userID, salary); err != nil {
		return nil, err
	}
	slip := buildPayslip(salary)
	return &slip, nil
}
