package model

// SalaryStructure is the monthly salary breakdown for one user.
type SalaryStructure struct {
	Basic   float64 `json:"basic"`
	HRA     float64 `json:"hra"`
	Special float64 `json:"special"`
	PF      float64 `json:"pf"`
	Tax     float64 `json:"tax"`
}

// TotalEarnings is the sum of all earning components.
func (s SalaryStructure) TotalEarnings() float64 {
	return s.Basic + s.HRA + s.Special
}

// TotalDeductions is the sum of all deduction components.
func (s SalaryStructure) TotalDeductions() float64 {
	return s.PF + s.Tax
}

// NetPayable is earnings minus deductions.
func (s SalaryStructure) NetPayable() float64 {
	return s.TotalEarnings() - s.TotalDeductions()
}
