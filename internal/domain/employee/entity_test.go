package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_IsActive(t *testing.T) {
	deleted := time.Now()

	assert.True(t, Employee{EmploymentStatus: EmploymentStatusActive}.IsActive())
	assert.False(t, Employee{EmploymentStatus: EmploymentStatusResigned}.IsActive())
	assert.False(t, Employee{EmploymentStatus: EmploymentStatusActive, DeletedAt: &deleted}.IsActive())
}

func TestEmployee_BaseSalaryFloat(t *testing.T) {
	assert.Nil(t, Employee{}.BaseSalaryFloat())

	salary := decimal.NewFromInt(30000)
	got := Employee{BaseSalary: &salary}.BaseSalaryFloat()
	require.NotNil(t, got)
	assert.Equal(t, 30000.0, *got)
}
