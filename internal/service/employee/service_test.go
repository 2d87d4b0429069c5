package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/memory"
)

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active employee", func(t *testing.T) {
		service := NewEmployeeService(memory.NewEmployeeRepository())

		resp, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FullName:     "Ana Souza",
			Registration: "REG-001",
			Position:     "Analyst",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.True(t, resp.Active)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		service := NewEmployeeService(memory.NewEmployeeRepository())

		req := employee.CreateEmployeeRequest{FullName: "Ana Souza", Registration: "REG-001"}
		_, err := service.CreateEmployee(ctx, req)
		require.NoError(t, err)

		req.FullName = "Bruno Lima"
		_, err = service.CreateEmployee(ctx, req)
		assert.ErrorIs(t, err, employee.ErrRegistrationExists)
	})

	t.Run("invalid registration fails validation", func(t *testing.T) {
		service := NewEmployeeService(memory.NewEmployeeRepository())

		_, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FullName:     "Ana Souza",
			Registration: "reg 001",
		})
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "registration")
	})
}

func TestDeactivateEmployee(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	service := NewEmployeeService(repo)

	resp, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:     "Ana Souza",
		Registration: "REG-001",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeactivateEmployee(ctx, resp.ID))

	stored, err := service.GetEmployee(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	active, err := service.ListEmployees(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}
