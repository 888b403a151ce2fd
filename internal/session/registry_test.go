package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dayflow-hrms/internal/model"
)

func TestCreateResetsEffectiveRole(t *testing.T) {
	r := NewRegistry()

	s := r.Create("u1", model.RoleAdmin)
	assert.Equal(t, model.RoleAdmin, s.Role)
	assert.Equal(t, model.RoleAdmin, s.EffectiveRole)

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := NewRegistry()
	s := r.Create("u1", model.RoleAdmin)

	r.Delete(s.ID)
	r.Delete(s.ID)
	r.Delete(uuid.New())

	_, ok := r.Get(s.ID)
	assert.False(t, ok)
}

func TestSetEffectiveRoleAdminToggle(t *testing.T) {
	r := NewRegistry()
	s := r.Create("u1", model.RoleAdmin)

	role, err := r.SetEffectiveRole(s.ID, model.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, role)

	role, err = r.SetEffectiveRole(s.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)
}

func TestSetEffectiveRoleIgnoredForEmployees(t *testing.T) {
	r := NewRegistry()
	s := r.Create("u2", model.RoleEmployee)

	role, err := r.SetEffectiveRole(s.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, role)

	got, _ := r.Get(s.ID)
	assert.Equal(t, model.RoleEmployee, got.EffectiveRole)
}

func TestSetEffectiveRoleUnknownSession(t *testing.T) {
	r := NewRegistry()

	_, err := r.SetEffectiveRole(uuid.New(), model.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPunchState(t *testing.T) {
	r := NewRegistry()
	s := r.Create("u2", model.RoleEmployee)

	at := "09:05"
	require.NoError(t, r.SetPunch(s.ID, true, &at))

	got, _ := r.Get(s.ID)
	assert.True(t, got.CheckedIn)
	require.NotNil(t, got.CheckInAt)
	assert.Equal(t, "09:05", *got.CheckInAt)

	require.NoError(t, r.SetPunch(s.ID, false, nil))
	got, _ = r.Get(s.ID)
	assert.False(t, got.CheckedIn)
	assert.Nil(t, got.CheckInAt)
}
