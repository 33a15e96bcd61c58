package services

import (
	"testing"

	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientService(t *testing.T) *ClientService {
	t.Helper()
	return NewClientService(repository.NewClientRepository(newTestDB(t)))
}

func TestClientCreateNormalizesEmail(t *testing.T) {
	svc := newClientService(t)

	c, err := svc.Create(&ClientReq{Name: " João Silva ", Email: " Joao@Email.com "})
	require.NoError(t, err)
	assert.Equal(t, "João Silva", c.Name)
	assert.Equal(t, "joao@email.com", c.Email)
	assert.True(t, c.Active)
}

func TestClientCreateDuplicateEmail(t *testing.T) {
	svc := newClientService(t)

	_, err := svc.Create(&ClientReq{Name: "João Silva", Email: "joao@email.com"})
	require.NoError(t, err)

	_, err = svc.Create(&ClientReq{Name: "Outro João", Email: "JOAO@email.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestClientUpdateEmailConflict(t *testing.T) {
	svc := newClientService(t)

	a, err := svc.Create(&ClientReq{Name: "João Silva", Email: "joao@email.com"})
	require.NoError(t, err)
	_, err = svc.Create(&ClientReq{Name: "Maria Santos", Email: "maria@email.com"})
	require.NoError(t, err)

	// keeping your own email is fine
	_, err = svc.Update(a.ID, &ClientReq{Name: "João S.", Email: "joao@email.com"})
	require.NoError(t, err)

	// taking someone else's is not
	_, err = svc.Update(a.ID, &ClientReq{Name: "João S.", Email: "maria@email.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestClientToggleActiveIsSoftDelete(t *testing.T) {
	svc := newClientService(t)

	c, err := svc.Create(&ClientReq{Name: "João Silva", Email: "joao@email.com"})
	require.NoError(t, err)

	off, err := svc.ToggleActive(c.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	// still readable, just out of the active listing
	got, err := svc.Get(c.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	active, err := svc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestClientGetNotFound(t *testing.T) {
	svc := newClientService(t)
	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
