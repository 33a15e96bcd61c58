package services

import (
	"testing"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []entity.OrderStatus{
	entity.StatusPendente,
	entity.StatusConfirmado,
	entity.StatusPreparando,
	entity.StatusSaiuParaEntrega,
	entity.StatusEntregue,
	entity.StatusCancelado,
}

func TestValidateTransitionTable(t *testing.T) {
	allowed := map[entity.OrderStatus][]entity.OrderStatus{
		entity.StatusPendente:        {entity.StatusConfirmado, entity.StatusCancelado},
		entity.StatusConfirmado:      {entity.StatusPreparando, entity.StatusCancelado},
		entity.StatusPreparando:      {entity.StatusSaiuParaEntrega},
		entity.StatusSaiuParaEntrega: {entity.StatusEntregue},
		entity.StatusEntregue:        {},
		entity.StatusCancelado:       {},
	}

	// every (from, to) pair: allowed passes, anything else fails with the
	// typed transition error
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			ok := false
			for _, next := range allowed[from] {
				if next == to {
					ok = true
				}
			}

			err := ValidateTransition(from, to)
			if ok {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				continue
			}

			require.Error(t, err, "%s -> %s should be rejected", from, to)
			var te *InvalidTransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, from, te.From)
			assert.Equal(t, to, te.To)
		}
	}
}

func TestValidateCancellation(t *testing.T) {
	assert.NoError(t, ValidateCancellation(entity.StatusPendente))
	assert.NoError(t, ValidateCancellation(entity.StatusConfirmado))

	for _, st := range []entity.OrderStatus{
		entity.StatusPreparando,
		entity.StatusSaiuParaEntrega,
		entity.StatusEntregue,
		entity.StatusCancelado,
	} {
		err := ValidateCancellation(st)
		require.Error(t, err, "cancel from %s should be rejected", st)
		var ce *NotCancellableError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, st, ce.Status)
	}
}
