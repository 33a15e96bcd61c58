package services

import (
	"github.com/PatrickBizetto/delivery-api-patrick/entity"
)

// orderTransitions is the full lifecycle table. ENTREGUE and CANCELADO are
// terminal and therefore absent.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPendente:        {entity.StatusConfirmado, entity.StatusCancelado},
	entity.StatusConfirmado:      {entity.StatusPreparando, entity.StatusCancelado},
	entity.StatusPreparando:      {entity.StatusSaiuParaEntrega},
	entity.StatusSaiuParaEntrega: {entity.StatusEntregue},
}

// ValidateTransition returns nil when from → to is allowed by the table.
// It never touches storage; callers apply the change atomically themselves.
func ValidateTransition(from, to entity.OrderStatus) error {
	for _, next := range orderTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// ValidateCancellation allows cancelling only before the kitchen starts.
func ValidateCancellation(current entity.OrderStatus) error {
	if current == entity.StatusPendente || current == entity.StatusConfirmado {
		return nil
	}
	return &NotCancellableError{Status: current}
}
