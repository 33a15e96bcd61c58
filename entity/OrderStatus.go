package entity

import "fmt"

// OrderStatus segue o ciclo de vida do pedido:
// PENDENTE → CONFIRMADO → PREPARANDO → SAIU_PARA_ENTREGA → ENTREGUE,
// com CANCELADO alcançável a partir de PENDENTE ou CONFIRMADO.
type OrderStatus string

const (
	StatusPendente        OrderStatus = "PENDENTE"
	StatusConfirmado      OrderStatus = "CONFIRMADO"
	StatusPreparando      OrderStatus = "PREPARANDO"
	StatusSaiuParaEntrega OrderStatus = "SAIU_PARA_ENTREGA"
	StatusEntregue        OrderStatus = "ENTREGUE"
	StatusCancelado       OrderStatus = "CANCELADO"
)

// ParseOrderStatus rejects anything outside the known set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPendente, StatusConfirmado, StatusPreparando,
		StatusSaiuParaEntrega, StatusEntregue, StatusCancelado:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

func (s OrderStatus) String() string { return string(s) }
