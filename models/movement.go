package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind kind of a row in the unified movement feed
type MovementKind string

const (
	MovementDeposito      MovementKind = "deposito"
	MovementGasto         MovementKind = "gasto"
	MovementTransferencia MovementKind = "transferencia"
)

// Movement normalized read-only view over deposits, expenses and transfers.
// BalancePosterior is the deposit's pool snapshot or the cajón snapshot otherwise.
type Movement struct {
	ID               uint            `json:"id"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Descripcion      string          `json:"descripcion"`
	Fecha            time.Time       `json:"fecha"`
	BalancePosterior decimal.Decimal `json:"balance_posterior"`
	CreatedAt        time.Time       `json:"created_at"`
	TipoMovimiento   MovementKind    `json:"tipo_movimiento"`
	TipoDeposito     *DepositType    `json:"tipo_deposito"`
	Tipo             *TransferType   `json:"tipo"`
}
