package service

import "errors"

// Error categories. Every error returned by the ledger for a rejected request
// wraps exactly one of them; anything else is an unexpected failure.
var (
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violated")
)

// Error a rejected request with a user facing message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrInvalidAmount       = newError(ErrValidation, "la cantidad debe ser mayor que 0")
	ErrNegativeAmount      = newError(ErrValidation, "el monto no puede ser negativo")
	ErrDescriptionRequired = newError(ErrValidation, "la descripción es obligatoria")
	ErrDescriptionTooLong  = newError(ErrValidation, "la descripción no puede superar 255 caracteres")
	ErrNameRequired        = newError(ErrValidation, "el nombre es obligatorio")
	ErrNameTooLong         = newError(ErrValidation, "el nombre no puede superar 255 caracteres")
	ErrInvalidPool         = newError(ErrValidation, "destino inválido, debe ser banco o cajon")
	ErrInvalidTransferType = newError(ErrValidation, "tipo inválido, debe ser banco_a_cajon o cajon_a_banco")
	ErrInvalidExpenseType  = newError(ErrValidation, "tipo de gasto inválido")
	ErrInvalidMonth        = newError(ErrValidation, "formato de mes inválido, se espera YYYY-MM")
	ErrInvalidDate         = newError(ErrValidation, "formato de fecha inválido, se espera YYYY-MM-DD")

	ErrNotOwner           = newError(ErrForbidden, "no autorizado")
	ErrDefaultExpenseType = newError(ErrForbidden, "no se pueden eliminar tipos de gastos predeterminados")

	ErrNoBalance           = newError(ErrNotFound, "el usuario todavía no tiene balance")
	ErrExpenseNotFound     = newError(ErrNotFound, "gasto no encontrado")
	ErrTransferNotFound    = newError(ErrNotFound, "transferencia no encontrada")
	ErrExpenseTypeNotFound = newError(ErrNotFound, "tipo de gasto no encontrado")
	ErrBudgetNotFound      = newError(ErrNotFound, "presupuesto no encontrado")

	ErrExpenseOutsideWindow  = newError(ErrBusinessRule, "solo se pueden eliminar los últimos 10 gastos")
	ErrTransferOutsideWindow = newError(ErrBusinessRule, "solo se pueden eliminar las últimas 10 transferencias")
	ErrInsufficientBanco     = newError(ErrBusinessRule, "fondos insuficientes en el banco")
	ErrInsufficientCajon     = newError(ErrBusinessRule, "fondos insuficientes en el cajón")
	ErrExpenseTypeInUse      = newError(ErrBusinessRule, "no se puede eliminar un tipo de gasto que tiene gastos asociados")
	ErrBudgetExists          = newError(ErrBusinessRule, "ya existe un presupuesto activo para este mes")
)
