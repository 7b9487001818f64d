package model

import "errors"

var (
	// ErrInsufficientFunds - ставка или сумма ставок больше баланса
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidState - действие вызвано в недопустимой фазе игры
	ErrInvalidState = errors.New("invalid state")
	// ErrNoBets - спин рулетки без ставок
	ErrNoBets = errors.New("no bets placed")
	// ErrEmptyDeck - попытка взять карту из пустой колоды
	ErrEmptyDeck = errors.New("empty deck")
	// ErrInvalidBet - ставка не положительная или с неверными параметрами
	ErrInvalidBet = errors.New("invalid bet")

	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidSort - неизвестное поле сортировки таблицы лидеров
	ErrInvalidSort = errors.New("invalid sort")
)
