package roulette

import (
	"context"
	"fmt"

	"crypto_luck/internal/engine/roulette"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// Bets Текущий купон игрока
func (s *serv) Bets(ctx context.Context, username string) ([]model.Bet, error) {
	if _, err := s.accounts.Get(ctx, username); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	slip, err := s.states.GetRouletteSlip(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get slip: %w", err)
	}
	return slip, nil
}

// PlaceBet Добавляет ставку в купон. Баланс не списывается до спина
func (s *serv) PlaceBet(ctx context.Context, username string, betType model.BetType, number int, amount decimal.Decimal) ([]model.Bet, error) {
	bet, err := s.wheel.NewBet(betType, number, amount)
	if err != nil {
		return nil, err
	}

	var slip []model.Bet
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := s.accounts.GetForUpdate(txCtx, username)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		current, err := s.states.GetRouletteSlip(txCtx, username)
		if err != nil {
			return fmt.Errorf("get slip: %w", err)
		}

		slip, err = roulette.PlaceBet(current, bet, acc.Balance)
		if err != nil {
			return err
		}
		if err := s.states.SaveRouletteSlip(txCtx, username, slip); err != nil {
			return fmt.Errorf("save slip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slip, nil
}

// ClearBets Очищает купон
func (s *serv) ClearBets(ctx context.Context, username string) ([]model.Bet, error) {
	slip := roulette.ClearBets()
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accounts.GetForUpdate(txCtx, username); err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		if err := s.states.SaveRouletteSlip(txCtx, username, slip); err != nil {
			return fmt.Errorf("save slip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slip, nil
}
