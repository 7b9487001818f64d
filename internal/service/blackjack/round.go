package blackjack

import (
	"context"
	"errors"
	"fmt"

	"crypto_luck/internal/engine/blackjack"
	"crypto_luck/internal/model"
	"crypto_luck/internal/service/settlement"

	"github.com/shopspring/decimal"
)

// Действие над столом внутри транзакции
type action func(g *blackjack.Game, acc model.Account) (model.RoundState, error)

// State Текущий раунд игрока
func (s *serv) State(ctx context.Context, username string) (model.RoundState, error) {
	acc, err := s.accounts.Get(ctx, username)
	if err != nil {
		return model.RoundState{}, fmt.Errorf("get account: %w", err)
	}
	round, err := s.states.GetBlackjack(ctx, username)
	if err != nil {
		return model.RoundState{}, fmt.Errorf("get round: %w", err)
	}

	st := blackjack.Restore(round, s.opts...).View()
	st.Balance = acc.Balance
	return st, nil
}

// Start Принимает ставку, списывает её и раздаёт карты
func (s *serv) Start(ctx context.Context, username string, bet decimal.Decimal) (model.RoundState, error) {
	return s.play(ctx, username, func(g *blackjack.Game, acc model.Account) (model.RoundState, error) {
		src := s.rng.SourceFor(username, model.GameBlackjack, acc.GamesPlayed)
		return g.Start(bet, acc.Balance, src)
	})
}

func (s *serv) Hit(ctx context.Context, username string) (model.RoundState, error) {
	return s.play(ctx, username, func(g *blackjack.Game, _ model.Account) (model.RoundState, error) {
		return g.Hit()
	})
}

func (s *serv) Stand(ctx context.Context, username string) (model.RoundState, error) {
	return s.play(ctx, username, func(g *blackjack.Game, _ model.Account) (model.RoundState, error) {
		return g.Stand()
	})
}

func (s *serv) NewRound(ctx context.Context, username string) (model.RoundState, error) {
	return s.play(ctx, username, func(g *blackjack.Game, _ model.Account) (model.RoundState, error) {
		return g.NewRound()
	})
}

// play выполняет действие под блокировкой счёта.
// Ставка списывается при переходе в playing, расчёт идёт при переходе в finished
func (s *serv) play(ctx context.Context, username string, act action) (model.RoundState, error) {
	var (
		st      model.RoundState
		settled *model.Account
		aborted error
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := s.accounts.GetForUpdate(txCtx, username)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		round, err := s.states.GetBlackjack(txCtx, username)
		if err != nil {
			return fmt.Errorf("get round: %w", err)
		}

		g := blackjack.Restore(round, s.opts...)
		before := g.Phase()

		st, err = act(g, acc)
		if errors.Is(err, model.ErrEmptyDeck) {
			// Раунд сброшен без расчёта, состояние удаляем и коммитим
			aborted = err
			return s.states.DeleteBlackjack(txCtx, username)
		}
		if err != nil {
			return err
		}

		if before == model.PhaseBetting && g.Phase() != model.PhaseBetting {
			if acc, err = s.settler.Reserve(txCtx, acc, st.Bet); err != nil {
				return err
			}
		}
		if before != model.PhaseFinished && g.Phase() == model.PhaseFinished {
			if acc, err = s.settler.Settle(txCtx, acc, st.Bet, st.NetDelta, model.GameBlackjack); err != nil {
				return err
			}
			settled = &acc
		}

		if err := s.states.SaveBlackjack(txCtx, username, g.Round()); err != nil {
			return fmt.Errorf("save round: %w", err)
		}
		st.Balance = acc.Balance
		return nil
	})
	if err != nil {
		return model.RoundState{}, err
	}

	if aborted != nil {
		settlement.Abort(username, model.GameBlackjack, aborted)
		return model.RoundState{}, aborted
	}
	if settled != nil {
		s.settler.Publish(ctx, *settled, model.GameBlackjack, string(st.Outcome), st.Bet, st.Credited)
	}
	return st, nil
}
