// Package settlement - общий для игр путь денег: резерв ставки, расчёт раунда и побочные эффекты после коммита
package settlement

import (
	"context"
	"fmt"

	"crypto_luck/internal/ledger"
	"crypto_luck/internal/logger"
	"crypto_luck/internal/metrics"
	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Settler проводит ставки через ledger и сохраняет счёт
type Settler struct {
	accounts    repository.AccountRepository
	leaderboard repository.LeaderboardRepository
	rtp         repository.RTPRepository
	ledger      *ledger.Ledger
}

func New(
	accounts repository.AccountRepository,
	leaderboard repository.LeaderboardRepository,
	rtp repository.RTPRepository,
	l *ledger.Ledger,
) *Settler {
	return &Settler{
		accounts:    accounts,
		leaderboard: leaderboard,
		rtp:         rtp,
		ledger:      l,
	}
}

// Reserve списывает ставку и сохраняет счёт. Вызывается внутри транзакции
func (s *Settler) Reserve(ctx context.Context, acc model.Account, stake decimal.Decimal) (model.Account, error) {
	acc, err := s.ledger.Reserve(acc, stake)
	if err != nil {
		return acc, err
	}
	if err := s.accounts.Save(ctx, acc); err != nil {
		return acc, fmt.Errorf("save account: %w", err)
	}
	return acc, nil
}

// Settle возвращает резерв, применяет итог и пишет запись истории. Вызывается внутри транзакции
func (s *Settler) Settle(ctx context.Context, acc model.Account, reserved, net decimal.Decimal, game string) (model.Account, error) {
	acc, res := s.ledger.Settle(acc, reserved, net, game)
	if err := s.accounts.Save(ctx, acc); err != nil {
		return acc, fmt.Errorf("save account: %w", err)
	}
	if err := s.accounts.AppendResult(ctx, res, s.ledger.HistoryLimit()); err != nil {
		return acc, fmt.Errorf("append result: %w", err)
	}
	return acc, nil
}

// Publish обновляет метрики, RTP и таблицу лидеров после коммита.
// Ошибка кэша лидеров не влияет на результат раунда
func (s *Settler) Publish(ctx context.Context, acc model.Account, game, outcome string, staked, paid decimal.Decimal) {
	metrics.ObserveRound(game, outcome, staked, paid)

	if s.rtp != nil {
		s.rtp.Record(game, staked, paid)
		for _, st := range s.rtp.Snapshot() {
			if st.Game == game {
				metrics.HouseRTP.WithLabelValues(game).Set(st.WindowRTP)
			}
		}
	}

	logger.Log.Info("round settled",
		zap.String("username", acc.Username),
		zap.String("game", game),
		zap.String("outcome", outcome),
		zap.String("staked", staked.String()),
		zap.String("paid", paid.String()),
		zap.String("balance", acc.Balance.String()),
	)

	s.RefreshLeaderboard(ctx, acc)
}

// RefreshLeaderboard обновляет строку игрока в таблице лидеров
func (s *Settler) RefreshLeaderboard(ctx context.Context, acc model.Account) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.Upsert(ctx, model.LeaderboardEntryFrom(acc)); err != nil {
		logger.Log.Warn("leaderboard upsert failed", zap.String("username", acc.Username), zap.Error(err))
	}
}

// Abort фиксирует раунд, прерванный без расчёта
func Abort(username, game string, err error) {
	metrics.RoundsAborted.WithLabelValues(game).Inc()
	logger.Log.Error("round aborted", zap.String("username", username), zap.String("game", game), zap.Error(err))
}
