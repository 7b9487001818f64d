package account

import (
	"context"
	"fmt"

	"crypto_luck/internal/model"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

func (s *serv) Account(ctx context.Context, username string) (model.Account, error) {
	acc, err := s.accounts.Get(ctx, username)
	if err != nil {
		return model.Account{}, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// Stats Сводка счёта, процент выигрыша и последние игры, новые первыми
func (s *serv) Stats(ctx context.Context, username string) (model.AccountStats, error) {
	acc, err := s.accounts.Get(ctx, username)
	if err != nil {
		return model.AccountStats{}, fmt.Errorf("get account: %w", err)
	}
	recent, err := s.accounts.RecentResults(ctx, username, s.gamesConfig.RecentGames())
	if err != nil {
		return model.AccountStats{}, fmt.Errorf("recent results: %w", err)
	}

	return model.AccountStats{
		Account:     acc,
		WinRate:     acc.WinRate(),
		RecentGames: recent,
	}, nil
}

// Leaderboard Игроки по выбранному полю, по умолчанию лучшие первыми
func (s *serv) Leaderboard(ctx context.Context, sortBy model.LeaderboardSort, order model.SortOrder, limit int) ([]model.LeaderboardEntry, error) {
	switch sortBy {
	case "":
		sortBy = model.SortByBalance
	case model.SortByBalance, model.SortByWinRate, model.SortByTotalWins:
	default:
		return nil, fmt.Errorf("unknown sort %q: %w", sortBy, model.ErrInvalidSort)
	}
	switch order {
	case "":
		order = model.OrderDesc
	case model.OrderDesc, model.OrderAsc:
	default:
		return nil, fmt.Errorf("unknown order %q: %w", order, model.ErrInvalidSort)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	limit = min(limit, maxLeaderboardLimit)

	entries, err := s.leaderboard.Top(ctx, sortBy, order, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return entries, nil
}

func (s *serv) HouseRTP() []model.HouseRTP {
	return s.rtp.Snapshot()
}
