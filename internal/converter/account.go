package converter

import (
	"crypto_luck/internal/api/dto/account"
	"crypto_luck/internal/model"
)

func ToAccountResponse(acc model.Account) account.AccountResponse {
	return account.AccountResponse{
		Username:      acc.Username,
		Balance:       acc.Balance,
		TotalWinnings: acc.TotalWinnings,
		TotalLosses:   acc.TotalLosses,
		GamesPlayed:   acc.GamesPlayed,
		LastActivity:  acc.LastActivity,
	}
}

func ToStatsResponse(stats model.AccountStats) account.StatsResponse {
	games := make([]account.GameResult, 0, len(stats.RecentGames))
	for _, g := range stats.RecentGames {
		games = append(games, account.GameResult{
			ID:        g.ID.String(),
			Game:      g.Game,
			Wagered:   g.Wagered,
			NetDelta:  g.NetDelta,
			Timestamp: g.Timestamp,
		})
	}
	return account.StatsResponse{
		AccountResponse: ToAccountResponse(stats.Account),
		WinRate:         stats.WinRate,
		RecentGames:     games,
	}
}

func ToLeaderboardResponse(sortBy model.LeaderboardSort, order model.SortOrder, entries []model.LeaderboardEntry) account.LeaderboardResponse {
	out := make([]account.LeaderboardEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, account.LeaderboardEntry{
			Rank:          i + 1,
			Username:      e.Username,
			Balance:       e.Balance,
			TotalWinnings: e.TotalWinnings,
			GamesPlayed:   e.GamesPlayed,
			WinRate:       e.WinRate,
		})
	}
	return account.LeaderboardResponse{
		Sort:    string(sortBy),
		Order:   string(order),
		Entries: out,
	}
}
