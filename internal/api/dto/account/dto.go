package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

type AccountResponse struct {
	Username      string          `json:"username"`
	Balance       decimal.Decimal `json:"balance"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
	TotalLosses   decimal.Decimal `json:"total_losses"`
	GamesPlayed   int64           `json:"games_played"`
	LastActivity  time.Time       `json:"last_activity"`
}

type GameResult struct {
	ID        string          `json:"id"`
	Game      string          `json:"game"`
	Wagered   decimal.Decimal `json:"wagered"`
	NetDelta  decimal.Decimal `json:"net_delta"`
	Timestamp time.Time       `json:"timestamp"`
}

type StatsResponse struct {
	AccountResponse
	WinRate     float64      `json:"win_rate"`     // Процент
	RecentGames []GameResult `json:"recent_games"` // Новые первыми
}

type LeaderboardEntry struct {
	Rank          int             `json:"rank"`
	Username      string          `json:"username"`
	Balance       decimal.Decimal `json:"balance"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
	GamesPlayed   int64           `json:"games_played"`
	WinRate       float64         `json:"win_rate"`
}

type LeaderboardResponse struct {
	Sort    string             `json:"sort"`
	Order   string             `json:"order"`
	Entries []LeaderboardEntry `json:"entries"`
}
