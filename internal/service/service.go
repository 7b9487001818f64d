package service

import (
	"context"

	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

type AccountService interface {
	// Login создаёт счёт при первом входе и выдаёт токен доступа
	Login(ctx context.Context, username string) (accessToken string, acc model.Account, err error)
	Account(ctx context.Context, username string) (model.Account, error)
	Stats(ctx context.Context, username string) (model.AccountStats, error)
	Leaderboard(ctx context.Context, sortBy model.LeaderboardSort, order model.SortOrder, limit int) ([]model.LeaderboardEntry, error)
	HouseRTP() []model.HouseRTP
}

type BlackjackService interface {
	State(ctx context.Context, username string) (model.RoundState, error)
	Start(ctx context.Context, username string, bet decimal.Decimal) (model.RoundState, error)
	Hit(ctx context.Context, username string) (model.RoundState, error)
	Stand(ctx context.Context, username string) (model.RoundState, error)
	NewRound(ctx context.Context, username string) (model.RoundState, error)
}

type RouletteService interface {
	Bets(ctx context.Context, username string) ([]model.Bet, error)
	PlaceBet(ctx context.Context, username string, betType model.BetType, number int, amount decimal.Decimal) ([]model.Bet, error)
	ClearBets(ctx context.Context, username string) ([]model.Bet, error)
	Spin(ctx context.Context, username string) (model.RouletteSpinResult, error)
}

type SlotService interface {
	Spin(ctx context.Context, username string, req model.SlotSpin) (model.SlotSpinResult, error)
}
