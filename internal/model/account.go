package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Теги игр для истории
const (
	GameBlackjack = "blackjack"
	GameRoulette  = "roulette"
	GameSlots     = "slots"
)

// Account - игровой счёт пользователя.
// Меняется только через ledger
type Account struct {
	Username      string
	Balance       decimal.Decimal
	TotalWinnings decimal.Decimal // Сумма положительных результатов
	TotalLosses   decimal.Decimal // Сумма модулей отрицательных результатов
	GamesPlayed   int64
	LastActivity  time.Time
	History       []GameResult // Последние записи, от старых к новым
}

// GameResult - запись истории, после добавления не меняется
type GameResult struct {
	ID        uuid.UUID
	Username  string
	Game      string
	Wagered   decimal.Decimal
	NetDelta  decimal.Decimal
	Timestamp time.Time
}

// AccountStats - статистика игрока для экрана статистики
type AccountStats struct {
	Account     Account
	WinRate     float64 // Процент, округлён до 0.1
	RecentGames []GameResult
}

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Username      string          `mapstructure:"username"`
	Balance       decimal.Decimal `mapstructure:"balance"`
	TotalWinnings decimal.Decimal `mapstructure:"total_winnings"`
	TotalLosses   decimal.Decimal `mapstructure:"total_losses"`
	GamesPlayed   int64           `mapstructure:"games_played"`
	WinRate       float64         `mapstructure:"win_rate"`
}

// LeaderboardSort - поле сортировки таблицы лидеров
type LeaderboardSort string

const (
	SortByBalance   LeaderboardSort = "balance"
	SortByWinRate   LeaderboardSort = "winRate"
	SortByTotalWins LeaderboardSort = "totalWins"
)

// SortOrder - направление сортировки таблицы лидеров
type SortOrder string

const (
	OrderDesc SortOrder = "desc"
	OrderAsc  SortOrder = "asc"
)

type UserClaims struct {
	jwt.RegisteredClaims
}

var hundred = decimal.NewFromInt(100)

// WinRate - доля выигранных монет в процентах, округлена до 0.1
func (a Account) WinRate() float64 {
	if !a.TotalWinnings.IsPositive() {
		return 0
	}
	total := a.TotalWinnings.Add(a.TotalLosses)
	return a.TotalWinnings.Div(total).Mul(hundred).Round(1).InexactFloat64()
}

// LeaderboardEntryFrom - строка таблицы лидеров по счёту
func LeaderboardEntryFrom(a Account) LeaderboardEntry {
	return LeaderboardEntry{
		Username:      a.Username,
		Balance:       a.Balance,
		TotalWinnings: a.TotalWinnings,
		TotalLosses:   a.TotalLosses,
		GamesPlayed:   a.GamesPlayed,
		WinRate:       a.WinRate(),
	}
}
