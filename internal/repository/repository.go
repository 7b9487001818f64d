package repository

import (
	"context"

	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// AccountRepository - справочник счетов
type AccountRepository interface {
	// Create создаёт счёт, если его ещё нет. Возвращает true, если счёт создан
	Create(ctx context.Context, acc model.Account) (bool, error)
	Get(ctx context.Context, username string) (model.Account, error)
	// GetForUpdate блокирует строку счёта до конца транзакции
	GetForUpdate(ctx context.Context, username string) (model.Account, error)
	Save(ctx context.Context, acc model.Account) error
	Touch(ctx context.Context, username string) error

	// AppendResult пишет запись и оставляет не больше keep последних. 0 - без ограничения
	AppendResult(ctx context.Context, res model.GameResult, keep int) error
	RecentResults(ctx context.Context, username string, limit int) ([]model.GameResult, error)
}

// GameStateRepository - незавершённые раунды между запросами
type GameStateRepository interface {
	GetBlackjack(ctx context.Context, username string) (model.BlackjackRound, error)
	SaveBlackjack(ctx context.Context, username string, round model.BlackjackRound) error
	DeleteBlackjack(ctx context.Context, username string) error

	GetRouletteSlip(ctx context.Context, username string) ([]model.Bet, error)
	SaveRouletteSlip(ctx context.Context, username string, slip []model.Bet) error
}

// LeaderboardRepository - кэш таблицы лидеров
type LeaderboardRepository interface {
	Upsert(ctx context.Context, entry model.LeaderboardEntry) error
	Top(ctx context.Context, sortBy model.LeaderboardSort, order model.SortOrder, limit int) ([]model.LeaderboardEntry, error)
}

// RTPRepository - статистика возврата игрокам по играм
type RTPRepository interface {
	Record(game string, staked, paid decimal.Decimal)
	Snapshot() []model.HouseRTP
}
