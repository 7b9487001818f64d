package account

import (
	"crypto_luck/internal/config"
	"crypto_luck/internal/repository"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/settlement"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	accounts    repository.AccountRepository
	leaderboard repository.LeaderboardRepository
	rtp         repository.RTPRepository
	settler     *settlement.Settler
	jwtConfig   config.JWTConfig
	gamesConfig config.GamesConfig
	txManager   trm.Manager
}

// NewAccountService Вход по имени, статистика и таблица лидеров
func NewAccountService(
	accounts repository.AccountRepository,
	leaderboard repository.LeaderboardRepository,
	rtp repository.RTPRepository,
	settler *settlement.Settler,
	jwtConfig config.JWTConfig,
	gamesConfig config.GamesConfig,
	txManager trm.Manager,
) service.AccountService {
	return &serv{
		accounts:    accounts,
		leaderboard: leaderboard,
		rtp:         rtp,
		settler:     settler,
		jwtConfig:   jwtConfig,
		gamesConfig: gamesConfig,
		txManager:   txManager,
	}
}
