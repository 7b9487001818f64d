package app

import (
	"context"
	"net/http"

	accountAPI "crypto_luck/internal/api/account"
	blackjackAPI "crypto_luck/internal/api/blackjack"
	rouletteAPI "crypto_luck/internal/api/roulette"
	slotAPI "crypto_luck/internal/api/slot"
	"crypto_luck/internal/config"
	"crypto_luck/internal/config/env"
	"crypto_luck/internal/engine/rng"
	rouletteEngine "crypto_luck/internal/engine/roulette"
	slotEngine "crypto_luck/internal/engine/slot"
	"crypto_luck/internal/ledger"
	"crypto_luck/internal/logger"
	"crypto_luck/internal/middleware"
	"crypto_luck/internal/repository"
	"crypto_luck/internal/repository/account_repo"
	"crypto_luck/internal/repository/game_state_repo"
	"crypto_luck/internal/repository/leaderboard_repo"
	"crypto_luck/internal/repository/memory_repo"
	"crypto_luck/internal/repository/rtp_repo"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/account"
	"crypto_luck/internal/service/blackjack"
	"crypto_luck/internal/service/roulette"
	"crypto_luck/internal/service/settlement"
	"crypto_luck/internal/service/slot"
	"crypto_luck/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	// Configs
	httpCfg   config.HTTPConfig
	pgCfg     config.PGConfig
	jwtCfg    config.JWTConfig
	redisCfg  config.RedisConfig
	loggerCfg config.LoggerConfig
	rngCfg    config.RNGConfig
	gamesCfg  config.GamesConfig

	// Storage. Без PG_DSN и REDIS_ADDR данные живут в памяти процесса
	pgChecked    bool
	redisChecked bool
	dbClient     *pgxpool.Pool
	redisClient  *redis.Client
	memStore     *memory_repo.Store

	//TXManager
	txManager trm.Manager

	// Repositories
	accountRepo     repository.AccountRepository
	gameStateRepo   repository.GameStateRepository
	leaderboardRepo repository.LeaderboardRepository
	rtpRepo         repository.RTPRepository

	// Game bits
	rngFactory rng.Factory
	settler    *settlement.Settler

	accountServ   service.AccountService
	blackjackServ service.BlackjackService
	rouletteServ  service.RouletteService
	slotServ      service.SlotService

	accountHand   *accountAPI.Handler
	blackjackHand *blackjackAPI.Handler
	rouletteHand  *rouletteAPI.Handler
	slotHand      *slotAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		sp.loggerCfg = env.NewLoggerConfig()
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) RNGCfg() config.RNGConfig {
	if sp.rngCfg == nil {
		cfg, err := env.NewRNGConfig()
		if err != nil {
			panic("failed to get rng config: " + err.Error())
		}
		sp.rngCfg = cfg
	}
	return sp.rngCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

// PgCfg возвращает nil, если PG_DSN не задан
func (sp *ServiceProvider) PgCfg() config.PGConfig {
	if !sp.pgChecked {
		sp.pgChecked = true
		cfg, err := env.NewPGConfig()
		if err != nil {
			logger.Log.Warn("postgres disabled, using in-memory storage", zap.Error(err))
		} else {
			sp.pgCfg = cfg
		}
	}
	return sp.pgCfg
}

// RedisCfg возвращает nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if !sp.redisChecked {
		sp.redisChecked = true
		cfg, err := env.NewRedisConfig()
		if err != nil {
			logger.Log.Warn("redis disabled, using in-memory leaderboard", zap.Error(err))
		} else {
			sp.redisCfg = cfg
		}
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgCfg().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) MemStore() *memory_repo.Store {
	if sp.memStore == nil {
		sp.memStore = memory_repo.NewStore()
	}
	return sp.memStore
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.PgCfg() == nil {
			sp.txManager = memory_repo.NewTxManager(sp.MemStore())
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) AccountRepo(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.PgCfg() == nil {
			sp.accountRepo = memory_repo.NewAccountRepository(sp.MemStore())
		} else {
			sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx))
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) GameStateRepo(ctx context.Context) repository.GameStateRepository {
	if sp.gameStateRepo == nil {
		if sp.PgCfg() == nil {
			sp.gameStateRepo = memory_repo.NewGameStateRepository(sp.MemStore())
		} else {
			sp.gameStateRepo = game_state_repo.NewGameStateRepository(sp.DBClient(ctx))
		}
	}
	return sp.gameStateRepo
}

func (sp *ServiceProvider) LeaderboardRepo(ctx context.Context) repository.LeaderboardRepository {
	if sp.leaderboardRepo == nil {
		if sp.RedisCfg() == nil {
			sp.leaderboardRepo = memory_repo.NewLeaderboard()
		} else {
			sp.leaderboardRepo = leaderboard_repo.NewLeaderboardRepository(sp.RedisClient(ctx))
		}
	}
	return sp.leaderboardRepo
}

func (sp *ServiceProvider) RTPRepo() repository.RTPRepository {
	if sp.rtpRepo == nil {
		sp.rtpRepo = rtp_repo.NewRTPRepository(sp.GamesCfg().RTPWindow())
	}
	return sp.rtpRepo
}

// RNGFactory - provably fair при заданном SERVER_SEED, иначе общий PRNG
func (sp *ServiceProvider) RNGFactory() rng.Factory {
	if sp.rngFactory == nil {
		cfg := sp.RNGCfg()
		if cfg.ServerSeed() != "" {
			logger.Log.Info("provably fair rng", zap.String("server_seed_hash", rng.HashServerSeed(cfg.ServerSeed())))
			sp.rngFactory = rng.NewFairFactory(cfg.ServerSeed())
		} else {
			sp.rngFactory = rng.NewSeededFactory(cfg.Seed())
		}
	}
	return sp.rngFactory
}

func (sp *ServiceProvider) Settler(ctx context.Context) *settlement.Settler {
	if sp.settler == nil {
		sp.settler = settlement.New(
			sp.AccountRepo(ctx),
			sp.LeaderboardRepo(ctx),
			sp.RTPRepo(),
			ledger.New(ledger.WithHistoryLimit(sp.GamesCfg().HistoryLimit())),
		)
	}
	return sp.settler
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(
			sp.AccountRepo(ctx),
			sp.LeaderboardRepo(ctx),
			sp.RTPRepo(),
			sp.Settler(ctx),
			sp.JWTCfg(),
			sp.GamesCfg(),
			sp.TXManager(ctx),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.AccountRepo(ctx),
			sp.GameStateRepo(ctx),
			sp.Settler(ctx),
			sp.RNGFactory(),
			sp.GamesCfg().DealerStand(),
			sp.TXManager(ctx),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		cfg := sp.GamesCfg()
		sp.rouletteServ = roulette.NewRouletteService(
			sp.AccountRepo(ctx),
			sp.GameStateRepo(ctx),
			sp.Settler(ctx),
			sp.RNGFactory(),
			rouletteEngine.New(rouletteEngine.Payouts{
				Number:    cfg.RouletteNumberPayout(),
				EvenMoney: cfg.RouletteEvenMoneyPayout(),
			}),
			sp.TXManager(ctx),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		cfg := sp.GamesCfg()
		sp.slotServ = slot.NewSlotService(
			sp.AccountRepo(ctx),
			sp.Settler(ctx),
			sp.RNGFactory(),
			slotEngine.New(cfg.SlotSymbols(), cfg.SlotPayouts()),
			sp.TXManager(ctx),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.AccountService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService(ctx)})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService(ctx)})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Observe)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", promhttp.Handler())

		accountHandler := sp.AccountHandler(ctx)
		r.Post("/login", accountHandler.Login)
		r.Get("/leaderboard", accountHandler.Leaderboard)
		r.Get("/house/rtp", accountHandler.HouseRTP)

		// Игровые endpoints только с токеном
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Get("/account", accountHandler.Account)
			rr.Get("/account/stats", accountHandler.Stats)

			blackjackHandler := sp.BlackjackHandler(ctx)
			rr.Route("/blackjack", func(br chi.Router) {
				br.Get("/", blackjackHandler.State)
				br.Post("/start", blackjackHandler.Start)
				br.Post("/hit", blackjackHandler.Hit)
				br.Post("/stand", blackjackHandler.Stand)
				br.Post("/new-round", blackjackHandler.NewRound)
			})

			rouletteHandler := sp.RouletteHandler(ctx)
			rr.Route("/roulette", func(br chi.Router) {
				br.Get("/bets", rouletteHandler.Bets)
				br.Post("/bets", rouletteHandler.PlaceBet)
				br.Delete("/bets", rouletteHandler.ClearBets)
				br.Post("/spin", rouletteHandler.Spin)
			})

			slotHandler := sp.SlotHandler(ctx)
			rr.Post("/slot/spin", slotHandler.Spin)
		})

		sp.router = r
	}
	return sp.router
}

// Close закрывает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			logger.Log.Warn("close redis", zap.Error(err))
		}
	}
}
