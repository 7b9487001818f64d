package leaderboard_repo

import (
	"context"
	"fmt"
	"reflect"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"

	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix  = "leaderboard:"
	accountKey = keyPrefix + "account:%s"

	fieldUsername      = "username"
	fieldBalance       = "balance"
	fieldTotalWinnings = "total_winnings"
	fieldTotalLosses   = "total_losses"
	fieldGamesPlayed   = "games_played"
	fieldWinRate       = "win_rate"
)

// Ключ сортированного множества на каждый вид сортировки
var sortKeys = map[model.LeaderboardSort]string{
	model.SortByBalance:   keyPrefix + "by_balance",
	model.SortByWinRate:   keyPrefix + "by_win_rate",
	model.SortByTotalWins: keyPrefix + "by_total_winnings",
}

type repo struct {
	rdb *redis.Client
}

func NewLeaderboardRepository(rdb *redis.Client) repository.LeaderboardRepository {
	return &repo{
		rdb: rdb,
	}
}

// Upsert - обновляет строку игрока и его позиции во всех рейтингах
func (r *repo) Upsert(ctx context.Context, e model.LeaderboardEntry) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, fmt.Sprintf(accountKey, e.Username), map[string]any{
			fieldUsername:      e.Username,
			fieldBalance:       e.Balance.String(),
			fieldTotalWinnings: e.TotalWinnings.String(),
			fieldTotalLosses:   e.TotalLosses.String(),
			fieldGamesPlayed:   e.GamesPlayed,
			fieldWinRate:       e.WinRate,
		})
		pipe.ZAdd(ctx, sortKeys[model.SortByBalance], redis.Z{Score: e.Balance.InexactFloat64(), Member: e.Username})
		pipe.ZAdd(ctx, sortKeys[model.SortByWinRate], redis.Z{Score: e.WinRate, Member: e.Username})
		pipe.ZAdd(ctx, sortKeys[model.SortByTotalWins], redis.Z{Score: e.TotalWinnings.InexactFloat64(), Member: e.Username})
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert leaderboard entry: %w", err)
	}
	return nil
}

// Top - первые limit игроков по выбранному полю в заданном порядке
func (r *repo) Top(ctx context.Context, sortBy model.LeaderboardSort, order model.SortOrder, limit int) ([]model.LeaderboardEntry, error) {
	key, ok := sortKeys[sortBy]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard sort %q", sortBy)
	}
	if limit <= 0 {
		return []model.LeaderboardEntry{}, nil
	}

	rangeFn := r.rdb.ZRevRange
	if order == model.OrderAsc {
		rangeFn = r.rdb.ZRange
	}
	names, err := rangeFn(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", sortBy, err)
	}

	cmds := make([]*redis.MapStringStringCmd, len(names))
	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, name := range names {
			cmds[i] = pipe.HGetAll(ctx, fmt.Sprintf(accountKey, name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read leaderboard entries: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(names))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		entry, err := DecodeEntry(fields)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DecodeEntry - разбирает хэш Redis в строку таблицы лидеров
func DecodeEntry(fields map[string]string) (model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToDecimalHookFunc(),
		WeaklyTypedInput: true,
		Result:           &entry,
		TagName:          "mapstructure",
	})
	if err != nil {
		return model.LeaderboardEntry{}, fmt.Errorf("leaderboard decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return model.LeaderboardEntry{}, fmt.Errorf("decode leaderboard entry: %w", err)
	}
	return entry, nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// stringToDecimalHookFunc переводит строковые суммы в decimal.Decimal
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() == reflect.String && to == decimalType {
			return decimal.NewFromString(data.(string))
		}
		return data, nil
	}
}
