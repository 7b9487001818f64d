package account_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table            = "accounts"
	colUsername      = "username"
	colBalance       = "balance"
	colTotalWinnings = "total_winnings"
	colTotalLosses   = "total_losses"
	colGamesPlayed   = "games_played"
	colLastActivity  = "last_activity"

	resultsTable = "game_results"
	colID        = "id"
	colGame      = "game"
	colWagered   = "wagered"
	colNetDelta  = "net_delta"
	colCreatedAt = "created_at"
)

// NUMERIC читается текстом, чтобы не терять точность
var accountColumns = []string{
	colUsername,
	colBalance + "::text",
	colTotalWinnings + "::text",
	colTotalLosses + "::text",
	colGamesPlayed,
	colLastActivity,
}

type repo struct {
	dbc *pgxpool.Pool
}

func NewAccountRepository(dbc *pgxpool.Pool) repository.AccountRepository {
	return &repo{
		dbc: dbc,
	}
}

// Create - создаёт счёт, существующий не трогает
func (r *repo) Create(ctx context.Context, acc model.Account) (bool, error) {
	query := sq.Insert(table).
		Columns(colUsername, colBalance, colTotalWinnings, colTotalLosses, colGamesPlayed, colLastActivity).
		Values(acc.Username, acc.Balance.String(), acc.TotalWinnings.String(), acc.TotalLosses.String(), acc.GamesPlayed, acc.LastActivity).
		Suffix("ON CONFLICT (" + colUsername + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, fmt.Errorf("insert account: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Get - счёт без блокировки
func (r *repo) Get(ctx context.Context, username string) (model.Account, error) {
	return r.get(ctx, username, false)
}

// GetForUpdate - счёт с блокировкой строки, работает внутри транзакции
func (r *repo) GetForUpdate(ctx context.Context, username string) (model.Account, error) {
	return r.get(ctx, username, true)
}

func (r *repo) get(ctx context.Context, username string, lock bool) (model.Account, error) {
	query := sq.Select(accountColumns...).
		From(table).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.Account{}, err
	}

	var acc model.Account
	var balance, winnings, losses string
	err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&acc.Username, &balance, &winnings, &losses, &acc.GamesPlayed, &acc.LastActivity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrAccountNotFound
		}
		return model.Account{}, fmt.Errorf("select account: %w", err)
	}

	if acc.Balance, err = decimal.NewFromString(balance); err != nil {
		return model.Account{}, fmt.Errorf("parse balance: %w", err)
	}
	if acc.TotalWinnings, err = decimal.NewFromString(winnings); err != nil {
		return model.Account{}, fmt.Errorf("parse total winnings: %w", err)
	}
	if acc.TotalLosses, err = decimal.NewFromString(losses); err != nil {
		return model.Account{}, fmt.Errorf("parse total losses: %w", err)
	}

	return acc, nil
}

// Save - записывает баланс и счётчики
func (r *repo) Save(ctx context.Context, acc model.Account) error {
	query := sq.Update(table).
		Set(colBalance, acc.Balance.String()).
		Set(colTotalWinnings, acc.TotalWinnings.String()).
		Set(colTotalLosses, acc.TotalLosses.String()).
		Set(colGamesPlayed, acc.GamesPlayed).
		Set(colLastActivity, acc.LastActivity).
		Where(sq.Eq{colUsername: acc.Username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// Touch - обновляет время последней активности
func (r *repo) Touch(ctx context.Context, username string) error {
	query := sq.Update(table).
		Set(colLastActivity, time.Now()).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("touch account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// AppendResult - добавляет запись в историю и удаляет всё старше keep последних
func (r *repo) AppendResult(ctx context.Context, res model.GameResult, keep int) error {
	query := sq.Insert(resultsTable).
		Columns(colID, colUsername, colGame, colWagered, colNetDelta, colCreatedAt).
		Values(res.ID, res.Username, res.Game, res.Wagered.String(), res.NetDelta.String(), res.Timestamp).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}

	if keep <= 0 {
		return nil
	}
	return r.pruneResults(ctx, res.Username, keep)
}

func (r *repo) pruneResults(ctx context.Context, username string, keep int) error {
	newest := sq.Select(colID).
		From(resultsTable).
		Where(sq.Eq{colUsername: username}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(keep))
	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return err
	}

	query := sq.Delete(resultsTable).
		Where(sq.Eq{colUsername: username}).
		Where(sq.Expr(colID+" NOT IN ("+newestSQL+")", newestArgs...)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("prune game results: %w", err)
	}

	return nil
}

// RecentResults - последние записи истории, новые первыми
func (r *repo) RecentResults(ctx context.Context, username string, limit int) ([]model.GameResult, error) {
	query := sq.Select(colID, colUsername, colGame, colWagered+"::text", colNetDelta+"::text", colCreatedAt).
		From(resultsTable).
		Where(sq.Eq{colUsername: username}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select game results: %w", err)
	}
	defer rows.Close()

	results := make([]model.GameResult, 0, max(limit, 0))
	for rows.Next() {
		var res model.GameResult
		var wagered, netDelta string
		if err := rows.Scan(&res.ID, &res.Username, &res.Game, &wagered, &netDelta, &res.Timestamp); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		if res.Wagered, err = decimal.NewFromString(wagered); err != nil {
			return nil, fmt.Errorf("parse wagered: %w", err)
		}
		if res.NetDelta, err = decimal.NewFromString(netDelta); err != nil {
			return nil, fmt.Errorf("parse net delta: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
