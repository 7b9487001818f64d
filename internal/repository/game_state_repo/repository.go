package game_state_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "game_state"
	colUsername  = "username"
	colBlackjack = "blackjack"
	colSlip      = "roulette_slip"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameStateRepository(dbc *pgxpool.Pool) repository.GameStateRepository {
	return &repo{
		dbc: dbc,
	}
}

// GetBlackjack - текущий раунд блэкджека. Если раунда нет, стол в фазе ставок
func (r *repo) GetBlackjack(ctx context.Context, username string) (model.BlackjackRound, error) {
	raw, err := r.getColumn(ctx, username, colBlackjack)
	if err != nil {
		return model.BlackjackRound{}, err
	}

	round := model.BlackjackRound{Phase: model.PhaseBetting}
	if len(raw) == 0 {
		return round, nil
	}
	if err := json.Unmarshal(raw, &round); err != nil {
		return model.BlackjackRound{}, fmt.Errorf("decode blackjack round: %w", err)
	}

	return round, nil
}

// SaveBlackjack - сохраняет раунд, создаёт строку при первом обращении
func (r *repo) SaveBlackjack(ctx context.Context, username string, round model.BlackjackRound) error {
	raw, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("encode blackjack round: %w", err)
	}
	return r.upsert(ctx, username, colBlackjack, raw)
}

// DeleteBlackjack - сбрасывает раунд
func (r *repo) DeleteBlackjack(ctx context.Context, username string) error {
	query := sq.Update(table).
		Set(colBlackjack, nil).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("delete blackjack round: %w", err)
	}

	return nil
}

// GetRouletteSlip - ставки, ожидающие спина
func (r *repo) GetRouletteSlip(ctx context.Context, username string) ([]model.Bet, error) {
	raw, err := r.getColumn(ctx, username, colSlip)
	if err != nil {
		return nil, err
	}

	slip := []model.Bet{}
	if len(raw) == 0 {
		return slip, nil
	}
	if err := json.Unmarshal(raw, &slip); err != nil {
		return nil, fmt.Errorf("decode roulette slip: %w", err)
	}

	return slip, nil
}

// SaveRouletteSlip - перезаписывает купон
func (r *repo) SaveRouletteSlip(ctx context.Context, username string, slip []model.Bet) error {
	if slip == nil {
		slip = []model.Bet{}
	}
	raw, err := json.Marshal(slip)
	if err != nil {
		return fmt.Errorf("encode roulette slip: %w", err)
	}
	return r.upsert(ctx, username, colSlip, raw)
}

func (r *repo) getColumn(ctx context.Context, username, column string) ([]byte, error) {
	query := sq.Select(column).
		From(table).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", column, err)
	}

	return raw, nil
}

func (r *repo) upsert(ctx context.Context, username, column string, raw []byte) error {
	query := sq.Insert(table).
		Columns(colUsername, column).
		Values(username, raw).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s", colUsername, column, column)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", column, err)
	}

	return nil
}
