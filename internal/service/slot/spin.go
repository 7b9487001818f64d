package slot

import (
	"context"
	"fmt"

	"crypto_luck/internal/model"
)

// Spin Списывает ставку, крутит барабаны и начисляет выигрыш
func (s *serv) Spin(ctx context.Context, username string, req model.SlotSpin) (model.SlotSpinResult, error) {
	var (
		res model.SlotSpinResult
		acc model.Account
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accounts.GetForUpdate(txCtx, username)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		src := s.rng.SourceFor(username, model.GameSlots, acc.GamesPlayed)
		res, err = s.machine.Spin(req.Bet, acc.Balance, src)
		if err != nil {
			return err
		}

		if acc, err = s.settler.Reserve(txCtx, acc, req.Bet); err != nil {
			return err
		}
		if acc, err = s.settler.Settle(txCtx, acc, req.Bet, res.NetDelta, model.GameSlots); err != nil {
			return err
		}

		res.Balance = acc.Balance
		return nil
	})
	if err != nil {
		return model.SlotSpinResult{}, err
	}

	s.settler.Publish(ctx, acc, model.GameSlots, string(res.Kind), req.Bet, res.Win)
	return res, nil
}
