package account

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"crypto_luck/internal/logger"
	"crypto_luck/internal/model"
	"crypto_luck/pkg/token"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.-]{1,32}$`)

// NormalizeUsername обрезает пробелы и проверяет допустимые символы
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return "", fmt.Errorf("username %q: %w", username, model.ErrInvalidUsername)
	}
	return username, nil
}

// Login Создаёт счёт со стартовым балансом при первом входе, иначе обновляет время активности
func (s *serv) Login(ctx context.Context, username string) (string, model.Account, error) {
	username, err := NormalizeUsername(username)
	if err != nil {
		return "", model.Account{}, err
	}

	var (
		acc     model.Account
		created bool
	)
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.accounts.Create(txCtx, model.Account{
			Username:      username,
			Balance:       s.gamesConfig.StartingBalance(),
			TotalWinnings: decimal.Zero,
			TotalLosses:   decimal.Zero,
			LastActivity:  time.Now(),
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		if !created {
			if err := s.accounts.Touch(txCtx, username); err != nil {
				return fmt.Errorf("touch account: %w", err)
			}
		}
		acc, err = s.accounts.Get(txCtx, username)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", model.Account{}, err
	}

	if created {
		logger.Log.Info("account created", zap.String("username", username), zap.String("balance", acc.Balance.String()))
		s.settler.RefreshLeaderboard(ctx, acc)
	}

	accessToken, err := token.GenerateAccessToken(
		username,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", model.Account{}, fmt.Errorf("generate token: %w", err)
	}

	return accessToken, acc, nil
}
