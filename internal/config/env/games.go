package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"crypto_luck/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	defaultStartingBalance = 1000
	defaultRecentGames     = 10
	defaultDealerStand     = 17
	defaultNumberPayout    = 35
	defaultEvenMoneyPayout = 2
	defaultRTPWindow       = 1000
)

var (
	defaultSlotSymbols = []string{"🍒", "🍋", "🍊", "🍇", "⭐", "💎", "🔔", "💰"}
	defaultSlotPayouts = map[string]float64{
		"💰": 100, "💎": 75, "⭐": 50, "🔔": 30,
		"🍇": 20, "🍊": 15, "🍋": 10, "🍒": 5,
	}
)

type gamesFile struct {
	Games gamesYAML `yaml:"games"`
}

type gamesYAML struct {
	StartingBalance float64 `yaml:"starting_balance"`
	HistoryLimit    int     `yaml:"history_limit"`
	RecentGames     int     `yaml:"recent_games"`
	RTPWindow       int     `yaml:"rtp_window"`
	Blackjack       struct {
		DealerStand int `yaml:"dealer_stand"`
	} `yaml:"blackjack"`
	Roulette struct {
		NumberPayout    float64 `yaml:"number_payout"`
		EvenMoneyPayout float64 `yaml:"even_money_payout"`
	} `yaml:"roulette"`
	Slot struct {
		Symbols []string           `yaml:"symbols"`
		Payouts map[string]float64 `yaml:"payouts"`
	} `yaml:"slot"`
}

type gamesConfig struct {
	startingBalance decimal.Decimal
	historyLimit    int
	recentGames     int
	rtpWindow       int
	dealerStand     int
	numberPayout    decimal.Decimal
	evenMoneyPayout decimal.Decimal
	slotSymbols     []string
	slotPayouts     map[string]decimal.Decimal
}

// NewGamesConfigFromYAML читает секцию games. Нет файла - берутся значения по умолчанию
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	var file gamesFile
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read games config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse games config: %w", err)
		}
	}

	g := file.Games
	if g.HistoryLimit < 0 {
		return nil, fmt.Errorf("history_limit must not be negative, got %d", g.HistoryLimit)
	}
	if len(g.Slot.Symbols) == 0 {
		g.Slot.Symbols = defaultSlotSymbols
	}
	if len(g.Slot.Payouts) == 0 {
		g.Slot.Payouts = defaultSlotPayouts
	}
	for sym := range g.Slot.Payouts {
		if !contains(g.Slot.Symbols, sym) {
			return nil, fmt.Errorf("slot payout for unknown symbol %q", sym)
		}
	}

	payouts := make(map[string]decimal.Decimal, len(g.Slot.Payouts))
	for sym, v := range g.Slot.Payouts {
		payouts[sym] = decimal.NewFromFloat(v)
	}

	return &gamesConfig{
		startingBalance: decimal.NewFromFloat(orDefault(g.StartingBalance, defaultStartingBalance)),
		historyLimit:    g.HistoryLimit,
		recentGames:     int(orDefault(float64(g.RecentGames), defaultRecentGames)),
		rtpWindow:       int(orDefault(float64(g.RTPWindow), defaultRTPWindow)),
		dealerStand:     int(orDefault(float64(g.Blackjack.DealerStand), defaultDealerStand)),
		numberPayout:    decimal.NewFromFloat(orDefault(g.Roulette.NumberPayout, defaultNumberPayout)),
		evenMoneyPayout: decimal.NewFromFloat(orDefault(g.Roulette.EvenMoneyPayout, defaultEvenMoneyPayout)),
		slotSymbols:     append([]string(nil), g.Slot.Symbols...),
		slotPayouts:     payouts,
	}, nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (c *gamesConfig) StartingBalance() decimal.Decimal {
	return c.startingBalance
}

func (c *gamesConfig) HistoryLimit() int {
	return c.historyLimit
}

func (c *gamesConfig) RecentGames() int {
	return c.recentGames
}

func (c *gamesConfig) DealerStand() int {
	return c.dealerStand
}

func (c *gamesConfig) RouletteNumberPayout() decimal.Decimal {
	return c.numberPayout
}

func (c *gamesConfig) RouletteEvenMoneyPayout() decimal.Decimal {
	return c.evenMoneyPayout
}

func (c *gamesConfig) SlotSymbols() []string {
	return append([]string(nil), c.slotSymbols...)
}

func (c *gamesConfig) SlotPayouts() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.slotPayouts))
	for k, v := range c.slotPayouts {
		out[k] = v
	}
	return out
}

func (c *gamesConfig) RTPWindow() int {
	return c.rtpWindow
}
