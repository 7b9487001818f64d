// Package blackjack - конечный автомат раунда блэкджека.
// Фазы: betting -> playing -> finished, новый раунд возвращает в betting.
package blackjack

import (
	"fmt"

	"crypto_luck/internal/engine/cards"
	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultDealerStand - дилер добирает, пока очков меньше
const DefaultDealerStand = 17

var (
	blackjackPayout = decimal.RequireFromString("2.5")
	winPayout       = decimal.NewFromInt(2)
)

type Option func(*Game)

// WithDealerStand задаёт порог, на котором дилер перестаёт брать карты
func WithDealerStand(v int) Option {
	return func(g *Game) {
		if v > 0 {
			g.dealerStand = v
		}
	}
}

// Game - один стол блэкджека для одного игрока
type Game struct {
	round       model.BlackjackRound
	deck        *cards.Deck
	dealerStand int
	newDeck     func(rng.Source) *cards.Deck
}

// New создаёт стол в фазе ставок
func New(opts ...Option) *Game {
	return Restore(model.BlackjackRound{Phase: model.PhaseBetting}, opts...)
}

// Restore поднимает стол из сохранённого раунда
func Restore(round model.BlackjackRound, opts ...Option) *Game {
	g := &Game{
		round:       round,
		deck:        cards.FromCards(round.Deck),
		dealerStand: DefaultDealerStand,
		newDeck:     cards.NewDeck,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Round возвращает состояние для сохранения
func (g *Game) Round() model.BlackjackRound {
	r := g.round
	r.Deck = g.deck.Cards()
	r.Player = append([]model.Card(nil), g.round.Player...)
	r.Dealer = append([]model.Card(nil), g.round.Dealer...)
	return r
}

func (g *Game) Phase() model.Phase {
	return g.round.Phase
}

// Start принимает ставку и раздаёт карты: игрок, дилер, игрок, дилер
func (g *Game) Start(bet, balance decimal.Decimal, src rng.Source) (model.RoundState, error) {
	if g.round.Phase != model.PhaseBetting {
		return model.RoundState{}, fmt.Errorf("start in %s: %w", g.round.Phase, model.ErrInvalidState)
	}
	if !bet.IsPositive() || !bet.IsInteger() {
		return model.RoundState{}, fmt.Errorf("bet %s: %w", bet, model.ErrInvalidBet)
	}
	if bet.GreaterThan(balance) {
		return model.RoundState{}, fmt.Errorf("bet %s over balance %s: %w", bet, balance, model.ErrInsufficientFunds)
	}

	g.deck = g.newDeck(src)
	g.round = model.BlackjackRound{
		Phase: model.PhasePlaying,
		Bet:   bet,
	}

	for i := 0; i < 2; i++ {
		if err := g.draw(&g.round.Player); err != nil {
			return model.RoundState{}, err
		}
		if err := g.draw(&g.round.Dealer); err != nil {
			return model.RoundState{}, err
		}
	}

	if cards.HandValue(g.round.Player) == cards.Blackjack {
		if cards.HandValue(g.round.Dealer) == cards.Blackjack {
			g.finish(model.OutcomePush)
		} else {
			g.finish(model.OutcomeBlackjack)
		}
	}

	return g.View(), nil
}

// Hit - игрок берёт карту, перебор завершает раунд
func (g *Game) Hit() (model.RoundState, error) {
	if g.round.Phase != model.PhasePlaying {
		return model.RoundState{}, fmt.Errorf("hit in %s: %w", g.round.Phase, model.ErrInvalidState)
	}
	if err := g.draw(&g.round.Player); err != nil {
		return model.RoundState{}, err
	}
	if cards.HandValue(g.round.Player) > cards.Blackjack {
		g.finish(model.OutcomeBust)
	}
	return g.View(), nil
}

// Stand - дилер добирает до порога, затем руки сравниваются
func (g *Game) Stand() (model.RoundState, error) {
	if g.round.Phase != model.PhasePlaying {
		return model.RoundState{}, fmt.Errorf("stand in %s: %w", g.round.Phase, model.ErrInvalidState)
	}
	for cards.HandValue(g.round.Dealer) < g.dealerStand {
		if err := g.draw(&g.round.Dealer); err != nil {
			return model.RoundState{}, err
		}
	}

	player := cards.HandValue(g.round.Player)
	dealer := cards.HandValue(g.round.Dealer)
	switch {
	case dealer > cards.Blackjack || player > dealer:
		g.finish(model.OutcomeWin)
	case player < dealer:
		g.finish(model.OutcomeLose)
	default:
		g.finish(model.OutcomePush)
	}
	return g.View(), nil
}

// NewRound сбрасывает руки и колоду. В фазе ставок ничего не меняет
func (g *Game) NewRound() (model.RoundState, error) {
	if g.round.Phase == model.PhasePlaying {
		return model.RoundState{}, fmt.Errorf("new round in %s: %w", g.round.Phase, model.ErrInvalidState)
	}
	g.reset()
	return g.View(), nil
}

// View - состояние для игрока, закрытая карта дилера видна только после завершения
func (g *Game) View() model.RoundState {
	st := model.RoundState{
		Phase:      g.round.Phase,
		Bet:        g.round.Bet,
		PlayerHand: append([]model.Card{}, g.round.Player...),
		Outcome:    g.round.Outcome,
		Credited:   decimal.Zero,
		NetDelta:   decimal.Zero,
	}
	st.PlayerValue = cards.HandValue(st.PlayerHand)

	dealer := g.round.Dealer
	if g.round.Phase == model.PhasePlaying && len(dealer) > 1 {
		dealer = dealer[:1]
		st.HoleHidden = true
	}
	st.DealerHand = append([]model.Card{}, dealer...)
	st.DealerValue = cards.HandValue(st.DealerHand)

	if g.round.Phase == model.PhaseFinished {
		st.Credited = Credited(g.round.Outcome, g.round.Bet)
		st.NetDelta = st.Credited.Sub(g.round.Bet)
	}
	return st
}

// Credited - сколько возвращается игроку по итогу раунда
func Credited(outcome model.Outcome, bet decimal.Decimal) decimal.Decimal {
	switch outcome {
	case model.OutcomeBlackjack:
		return bet.Mul(blackjackPayout).Floor()
	case model.OutcomeWin:
		return bet.Mul(winPayout)
	case model.OutcomePush:
		return bet
	default:
		return decimal.Zero
	}
}

func (g *Game) draw(hand *[]model.Card) error {
	c, err := g.deck.Draw()
	if err != nil {
		g.reset()
		return fmt.Errorf("draw card: %w", err)
	}
	*hand = append(*hand, c)
	return nil
}

func (g *Game) finish(outcome model.Outcome) {
	g.round.Outcome = outcome
	g.round.Phase = model.PhaseFinished
}

func (g *Game) reset() {
	g.round = model.BlackjackRound{Phase: model.PhaseBetting, Bet: decimal.Zero}
	g.deck = cards.FromCards(nil)
}
