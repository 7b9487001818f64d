package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Phase - фаза раунда блэкджека
type Phase uint8

const (
	PhaseBetting Phase = iota
	PhasePlaying
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseBetting:  "betting",
	PhasePlaying:  "playing",
	PhaseFinished: "finished",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	if _, ok := phaseNames[p]; !ok {
		return nil, fmt.Errorf("unknown phase %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for ph, name := range phaseNames {
		if name == string(text) {
			*p = ph
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Outcome - итог раунда блэкджека
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeWin       Outcome = "win"
	OutcomePush      Outcome = "push"
	OutcomeLose      Outcome = "lose"
	OutcomeBust      Outcome = "bust"
)

// BlackjackRound - полное состояние раунда, хранится между запросами
type BlackjackRound struct {
	Phase   Phase           `json:"phase"`
	Bet     decimal.Decimal `json:"bet"`
	Deck    []Card          `json:"deck"`
	Player  []Card          `json:"player"`
	Dealer  []Card          `json:"dealer"`
	Outcome Outcome         `json:"outcome"`
}

// RoundState - то, что видит игрок. Закрытая карта дилера скрыта до конца раунда
type RoundState struct {
	Phase       Phase
	Bet         decimal.Decimal
	PlayerHand  []Card
	PlayerValue int
	DealerHand  []Card
	DealerValue int
	HoleHidden  bool
	Outcome     Outcome
	Credited    decimal.Decimal
	NetDelta    decimal.Decimal
	Balance     decimal.Decimal
}
