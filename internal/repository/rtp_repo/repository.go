package rtp_repo

import (
	"sort"
	"sync"

	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultWindowSize - число последних раундов для оконного RTP
const DefaultWindowSize = 1000

// Раунд в окне
type round struct {
	staked float64
	paid   float64
}

// Состояние одной игры
type gameState struct {
	rounds      int64
	totalStaked float64
	totalPaid   float64
	window      []round
}

// StateRepo - статистика возврата игрокам по играм, хранится в памяти
type StateRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[string]*gameState
}

// NewRTPRepository Конструктор с размером окна
func NewRTPRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StateRepo{
		windowSize: windowSize,
		games:      make(map[string]*gameState),
	}
}

// Record Учитывает раунд: сколько поставлено и сколько выплачено
func (r *StateRepo) Record(game string, staked, paid decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &gameState{window: make([]round, 0, r.windowSize)}
		r.games[game] = st
	}

	s, p := staked.InexactFloat64(), paid.InexactFloat64()
	st.rounds++
	st.totalStaked += s
	st.totalPaid += p

	st.window = append(st.window, round{staked: s, paid: p})
	if len(st.window) > r.windowSize {
		st.window = st.window[1:]
	}
}

// Snapshot Копия статистики, отсортирована по названию игры
func (r *StateRepo) Snapshot() []model.HouseRTP {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.HouseRTP, 0, len(r.games))
	for game, st := range r.games {
		var windowStaked, windowPaid float64
		for _, rd := range st.window {
			windowStaked += rd.staked
			windowPaid += rd.paid
		}
		out = append(out, model.HouseRTP{
			Game:        game,
			Rounds:      st.rounds,
			TotalStaked: st.totalStaked,
			TotalPaid:   st.totalPaid,
			RTP:         percent(st.totalPaid, st.totalStaked),
			WindowRTP:   percent(windowPaid, windowStaked),
			WindowSize:  len(st.window),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Game < out[j].Game })
	return out
}

func percent(paid, staked float64) float64 {
	if staked <= 0 {
		return 0
	}
	return paid / staked * 100
}
