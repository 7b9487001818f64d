package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RoundsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_settled_total",
			Help: "Settled rounds by game and outcome",
		},
		[]string{"game", "outcome"},
	)

	RoundsAborted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_aborted_total",
			Help: "Rounds aborted without settlement",
		},
		[]string{"game"},
	)

	CoinsStaked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_coins_staked_total",
			Help: "Total coins staked",
		},
		[]string{"game"},
	)

	CoinsPaid = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_coins_paid_total",
			Help: "Total coins credited back to players",
		},
		[]string{"game"},
	)

	HouseRTP = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "casino_house_rtp",
			Help: "Return to player over the tracking window",
		},
		[]string{"game"},
	)
)

var once sync.Once

// Init регистрирует метрики в реестре по умолчанию
func Init() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequests, RoundsSettled, RoundsAborted, CoinsStaked, CoinsPaid, HouseRTP)
	})
}

// ObserveRound учитывает сыгранный раунд
func ObserveRound(game, outcome string, staked, paid decimal.Decimal) {
	RoundsSettled.WithLabelValues(game, outcome).Inc()
	CoinsStaked.WithLabelValues(game).Add(staked.InexactFloat64())
	CoinsPaid.WithLabelValues(game).Add(paid.InexactFloat64())
}
