package roulette

import (
	"net/http"

	dto "crypto_luck/internal/api/dto/roulette"
	"crypto_luck/internal/api/httperr"
	"crypto_luck/internal/converter"
	"crypto_luck/internal/middleware"
	"crypto_luck/internal/service"
	"crypto_luck/pkg/req"
	"crypto_luck/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Bets(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())

	slip, err := h.serv.Bets(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlipResponse(slip))
}

// PlaceBet добавляет фишку в купон
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	betType, number, err := converter.FromBetRequest(payload)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	username, _ := middleware.UsernameFromContext(r.Context())

	slip, err := h.serv.PlaceBet(r.Context(), username, betType, number, payload.Amount)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlipResponse(slip))
}

func (h *Handler) ClearBets(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())

	slip, err := h.serv.ClearBets(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlipResponse(slip))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())

	res, err := h.serv.Spin(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteSpinResponse(res))
}
