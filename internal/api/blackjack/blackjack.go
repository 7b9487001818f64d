package blackjack

import (
	"context"
	"net/http"

	dto "crypto_luck/internal/api/dto/blackjack"
	"crypto_luck/internal/api/httperr"
	"crypto_luck/internal/converter"
	"crypto_luck/internal/middleware"
	"crypto_luck/internal/model"
	"crypto_luck/internal/service"
	"crypto_luck/pkg/req"
	"crypto_luck/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.serv.State)
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.respond(w, r, func(ctx context.Context, username string) (model.RoundState, error) {
		return h.serv.Start(ctx, username, payload.Bet)
	})
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.serv.Hit)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.serv.Stand)
}

func (h *Handler) NewRound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.serv.NewRound)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, call func(context.Context, string) (model.RoundState, error)) {
	username, _ := middleware.UsernameFromContext(r.Context())

	st, err := call(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(st))
}
