package account

import (
	"net/http"
	"strconv"

	dto "crypto_luck/internal/api/dto/account"
	"crypto_luck/internal/api/httperr"
	"crypto_luck/internal/converter"
	"crypto_luck/internal/middleware"
	"crypto_luck/internal/model"
	"crypto_luck/internal/service"
	"crypto_luck/pkg/req"
	"crypto_luck/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Login создаёт счёт при первом входе и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	accessToken, acc, err := h.serv.Login(r.Context(), payload.Username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		Account:     converter.ToAccountResponse(acc),
	})
}

func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())

	acc, err := h.serv.Account(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(acc))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())

	stats, err := h.serv.Stats(r.Context(), username)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

// Leaderboard ?sort=balance|winRate|totalWins&order=desc|asc&limit=N
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy := model.LeaderboardSort(q.Get("sort"))
	if sortBy == "" {
		sortBy = model.SortByBalance
	}
	order := model.SortOrder(q.Get("order"))
	if order == "" {
		order = model.OrderDesc
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.serv.Leaderboard(r.Context(), sortBy, order, limit)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(sortBy, order, entries))
}

func (h *Handler) HouseRTP(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, h.serv.HouseRTP())
}
