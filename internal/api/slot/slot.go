package slot

import (
	"net/http"

	dto "crypto_luck/internal/api/dto/slot"
	"crypto_luck/internal/api/httperr"
	"crypto_luck/internal/converter"
	"crypto_luck/internal/middleware"
	"crypto_luck/internal/service"
	"crypto_luck/pkg/req"
	"crypto_luck/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	username, _ := middleware.UsernameFromContext(r.Context())

	result, err := h.serv.Spin(r.Context(), username, converter.ToSlotSpin(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotSpinResponse(result))
}
