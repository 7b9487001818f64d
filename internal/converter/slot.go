package converter

import (
	"crypto_luck/internal/api/dto/slot"
	"crypto_luck/internal/model"
)

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSlotSpinResponse(res model.SlotSpinResult) slot.SpinResponse {
	return slot.SpinResponse{
		Reels:    res.Reels,
		Bet:      res.Bet,
		Win:      res.Win,
		Kind:     string(res.Kind),
		NetDelta: res.NetDelta,
		Balance:  res.Balance,
	}
}
