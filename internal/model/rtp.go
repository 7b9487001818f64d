package model

// HouseRTP - возврат игрокам по одной игре
type HouseRTP struct {
	Game        string  `json:"game"`
	Rounds      int64   `json:"rounds"`
	TotalStaked float64 `json:"total_staked"`
	TotalPaid   float64 `json:"total_paid"`
	RTP         float64 `json:"rtp"`        // Процент за всё время
	WindowRTP   float64 `json:"window_rtp"` // Процент по последним раундам
	WindowSize  int     `json:"window_size"`
}
