package dto

// LinkCodeResponse carries a one-time Telegram link code.
type LinkCodeResponse struct {
	Code      string `json:"code" example:"K7KPQ2"`
	ExpiresIn int    `json:"expires_in" example:"600"`
	Hint      string `json:"hint" example:"Send /start K7KPQ2 to the bot"`
}
