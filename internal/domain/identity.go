package domain

// Identity is one configured account. QueryID is the raw Telegram init data
// string and doubles as the auth hash.
type Identity struct {
	Name       string `json:"name"`
	QueryID    string `json:"-"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	Proxy      string `json:"-"`
}

// TelegramUser is the "user" object embedded in Telegram init data
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
