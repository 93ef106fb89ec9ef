package envconfig

type telegramEnv struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN,required" validate:"required"`
	ChatID   int64  `env:"TELEGRAM_CHAT_ID,required" validate:"required"`
}

type telegram struct {
	raw telegramEnv
}

func NewTelegramConfig() (*telegram, error) {
	var raw telegramEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &telegram{raw: raw}, nil
}

func (cfg *telegram) BotToken() string { return cfg.raw.BotToken }
func (cfg *telegram) ChatID() int64    { return cfg.raw.ChatID }
