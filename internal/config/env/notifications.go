package envconfig

type notificationsEnv struct {
	Enabled bool `env:"NOTIFICATIONS_ENABLED" envDefault:"false"`
}

type notifications struct {
	raw notificationsEnv
}

func NewNotificationsConfig() (*notifications, error) {
	var raw notificationsEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &notifications{raw: raw}, nil
}

func (cfg *notifications) Enabled() bool { return cfg.raw.Enabled }
