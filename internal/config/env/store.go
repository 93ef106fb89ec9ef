package envconfig

type storeEnv struct {
	WhatsAppPhone string `env:"STORE_WHATSAPP_PHONE,required" validate:"required"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &store{raw: raw}, nil
}

func (cfg *store) WhatsAppPhone() string { return cfg.raw.WhatsAppPhone }
