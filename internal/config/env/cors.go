package envconfig

type corsEnv struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:"," validate:"min=1,dive,required"`
}

type cors struct {
	raw corsEnv
}

func NewCORSConfig() (*cors, error) {
	var raw corsEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &cors{raw: raw}, nil
}

func (cfg *cors) AllowedOrigins() []string { return cfg.raw.AllowedOrigins }
