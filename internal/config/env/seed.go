package envconfig

type seedEnv struct {
	DemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`
}

type seed struct {
	raw seedEnv
}

func NewSeedConfig() (*seed, error) {
	var raw seedEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &seed{raw: raw}, nil
}

func (cfg *seed) DemoData() bool { return cfg.raw.DemoData }
