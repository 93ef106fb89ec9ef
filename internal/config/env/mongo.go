package envconfig

type mongoEnv struct {
	URI          string `env:"MONGO_URI,required" validate:"required,startswith=mongodb"`
	DBName       string `env:"MONGO_DATABASE" envDefault:"frio" validate:"required"`
	Transactions bool   `env:"MONGO_TRANSACTIONS" envDefault:"true"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DSN() string               { return cfg.raw.URI }
func (cfg *mongo) DatabaseName() string      { return cfg.raw.DBName }
func (cfg *mongo) TransactionsEnabled() bool { return cfg.raw.Transactions }
