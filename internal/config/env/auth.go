package envconfig

import "time"

type authEnv struct {
	JWTSecret     string        `env:"JWT_SECRET,required" validate:"required,min=16"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"12h" validate:"gt=0"`
	AdminName     string        `env:"ADMIN_NAME" validate:"required_with=AdminPassword"`
	AdminPassword string        `env:"ADMIN_PASSWORD" validate:"required_with=AdminName"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) JWTSecret() []byte     { return []byte(cfg.raw.JWTSecret) }
func (cfg *auth) JWTTTL() time.Duration { return cfg.raw.JWTTTL }
func (cfg *auth) AdminName() string     { return cfg.raw.AdminName }
func (cfg *auth) AdminPassword() string { return cfg.raw.AdminPassword }
