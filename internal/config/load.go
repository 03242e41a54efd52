package config

import "github.com/Skotchmaster/kitchen_control/pkg/config"

type ServiceConfig struct {
	config.Config
}

func Load() (ServiceConfig, error) {
	cfg := config.Load()

	if err := config.RequireNonEmpty(cfg.DatabaseURL, "DATABASE_URL"); err != nil {
		return ServiceConfig{}, err
	}

	return ServiceConfig{Config: cfg}, nil
}
