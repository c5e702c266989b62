package bootstrap

import (
	"cashdrawer-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LedgerConfig { return cfg.Ledger },
	),
)
