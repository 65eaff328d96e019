package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/catalog"
)

type commandContext struct {
	configFlag  *string
	catalogFlag *string

	configOnce sync.Once
	config     *adapter.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag, catalogFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		catalogFlag: catalogFlag,
	}
}

// ensureConfig loads configuration once and installs the file logger
func (c *commandContext) ensureConfig() (*adapter.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := adapter.LoadConfig(strings.TrimSpace(*c.configFlag))
		if err != nil {
			c.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}
		if path := strings.TrimSpace(*c.catalogFlag); path != "" {
			cfg.Catalog.Path = path
		}

		logger, err := adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = adapter.NullLogger()
		}
		slog.SetDefault(logger)

		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) loadCatalog() (*catalog.Library, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Load(cfg.Catalog.Path, cfg.Catalog.Strict, c.logger)
}
