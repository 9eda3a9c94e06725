package main

import (
	"log/slog"
	"strings"
	"sync"

	"subcast/internal/config"
	"subcast/internal/logging"
)

type commandContext struct {
	configFlag *string

	once     sync.Once
	config   *config.Config
	logger   *slog.Logger
	setupErr error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensure() (*config.Config, *slog.Logger, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.setupErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.setupErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.setupErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.logger, c.setupErr
}
