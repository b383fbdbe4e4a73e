package main

import (
	"fmt"
	"os"

	"github.com/lox/casino21/internal/fileutil"
)

// ShowConfigCmd prints or writes the effective configuration
type ShowConfigCmd struct {
	Overrides `embed:""`

	Write string `short:"w" type:"path" help:"Write to this file instead of stdout"`
}

func (c *ShowConfigCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config, c.Overrides)
	if err != nil {
		return err
	}

	src := cfg.Encode()
	if c.Write == "" {
		_, err := os.Stdout.Write(src)
		return err
	}

	if err := fileutil.WriteFileAtomic(c.Write, src, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", c.Write)
	return nil
}
