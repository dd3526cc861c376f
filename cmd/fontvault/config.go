package main

import (
	"fmt"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration name to change."`
	Value  string `arg:"" help:"Configuration value to set."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := ctx.ws.SetGlobalConfig(c.Config, c.Value)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	fmt.Printf("Setting '%v' = '%v'\n", c.Config, c.Value)

	return ctx.ws.Write()
}

type ConfigGetCmd struct {
	Config string `arg:"" help:"Configuration name to show."`
}

func (c *ConfigGetCmd) Run(ctx *context) error {
	value, err := ctx.ws.GetGlobalConfig(c.Config)
	if err != nil {
		return err
	}

	fmt.Printf("%v\n", value)

	return nil
}
