package main

import (
	"github.com/pescuma/fontvault/lib/archivers"
)

type ArchiveCmd struct {
	Output string `short:"o" default:"./archives" help:"Directory to write the archives to." type:"path"`
	Filter string `help:"Only archive families matching this glob (\"Fira*\")."`
}

func (c *ArchiveCmd) Run(ctx *context) error {
	result, err := ctx.ws.Archive(c.Output, &archivers.Options{
		Filter: c.Filter,
	})
	if err != nil {
		return err
	}

	for _, name := range result.Failed {
		ctx.ws.Console().Printf("Failed to archive family %v\n", name)
	}

	return nil
}
