package main

import (
	"github.com/pescuma/fontvault/lib/scanners"
)

type ScanCmd struct {
	Dirs       []string `arg:"" optional:"" help:"Extra directories or globs to scan, after the default Windows font directories."`
	Exclusions string   `help:"File with font names to exclude, one per line." type:"existingfile"`
	Extensions []string `help:"Font file extensions to recognize." default:".ttf,.otf,.ttc,.otc"`
}

func (c *ScanCmd) Run(ctx *context) error {
	opts := &scanners.Options{
		Extensions: c.Extensions,
	}

	if c.Exclusions != "" {
		exclusions, err := scanners.NewExclusionSetFromFile(c.Exclusions)
		if err != nil {
			return err
		}

		opts.Exclusions = exclusions
	}

	_, err := ctx.ws.Scan(c.Dirs, opts)
	return err
}
