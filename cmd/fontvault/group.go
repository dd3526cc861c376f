package main

import (
	"github.com/pescuma/fontvault/lib/groupers"
)

type GroupCmd struct {
	Suffixes []string `help:"Style suffixes to strip when deriving family names. Default is the usual weight/style vocabulary."`
}

func (c *GroupCmd) Run(ctx *context) error {
	_, err := ctx.ws.Group(&groupers.Options{
		Suffixes: c.Suffixes,
	})
	return err
}
