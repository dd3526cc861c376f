package main

import (
	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/server"
	"github.com/pescuma/fontvault/lib/storages"
)

type ServerCmd struct {
	Port uint `default:"2428" help:"Port to listen to."`
}

func (c *ServerCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, storage storages.Storage) error {
		return server.Run(console, storage, &server.Options{
			Port: c.Port,
		})
	})
}
