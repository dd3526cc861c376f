package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/fontvault/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.fontvault or ~/.fontvault if that does not exist." type:"path"`

	Scan    ScanCmd    `cmd:"" help:"Scan the Windows font directories for font files."`
	Group   GroupCmd   `cmd:"" help:"Group scanned font files into families."`
	Archive ArchiveCmd `cmd:"" help:"Build one zip archive per family."`
	Publish PublishCmd `cmd:"" help:"Copy the archives into a git repository, commit and push."`
	Run     RunCmd     `cmd:"" help:"Run the whole pipeline: scan, group, archive, publish."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
		Get ConfigGetCmd `cmd:"" help:"Show configuration parameters."`
	} `cmd:""`

	Server ServerCmd `cmd:"" help:"Start the stats web server."`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})

	if cerr := ws.Close(); err == nil {
		err = cerr
	}

	ctx.FatalIfErrorf(err)
}
