package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/fontvault/lib/archivers"
	"github.com/pescuma/fontvault/lib/groupers"
	"github.com/pescuma/fontvault/lib/publishers"
	"github.com/pescuma/fontvault/lib/scanners"
)

type RunCmd struct {
	Dirs   []string `arg:"" optional:"" help:"Extra directories or globs to scan, after the default Windows font directories."`
	Output string   `short:"o" default:"./archives" help:"Directory to write the archives to." type:"path"`

	Repo       string `default:"./font-repo" help:"Directory of the git repository to publish to." type:"path"`
	Remote     string `help:"URL of the remote to push to. Default is the publish.remote configuration; empty means commit only."`
	Branch     string `help:"Branch to publish to. Default is the publish.branch configuration, or main."`
	Token      string `env:"FONTVAULT_TOKEN" help:"Token to authenticate the push."`
	Threshold  string `help:"Archives bigger than this go through git LFS. Default is the publish.threshold configuration, or 70 MiB."`
	LFSInstall bool   `default:"true" negatable:"" help:"Run 'git lfs install --local' on the repository. Requires git-lfs in path."`

	DryRun bool `help:"Stop after showing what would be published."`
	Yes    bool `short:"y" help:"Publish without asking for confirmation."`
}

func (c *RunCmd) Run(ctx *context) error {
	ws := ctx.ws
	console := ws.Console()

	threshold, err := parseThreshold(c.Threshold)
	if err != nil {
		return err
	}

	console.PushPrefix("scan: ")

	_, err = ws.Scan(c.Dirs, &scanners.Options{})
	if err != nil {
		return err
	}

	console.PopPrefix()
	console.PushPrefix("group: ")

	_, err = ws.Group(&groupers.Options{})
	if err != nil {
		return err
	}

	console.PopPrefix()
	console.PushPrefix("archive: ")

	result, err := ws.Archive(c.Output, &archivers.Options{})
	if err != nil {
		return err
	}

	for _, name := range result.Failed {
		console.Printf("Failed to archive family %v\n", name)
	}

	console.PopPrefix()

	plan, err := ws.PublishPlan(threshold)
	if err != nil {
		return err
	}

	c.printPlan(plan)

	if c.DryRun {
		return nil
	}

	if !c.Yes && !confirm("Publish?") {
		fmt.Printf("Aborted\n")
		return nil
	}

	console.PushPrefix("publish: ")
	defer console.PopPrefix()

	_, err = ws.Publish(threshold, &publishers.Options{
		RepoDir:       c.Repo,
		RemoteURL:     c.Remote,
		Branch:        c.Branch,
		Token:         c.Token,
		RunLFSInstall: c.LFSInstall,
	})
	return err
}

func (c *RunCmd) printPlan(plan *publishers.Plan) {
	plural := pluralize.NewClient()

	fmt.Printf("Will publish %v (%v), with %v through git LFS\n",
		plural.Pluralize("archive", len(plan.Entries), true),
		humanize.IBytes(uint64(plan.TotalCompressedSize())),
		plural.Pluralize("archive", len(plan.Tracked), true))

	for _, a := range plan.Tracked {
		fmt.Printf("   %v (%v, LFS)\n", a.FamilyName, humanize.IBytes(uint64(a.CompressedSize)))
	}
}

func confirm(question string) bool {
	fmt.Printf("%v [y/N] ", question)

	reader := bufio.NewReader(os.Stdin)

	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
