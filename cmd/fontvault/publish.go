package main

import (
	"github.com/dustin/go-humanize"

	"github.com/pescuma/fontvault/lib/publishers"
)

type PublishCmd struct {
	Repo        string `default:"./font-repo" help:"Directory of the git repository to publish to." type:"path"`
	Remote      string `help:"URL of the remote to push to. Default is the publish.remote configuration; empty means commit only."`
	RemoteName  string `help:"Name of the remote. Default is origin."`
	Branch      string `help:"Branch to publish to. Default is the publish.branch configuration, or main."`
	Token       string `env:"FONTVAULT_TOKEN" help:"Token to authenticate the push."`
	AuthorName  string `help:"Author of the publish commits."`
	AuthorEmail string `help:"Author email of the publish commits."`
	Threshold   string `help:"Archives bigger than this go through git LFS. Default is the publish.threshold configuration, or 70 MiB."`
	LFSInstall  bool   `default:"true" negatable:"" help:"Run 'git lfs install --local' on the repository. Requires git-lfs in path."`
}

func (c *PublishCmd) Run(ctx *context) error {
	threshold, err := parseThreshold(c.Threshold)
	if err != nil {
		return err
	}

	_, err = ctx.ws.Publish(threshold, &publishers.Options{
		RepoDir:       c.Repo,
		RemoteName:    c.RemoteName,
		RemoteURL:     c.Remote,
		Branch:        c.Branch,
		Token:         c.Token,
		AuthorName:    c.AuthorName,
		AuthorEmail:   c.AuthorEmail,
		RunLFSInstall: c.LFSInstall,
	})
	return err
}

func parseThreshold(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	result, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, err
	}

	return int64(result), nil
}
