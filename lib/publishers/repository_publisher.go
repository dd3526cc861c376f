package publishers

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/pkg/errors"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/utils"
)

type Publisher struct {
	console consoles.Console
}

type Options struct {
	RepoDir string

	// Remote settings. An empty URL stops the publish after the commit,
	// leaving the local repository ready for a manual push.
	RemoteName string
	RemoteURL  string
	Branch     string

	// Token authenticates the HTTPS push. Never persisted.
	Token string

	AuthorName  string
	AuthorEmail string

	// RunLFSInstall controls the `git lfs install --local` step. It needs
	// the git-lfs binary in PATH.
	RunLFSInstall bool
}

// Outcome reports how far a publish got. On failure State holds the last
// transition that succeeded; local repository state is never rolled back.
type Outcome struct {
	State      model.PublishState
	CommitHash string
	Message    string

	// Committed is false when the plan matched the repository content and
	// the commit was suppressed.
	Committed bool
}

func NewPublisher(console consoles.Console) *Publisher {
	return &Publisher{
		console: console,
	}
}

// Publish materializes the plan into a git working tree, stages, commits
// and pushes. Transitions are strictly sequential: NotInitialized →
// Initialized → Staged → Committed → Pushed, each only attempted after the
// previous one succeeded.
func (p *Publisher) Publish(plan *Plan, opts *Options) (*Outcome, error) {
	opts = fillOptions(opts)

	outcome := &Outcome{
		State: model.NotInitialized,
	}

	if opts.RepoDir == "" {
		return outcome, errors.New("publish: repository directory is required")
	}

	repoDir, err := utils.PathAbs(opts.RepoDir)
	if err != nil {
		return outcome, err
	}

	repo, err := p.initRepo(repoDir, opts.Branch)
	if err != nil {
		return outcome, errors.Wrapf(err, "error initializing repository at %v", repoDir)
	}

	outcome.State = model.Initialized

	if opts.RunLFSInstall {
		err = p.runGitLFS(repoDir, "install", "--local")
		if err != nil {
			return outcome, err
		}
	}

	staged, err := p.materialize(repoDir, plan)
	if err != nil {
		return outcome, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return outcome, errors.Wrap(err, "error opening worktree")
	}

	for _, path := range staged {
		_, err = worktree.Add(path)
		if err != nil {
			return outcome, errors.Wrapf(err, "error staging %v", path)
		}
	}

	outcome.State = model.Staged
	outcome.Message = CommitMessage(plan)

	status, err := worktree.Status()
	if err != nil {
		return outcome, errors.Wrap(err, "error reading worktree status")
	}

	if status.IsClean() {
		p.console.Printf("No content changes, skipping commit\n")

		head, err := repo.Head()
		if err == nil {
			outcome.CommitHash = head.Hash().String()
		}
	} else {
		hash, err := worktree.Commit(outcome.Message, &git.CommitOptions{
			Author: &object.Signature{
				Name:  opts.AuthorName,
				Email: opts.AuthorEmail,
				When:  time.Now(),
			},
		})
		if err != nil {
			return outcome, errors.Wrap(err, "error committing")
		}

		outcome.CommitHash = hash.String()
		outcome.Committed = true

		p.console.Printf("Committed %v: %v\n", hash.String()[:8], outcome.Message)
	}

	outcome.State = model.Committed

	if opts.RemoteURL == "" {
		p.console.Printf("No remote configured, leaving repository at %v\n", repoDir)
		return outcome, nil
	}

	err = p.push(repo, opts)
	if err != nil {
		return outcome, err
	}

	outcome.State = model.Pushed

	p.console.Printf("Pushed to %v\n", opts.RemoteURL)

	return outcome, nil
}

func fillOptions(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}

	result := *opts

	result.RemoteName = utils.Coalesce(result.RemoteName, "origin")
	result.Branch = utils.Coalesce(result.Branch, "main")
	result.AuthorName = utils.Coalesce(result.AuthorName, "fontvault")
	result.AuthorEmail = utils.Coalesce(result.AuthorEmail, "fontvault@localhost")

	return &result
}

// initRepo opens the repository if one exists, otherwise creates it. Safe
// to call on every run.
func (p *Publisher) initRepo(repoDir string, branch string) (*git.Repository, error) {
	repo, err := git.PlainInitWithOptions(repoDir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})

	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return git.PlainOpen(repoDir)
	}
	if err != nil {
		return nil, err
	}

	p.console.Printf("Initialized repository at %v\n", repoDir)

	return repo, nil
}

func (p *Publisher) materialize(repoDir string, plan *Plan) ([]string, error) {
	var staged []string

	for _, archive := range plan.Entries {
		name, err := copyIntoRepo(repoDir, archive.Path)
		if err != nil {
			return nil, err
		}

		staged = append(staged, name)
	}

	err := writeReadme(repoDir, len(plan.Entries), plan.TotalCompressedSize())
	if err != nil {
		return nil, err
	}

	err = writeIgnoreFile(repoDir)
	if err != nil {
		return nil, err
	}

	// Last, so the oversized-file scan sees the archives already in place
	err = writeAttributes(repoDir, plan.Threshold)
	if err != nil {
		return nil, err
	}

	return append(staged, metadataFiles...), nil
}

func (p *Publisher) push(repo *git.Repository, opts *Options) error {
	_, err := repo.Remote(opts.RemoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: opts.RemoteName,
			URLs: []string{opts.RemoteURL},
		})
	}
	if err != nil {
		return errors.Wrapf(err, "error configuring remote %v", opts.RemoteName)
	}

	pushOpts := &git.PushOptions{
		RemoteName: opts.RemoteName,
	}

	if opts.Token != "" {
		pushOpts.Auth = &http.BasicAuth{
			Username: "git",
			Password: opts.Token,
		}
	}

	err = repo.Push(pushOpts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		p.console.Printf("Remote already up to date\n")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "error pushing to %v", opts.RemoteURL)
	}

	return nil
}

// CommitMessage is deterministic for a given plan.
func CommitMessage(plan *Plan) string {
	return commitMessage(len(plan.Entries), plan.TotalCompressedSize())
}
