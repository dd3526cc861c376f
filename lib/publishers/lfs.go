package publishers

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"
)

// runGitLFS shells out to the git-lfs extension. Output is echoed through
// the console prefix and kept so failures report it verbatim.
func (p *Publisher) runGitLFS(repoDir string, args ...string) error {
	cmd := exec.Command("git", append([]string{"lfs"}, args...)...)
	cmd.Dir = repoDir

	p.console.Printf("Executing '%v'\n", strings.Join(cmd.Args, "' '"))

	captured := &bytes.Buffer{}

	prefix := lineprefix.PrefixFunc(func() string {
		return p.console.Prepare("")
	})

	cmd.Stdout = lineprefix.New(lineprefix.Writer(io.MultiWriter(os.Stdout, captured)), prefix)
	cmd.Stderr = lineprefix.New(lineprefix.Writer(io.MultiWriter(os.Stderr, captured)), prefix)

	err := cmd.Run()
	if err != nil {
		return errors.Wrapf(err, "git lfs %v failed: %v", strings.Join(args, " "), captured.String())
	}

	return nil
}
