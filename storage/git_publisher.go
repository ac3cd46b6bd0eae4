package storage

import (
	"fmt"
	"os/exec"
	"strings"

	"airbnb-price-tracker/utils"
)

// GitPublisher stages everything in the working directory, commits and
// pushes. It is a best-effort side effect: the caller logs a failure and
// moves on, the report files stay on disk either way.
type GitPublisher struct {
	dir    string
	logger *utils.Logger
}

// NewGitPublisher creates a GitPublisher operating in dir.
func NewGitPublisher(dir string, logger *utils.Logger) *GitPublisher {
	return &GitPublisher{dir: dir, logger: logger}
}

// Publish runs add/commit/push with the given message.
func (p *GitPublisher) Publish(message string) error {
	steps := [][]string{
		{"config", "user.name", "GitHub Actions"},
		{"config", "user.email", "actions@github.com"},
		{"add", "-A"},
		{"commit", "-m", message},
		{"push"},
	}
	for _, args := range steps {
		if err := p.run(args...); err != nil {
			return err
		}
	}
	p.logger.Info("Published: %s", message)
	return nil
}

func (p *GitPublisher) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = p.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}
