// Package gitstatus shells out to git for the status information the
// editor displays: current branch, per-file porcelain status, and the
// modified-file list. Every operation degrades to an empty result when
// git or the repository is missing.
package gitstatus

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Manager runs git against a single repository path.
type Manager struct {
	repoPath string
	gitOK    bool
}

// NewManager probes for git once and returns a manager for repoPath.
func NewManager(repoPath string) *Manager {
	_, err := exec.LookPath("git")
	return &Manager{
		repoPath: repoPath,
		gitOK:    err == nil,
	}
}

// Available reports whether the git binary was found.
func (m *Manager) Available() bool {
	return m.gitOK
}

func (m *Manager) git(args ...string) (string, error) {
	full := append([]string{"-C", m.repoPath}, args...)
	cmd := exec.Command("git", full...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// IsRepo reports whether the path is inside a git work tree.
func (m *Manager) IsRepo() bool {
	if !m.gitOK {
		return false
	}
	out, err := m.git("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// CurrentBranch returns the checked-out branch name, "HEAD detached"
// for a detached head, or "" outside a repository.
func (m *Manager) CurrentBranch() string {
	if !m.IsRepo() {
		return ""
	}
	out, err := m.git("branch", "--show-current")
	if err != nil {
		return ""
	}
	branch := strings.TrimSpace(out)
	if branch == "" {
		return "HEAD detached"
	}
	return branch
}

// FileStatus returns the porcelain status code for a file ("M", "A",
// "D", "??", ...), or "" when the file is unchanged or untracked by a
// repository.
func (m *Manager) FileStatus(filePath string) string {
	if !m.IsRepo() {
		return ""
	}
	rel, err := filepath.Rel(m.repoPath, filePath)
	if err != nil {
		rel = filePath
	}
	out, err := m.git("status", "--porcelain", rel)
	if err != nil {
		return ""
	}
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return ""
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ModifiedFiles returns the paths with porcelain status entries,
// relative to the repository root.
func (m *Manager) ModifiedFiles() []string {
	if !m.IsRepo() {
		return nil
	}
	out, err := m.git("status", "--porcelain")
	if err != nil {
		return nil
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) == 2 {
			files = append(files, strings.TrimSpace(fields[1]))
		}
	}
	return files
}

// StatusMap returns porcelain status codes keyed by repository-relative
// path.
func (m *Manager) StatusMap() map[string]string {
	if !m.IsRepo() {
		return nil
	}
	out, err := m.git("status", "--porcelain")
	if err != nil {
		return nil
	}

	statuses := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.SplitN(trimmed, " ", 2)
		if len(fields) == 2 {
			statuses[strings.TrimSpace(fields[1])] = fields[0]
		}
	}
	return statuses
}

// CommitCount returns the number of commits reachable from HEAD, or 0
// outside a repository.
func (m *Manager) CommitCount() int {
	if !m.IsRepo() {
		return 0
	}
	out, err := m.git("rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	count, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0
	}
	return count
}
