package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

/**
 * Parses url with the given regular expression and returns the
 * group values defined in the expression.
 */
func getParams(regEx, test string) (paramsMap map[string]string) {
	var compRegEx = regexp.MustCompile(regEx)
	match := compRegEx.FindStringSubmatch(test)

	paramsMap = make(map[string]string)
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

// remoteRegex matches scp-like and URL remotes ending in .git.
const remoteRegex = `(?:(?:.*?\@.*?\..*?\:)|(?:(?:https?|git|ssh)\:\/\/.*?\..*?\/))(?P<User>.*?)\/(?P<Repo>.*?)\.git$`

func execGit(ctx context.Context, path string, cmd ...string) ([]byte, error) {
	args := []string{}
	if path != "" {
		args = append(args, "-C", path)
	}
	args = append(args, cmd...)
	gitCmd := exec.CommandContext(ctx, "git", args...)
	return gitCmd.CombinedOutput()
}

func trim(out []byte) string {
	return strings.Trim(string(out), " \r\n")
}

// IsRepoRoot reports whether path is the top level of a git checkout. A
// directory nested inside some other repository does not count.
func IsRepoRoot(ctx context.Context, path string) bool {
	out, err := execGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return false
	}
	top, err := canonical(filepath.FromSlash(trim(out)))
	if err != nil {
		return false
	}
	want, err := canonical(path)
	if err != nil {
		return false
	}
	return top == want
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// RepoName returns "owner/repo" for the origin remote, or the directory name
// when there is no origin.
func RepoName(ctx context.Context, path string) (string, error) {
	remoteURLBytes, err := execGit(ctx, path, "remote", "get-url", "origin")
	if err == nil {
		remoteURL := trim(remoteURLBytes)
		if !strings.HasSuffix(remoteURL, ".git") {
			remoteURL += ".git"
		}
		match := getParams(remoteRegex, remoteURL)
		if match["User"] != "" && match["Repo"] != "" {
			return match["User"] + "/" + match["Repo"], nil
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

// Checkout summarizes the installed plugin checkout for the config command.
type Checkout struct {
	IsRepo   bool
	RepoName string
	Branch   string
	Head     string
	Modified bool
}

func GetBranch(ctx context.Context, path string) (string, error) {
	branch, err := execGit(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	return trim(branch), err
}

// GetHead returns the abbreviated hash of the checked-out commit.
func GetHead(ctx context.Context, path string) (string, error) {
	hash, err := execGit(ctx, path, "log", "-1", "--format=format:%h")
	return trim(hash), err
}

// Describe summarizes the checkout at path. IsRepo is false when path is
// not the root of a checkout.
func Describe(ctx context.Context, path string) (Checkout, error) {
	if !IsRepoRoot(ctx, path) {
		return Checkout{}, nil
	}

	name, err := RepoName(ctx, path)
	if err != nil {
		return Checkout{}, err
	}
	branch, err := GetBranch(ctx, path)
	if err != nil {
		return Checkout{}, err
	}
	head, err := GetHead(ctx, path)
	if err != nil {
		return Checkout{}, err
	}
	status, err := execGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return Checkout{}, err
	}

	return Checkout{
		IsRepo:   true,
		RepoName: name,
		Branch:   branch,
		Head:     head,
		Modified: trim(status) != "",
	}, nil
}
