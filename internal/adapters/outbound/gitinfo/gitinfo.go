// Package gitinfo answers the few git questions devtool asks: whether a
// project is versioned, which commit a build came from, and how to start a
// repository for a freshly scaffolded project.
package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is the initial branch of repositories created by Init.
const DefaultBranch = "main"

// ErrNoCommits is returned by CommitHash for a repository whose HEAD is unborn.
var ErrNoCommits = errors.New("repository has no commits")

// Repository implements domain.GitInfo with go-git, without shelling out.
type Repository struct{}

func New() *Repository {
	return &Repository{}
}

// open finds the repository containing dir, searching parent directories.
func open(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}

func (r *Repository) IsGitRepo(dir string) bool {
	_, err := open(dir)
	return err == nil
}

// CommitHash returns the full hash HEAD points at.
func (r *Repository) CommitHash(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", ErrNoCommits
	}
	if err != nil {
		return "", fmt.Errorf("resolving HEAD in %s: %w", dir, err)
	}
	return head.Hash().String(), nil
}

// Init creates a non-bare repository at dir on DefaultBranch. An existing
// repository is left untouched.
func (r *Repository) Init(dir string) error {
	_, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(DefaultBranch),
		},
	})
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("initializing repository at %s: %w", dir, err)
	}
	return nil
}
