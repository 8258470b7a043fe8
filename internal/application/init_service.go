package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/openkraft/devtool/internal/domain"
)

// InitOptions configures project scaffolding.
type InitOptions struct {
	Path       string // Project root; created when missing.
	Name       string // Project name; derived from Path when empty.
	ConfigName string // Config file name inside Path, e.g. devtool.yaml.
	Force      bool   // Overwrite an existing config and scaffold files.
	Git        bool   // Initialize a git repository when Path is not already in one.
}

// InitResult summarizes what Init created.
type InitResult struct {
	Root           string
	Name           string
	ConfigPath     string
	CreatedDirs    []string
	CreatedFiles   []string
	SkippedFiles   []string // Existing files left untouched.
	GitInitialized bool
}

// scaffoldFile maps a template to its destination relative to the root.
type scaffoldFile struct {
	template string
	dest     string
}

var scaffold = []scaffoldFile{
	{template: "main.rs", dest: filepath.Join("src", "main.rs")},
	{template: "gitignore", dest: ".gitignore"},
	{template: "README.md", dest: "README.md"},
}

// InitService scaffolds new projects.
type InitService struct {
	templates domain.TemplateSource
	configs   domain.ConfigWriter
	git       domain.GitInfo
	logger    *slog.Logger
}

func NewInitService(templates domain.TemplateSource, configs domain.ConfigWriter, git domain.GitInfo, logger *slog.Logger) *InitService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &InitService{templates: templates, configs: configs, git: git, logger: logger}
}

// Init creates the project layout under opts.Path.
func (s *InitService) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	if opts.ConfigName == "" {
		opts.ConfigName = domain.ConfigFileName
	}

	name := opts.Name
	if name == "" {
		name = ProjectName(filepath.Base(root))
	}

	result := &InitResult{
		Root:       root,
		Name:       name,
		ConfigPath: filepath.Join(root, opts.ConfigName),
	}

	if !opts.Force {
		if _, err := os.Stat(result.ConfigPath); err == nil {
			return nil, fmt.Errorf("%s: %w (use --force to overwrite)", result.ConfigPath, domain.ErrProjectExists)
		}
	}

	s.logger.Info("initializing project", "root", root, "name", name)

	if err := s.mkdir(result, root); err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig(name)
	if err := s.configs.Save(result.ConfigPath, cfg); err != nil {
		return nil, err
	}
	result.CreatedFiles = append(result.CreatedFiles, result.ConfigPath)

	data := struct {
		Name      string
		Version   string
		TargetDir string
	}{Name: cfg.Name, Version: cfg.Version, TargetDir: cfg.Build.TargetDir}

	for _, f := range scaffold {
		dest := filepath.Join(root, f.dest)
		if !opts.Force {
			if _, err := os.Stat(dest); err == nil {
				s.logger.Debug("keeping existing file", "path", dest)
				result.SkippedFiles = append(result.SkippedFiles, dest)
				continue
			}
		}

		content, err := s.templates.Render(f.template, data)
		if err != nil {
			return nil, err
		}
		if err := s.mkdir(result, filepath.Dir(dest)); err != nil {
			return nil, err
		}
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dest, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, dest)
	}

	if opts.Git && s.git != nil && !s.git.IsGitRepo(root) {
		if err := s.git.Init(root); err != nil {
			return nil, err
		}
		result.GitInitialized = true
	}

	s.logger.Info("project initialized", "files", len(result.CreatedFiles), "git", result.GitInitialized)
	return result, nil
}

func (s *InitService) mkdir(result *InitResult, dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	result.CreatedDirs = append(result.CreatedDirs, dir)
	return nil
}

// ProjectName normalizes a directory name into a kebab-case project name:
// "MyCoolApp" and "my_cool app" both become "my-cool-app".
func ProjectName(s string) string {
	var words []string
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, field := range fields {
		for _, w := range camelcase.Split(field) {
			w = strings.ToLower(w)
			// Keep digits attached: "app2" stays "app2".
			if len(words) > 0 && isDigits(w) {
				words[len(words)-1] += w
				continue
			}
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return "project"
	}
	return strings.Join(words, "-")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
