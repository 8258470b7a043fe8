package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/paths"
)

// RenderBuildStart renders the line printed before the build tool runs.
func RenderBuildStart(name string) string {
	return fmt.Sprintf("Building project: %s\n", accentStyle.Render(name))
}

// RenderBuildResult renders the outcome of a successful build.
func RenderBuildResult(result *application.BuildResult) string {
	var b strings.Builder
	line := fmt.Sprintf("%s Finished %s profile", passStyle.Render("✓"), result.Profile)
	if result.Commit != "" {
		line += " " + dimStyle.Render("@ "+shortHash(result.Commit))
	}
	b.WriteString(line + "\n")

	if result.ArtifactSize > 0 {
		fmt.Fprintf(&b, "Built %s (%s)\n", result.ArtifactPath, humanize.Bytes(uint64(result.ArtifactSize)))
	}
	return b.String()
}

// RenderInitResult lists the files created by `devtool init`.
func RenderInitResult(result *application.InitResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Initializing project at %s\n", result.Root)
	for _, f := range result.CreatedFiles {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("+"), paths.RelativeTo(f, result.Root))
	}
	for _, f := range result.SkippedFiles {
		fmt.Fprintf(&b, "  %s %s %s\n", dimStyle.Render("="), paths.RelativeTo(f, result.Root), dimStyle.Render("(exists)"))
	}
	if result.GitInitialized {
		fmt.Fprintf(&b, "  %s git repository\n", passStyle.Render("+"))
	}
	b.WriteString("Project initialized successfully\n")
	return b.String()
}

// RenderClean reports the removed target directory.
func RenderClean(path string) string {
	return fmt.Sprintf("Removed %s\n", path)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
