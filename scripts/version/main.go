// Command version bumps internal/version.go, tags the release and pushes it.
//
//	go run ./scripts/version 1.2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/console"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
)

const versionFile = "internal/version.go"

var semver = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)

var errAborted = errors.New("aborted")

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/version <version>")
		fmt.Println(theme.HintStyle.Render("e.g. 1.0.0, v1.0.0 or v2.1.0-beta.1"))
		os.Exit(1)
	}

	version, err := normalizeVersion(os.Args[1])
	if err == nil {
		err = release(version)
	}
	switch {
	case errors.Is(err, errAborted):
		fmt.Println(theme.MutedStyle.Render("Aborted"))
	case err != nil:
		fmt.Println(theme.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func normalizeVersion(version string) (string, error) {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.MatchString(version) {
		return "", fmt.Errorf("invalid version %q, use v1.0.0 or 1.0.0", version)
	}
	return version, nil
}

func release(version string) error {
	ok, err := console.Confirm(console.ConfirmOptions{
		Prompt:  "Release " + version + "?",
		Detail:  "updates " + versionFile + ", commits, tags " + version + " and pushes",
		YesText: "Release",
		NoText:  "Cancel",
	})
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}

	if dirty, err := hasUncommittedChanges(); err != nil {
		return err
	} else if dirty {
		return errors.New("uncommitted changes, commit or stash them first")
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"update " + versionFile, func() error { return writeVersionFile(path.NewFile(versionFile), version) }},
		{"commit", func() error {
			if err := git("add", versionFile); err != nil {
				return err
			}
			return git("commit", "-m", "chore: bump version to "+version)
		}},
		{"tag " + version, func() error { return git("tag", "-a", version, "-m", "Release "+version) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		fmt.Println(theme.SuccessStyle.Render("✓ " + step.name))
	}

	push, err := console.Confirm(console.ConfirmOptions{Prompt: "Push to remote?", YesText: "Push", NoText: "Later"})
	if err != nil || !push {
		fmt.Println(theme.HintStyle.Render("push manually: git push origin HEAD && git push origin " + version))
		return nil
	}

	if err := git("push", "origin", "HEAD"); err != nil {
		return fmt.Errorf("push commit: %w", err)
	}
	if err := git("push", "origin", version); err != nil {
		return fmt.Errorf("push tag: %w", err)
	}
	fmt.Println(theme.SuccessStyle.Render("released " + version + ": go get github.com/ImGajeed76/pathkit@" + version))
	return nil
}

func writeVersionFile(file *path.File, version string) error {
	content := fmt.Sprintf("package internal\n\nvar Version = %q\n", version)
	return file.WriteText(content, "")
}

func hasUncommittedChanges() (bool, error) {
	output, err := exec.Command("git", "status", "--porcelain").Output()
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return len(strings.TrimSpace(string(output))) > 0, nil
}

func git(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
