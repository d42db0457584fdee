package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through ldflags.
const BuildVersion = "integration"

const commandTimeout = 30 * time.Second

var (
	binaryDir  string
	binaryPath string
	buildErr   error
	buildOnce  sync.Once
)

// CommandResult is what one rentdesk invocation printed and returned.
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd once per test run. Call it from TestMain.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = fmt.Errorf("locate module: %w", err)
			return
		}
		binaryDir, err = os.MkdirTemp("", "rentdesk-integration-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(binaryDir, "rentdesk")

		build := exec.Command("go", "build",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", binaryPath, "./cmd")
		build.Dir = root
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		buildErr = build.Run()
	})
	return binaryPath, buildErr
}

// CleanupBinary removes the build directory. Call it from TestMain.
func CleanupBinary() {
	if binaryDir != "" {
		_ = os.RemoveAll(binaryDir)
	}
}

// RunCommand runs the built binary inside env. A command still running
// after 30s is killed and reported with exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("rentdesk %s timed out after %s", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("rentdesk %s: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
