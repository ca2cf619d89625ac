// Package testsupport provides shared setup for testscript-based CLI tests.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	binDir    string
	buildErr  error
)

// buildBinaries builds the tt and gha binaries once and returns the
// directory holding them.
func buildBinaries(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		dir, err := os.MkdirTemp("", "tracklet-bin-")
		if err != nil {
			buildErr = err
			return
		}

		for _, name := range []string{"tt", "gha"} {
			cmd := exec.Command("go", "build", "-o", filepath.Join(dir, name), "./cmd/"+name)
			cmd.Dir = moduleRoot
			output, err := cmd.CombinedOutput()
			if err != nil {
				buildErr = fmt.Errorf("build %s: %w: %s", name, err, strings.TrimSpace(string(output)))
				return
			}
		}
		binDir = dir
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return binDir
}

// SetupScriptEnv configures common environment variables for testscript.
// Scripts run with an isolated HOME so no global config file leaks in.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	dir := buildBinaries(t)
	env.Setenv("TT", filepath.Join(dir, "tt"))
	env.Setenv("GHA", filepath.Join(dir, "gha"))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	env.Setenv("GITHUB_TOKEN", "")
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
