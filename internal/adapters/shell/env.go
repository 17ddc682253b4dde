package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// inheritedEnvVars are the variables passed on from the calling environment.
// Cargo and rustup need their homes and toolchain overrides, everything else
// is dropped so builds behave the same from a shell and from a host service.
var inheritedEnvVars = map[string]struct{}{
	"HOME":             {},
	"USER":             {},
	"PATH":             {},
	"TERM":             {},
	"TMPDIR":           {},
	"CARGO_HOME":       {},
	"CARGO_TARGET_DIR": {},
	"RUSTUP_HOME":      {},
	"RUSTUP_TOOLCHAIN": {},
	"RUSTFLAGS":        {},
}

// defaultEnv is applied unless the caller overrides it.
var defaultEnv = map[string]string{
	"CARGO_TERM_COLOR": "always",
}

// resolveEnvironment filters sysEnv and applies defaults, then extra.
// The result is sorted so the command environment is deterministic.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	envMap := make(map[string]string, len(inheritedEnvVars)+len(defaultEnv)+len(extra))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := inheritedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	for k, v := range defaultEnv {
		envMap[k] = v
	}
	for k, v := range extra {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// isPath reports whether name refers to a file rather than a command to look up.
func isPath(name string) bool {
	return filepath.IsAbs(name) || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator)
}

// lookPath searches for an executable in the PATH found in env rather than in
// the PATH of the current process.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
