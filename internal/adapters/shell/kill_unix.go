//go:build !windows

package shell

import (
	"os"
	"syscall"
)

// killTree kills the process group led by proc. pty.Start makes every child a
// session leader, so the group contains the compiler processes it spawned.
func killTree(proc *os.Process) error {
	if err := syscall.Kill(-proc.Pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		return proc.Kill()
	}
	return nil
}
