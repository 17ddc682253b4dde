//go:build windows

package shell

import "os"

func killTree(proc *os.Process) error {
	return proc.Kill()
}
