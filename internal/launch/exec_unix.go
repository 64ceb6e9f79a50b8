//go:build unix

package launch

import "syscall"

// replaceProcess substitutes the current process image with the server
// via execve(2). On success it does not return: the orchestrator's PID
// now runs the server, which inherits the exit-status slot directly.
// A return value is always an error from the kernel (e.g. ENOEXEC).
func replaceProcess(binary string, argv []string, env []string) error {
	return syscall.Exec(binary, argv, env)
}
