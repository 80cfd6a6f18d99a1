package locator

import (
	"golang.org/x/sys/unix"
)

const procSelfExe = "/proc/self/exe"

// ProcSelf reads the kernel's link to the running image.
type ProcSelf struct {
	// Link defaults to /proc/self/exe.
	Link string
}

func (p ProcSelf) Executable() string {
	link := p.Link
	if link == "" {
		link = procSelfExe
	}

	buf := make([]byte, unix.PathMax)
	n, err := unix.Readlink(link, buf)
	if err != nil || n <= 0 {
		return ""
	}
	return string(buf[:n])
}

// Platform returns the lookup chain for Linux.
func Platform() Locator {
	return Chain{ProcSelf{}, Native{}, Args{}}
}
