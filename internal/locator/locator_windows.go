package locator

import (
	"golang.org/x/sys/windows"
)

// ModuleFileName asks the loader for the path of the process image.
type ModuleFileName struct{}

func (ModuleFileName) Executable() string {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// Platform returns the lookup chain for Windows.
func Platform() Locator {
	return Chain{ModuleFileName{}, Native{}, Args{}}
}
