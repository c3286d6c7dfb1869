// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/linediff"
)

// ErrUnavailable is returned by Detect when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found")

// Ensure Command implements the Clipboard interface.
var _ linediff.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external command.
type Command struct {
	name string
	args []string
}

// NewCommand returns a clipboard that runs name with args and writes the
// content to its standard input.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// NewPBCopy returns a clipboard using the macOS pbcopy command.
func NewPBCopy() *Command {
	return NewCommand("pbcopy")
}

// NewWLCopy returns a clipboard using wl-copy on Wayland.
func NewWLCopy() *Command {
	return NewCommand("wl-copy")
}

// NewXClip returns a clipboard using xclip on X11.
func NewXClip() *Command {
	return NewCommand("xclip", "-selection", "clipboard")
}

// Detect returns the first clipboard command available on this system.
func Detect() (*Command, error) {
	return detect(runtime.GOOS, exec.LookPath)
}

func detect(goos string, lookPath func(string) (string, error)) (*Command, error) {
	var candidates []*Command
	if goos == "darwin" {
		candidates = []*Command{NewPBCopy()}
	} else {
		candidates = []*Command{NewWLCopy(), NewXClip()}
	}

	for _, c := range candidates {
		if _, err := lookPath(c.name); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnavailable
}

// Name returns the command the clipboard runs.
func (c *Command) Name() string {
	return c.name
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s failed: %s", c.name, msg)
		}
		return fmt.Errorf("%s failed: %w", c.name, err)
	}
	return nil
}
