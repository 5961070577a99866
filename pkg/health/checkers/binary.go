package checkers

import (
	"context"
	"os/exec"
)

// BinaryChecker reports whether an external program can be found in PATH.
type BinaryChecker struct {
	name string
	bin  string
}

func NewBinaryChecker(name, bin string) *BinaryChecker {
	return &BinaryChecker{name: name, bin: bin}
}

func (c *BinaryChecker) Name() string { return c.name }

func (c *BinaryChecker) Check(context.Context) error {
	_, err := exec.LookPath(c.bin)
	return err
}
