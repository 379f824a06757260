package bundler

import (
	"os"
	"path/filepath"
)

// Driver runs Phase A, then B, then C against a shared Context and
// flushes the sink to disk on success. No phase runs again once the
// next has begun.
type Driver struct {
	ctx *Context
}

// NewDriver constructs a Driver around an already-built Context.
func NewDriver(ctx *Context) *Driver {
	return &Driver{ctx: ctx}
}

// Run executes the bundler end to end. Any I/O or parse error aborts
// immediately; no partial output is written.
func (d *Driver) Run() error {
	if err := runPhaseA(d.ctx); err != nil {
		return err
	}
	if err := runPhaseB(d.ctx); err != nil {
		return err
	}
	if err := runPhaseC(d.ctx); err != nil {
		return err
	}
	return d.flush()
}

// flush writes the accumulated output sink to DestPath, creating the
// destination directory if needed.
func (d *Driver) flush() error {
	dir := filepath.Dir(d.ctx.DestPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newError(KindIoError, dir, err)
	}
	if err := os.WriteFile(d.ctx.DestPath, d.ctx.Output(), 0o644); err != nil {
		return newError(KindIoError, d.ctx.DestPath, err)
	}
	return nil
}
