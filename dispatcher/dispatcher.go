// Package dispatcher applies a theme to the configuration files of every
// selected application.
package dispatcher

import (
	"github.com/charmbracelet/log"

	"teems/apps"
	"teems/model"
	"teems/theme"
)

// Files reads, resolves and writes configuration files.
type Files interface {
	Resolve(app apps.App, extra []string) []string
	Read(path string) (string, error)
	Write(path, content string) error
}

// Options tunes a Dispatcher.
type Options struct {
	// DryRun converts files without writing them back.
	DryRun bool
	// Extra lists additional config paths per app name.
	Extra map[string][]string
}

// Dispatcher runs the read, convert and write cycle.
type Dispatcher struct {
	files    Files
	apps     []apps.App
	opts     Options
	onResult func(model.FileResult)
}

// New creates a Dispatcher over the given apps, processed in order.
func New(files Files, registry []apps.App, opts Options) *Dispatcher {
	return &Dispatcher{
		files: files,
		apps:  append([]apps.App(nil), registry...),
		opts:  opts,
	}
}

// SetOnResult registers a callback invoked after each file is processed.
func (d *Dispatcher) SetOnResult(fn func(model.FileResult)) {
	d.onResult = fn
}

// Run applies t to every resolved file. A failing file is recorded and the
// run continues; files already rewritten are not rolled back.
func (d *Dispatcher) Run(t *theme.Theme) model.Report {
	report := model.Report{Theme: t.Name}

	for _, app := range d.apps {
		paths := d.files.Resolve(app, d.opts.Extra[app.Name])
		if len(paths) == 0 {
			log.Debug("no config files found", "app", app.Name)
			continue
		}
		for _, path := range paths {
			res := d.runOnce(app, path, t)
			report.Add(res)
			if d.onResult != nil {
				d.onResult(res)
			}
		}
	}

	return report
}

func (d *Dispatcher) runOnce(app apps.App, path string, t *theme.Theme) model.FileResult {
	res := model.FileResult{App: app.Name, Path: path}

	original, err := d.files.Read(path)
	if err != nil {
		log.Error("read failed", "app", app.Name, "path", path, "err", err)
		res.Err = err
		return res
	}

	converted := app.Convert(t, original)
	res.Bytes = len(converted)
	res.Changed = converted != original

	if !res.Changed || d.opts.DryRun {
		log.Debug("not writing", "app", app.Name, "path", path, "changed", res.Changed, "dryRun", d.opts.DryRun)
		return res
	}

	if err := d.files.Write(path, converted); err != nil {
		log.Error("write failed", "app", app.Name, "path", path, "err", err)
		res.Err = err
		return res
	}
	res.Written = true
	log.Debug("rewrote config", "app", app.Name, "path", path)
	return res
}
