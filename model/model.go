package model

import "errors"

// FileResult is the outcome of re-theming one configuration file.
type FileResult struct {
	App     string `json:"app"`
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
	Bytes   int    `json:"bytes"`
	Err     error  `json:"-"`
}

// OK reports whether the file was processed without error.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Report collects the results of one activation run in processing order.
type Report struct {
	Theme   string       `json:"theme"`
	Results []FileResult `json:"results"`
}

// Add appends a result.
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Succeeded returns the results without errors.
func (r *Report) Succeeded() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the results with errors.
func (r *Report) Failed() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every per-file error, or returns nil when all files succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}
