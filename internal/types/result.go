package types

import "errors"

type (
	// DirectoryResult is the outcome of indexing a single directory.
	DirectoryResult struct {
		Dir     string `json:"dir"`
		Entries int    `json:"entries"`
		Rows    int    `json:"rows"`
		Written bool   `json:"written"`
		Err     error  `json:"-"`
	}

	// RunReport collects the results of one generator run, in processing order.
	RunReport struct {
		Results []DirectoryResult `json:"results"`
	}
)

// OK reports whether the directory was processed without error.
func (r DirectoryResult) OK() bool {
	return r.Err == nil
}

// Failed returns the results that carry an error.
func (r RunReport) Failed() []DirectoryResult {
	var failed []DirectoryResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins every per-directory error, or returns nil if all succeeded.
func (r RunReport) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}
