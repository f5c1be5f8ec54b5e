// ABOUTME: Folds parsed search rows into Package records, merging wrapped descriptions
// ABOUTME: Output is most-recent-first: the last record started is at index 0

package search

import "slices"

// Result is the outcome of parsing one block of search output.
type Result struct {
	Packages []Package // most recently started record first
	Merged   int       // continuation lines folded into a record
	Dropped  int       // continuation lines with no record to attach to
}

// Reconcile folds rows, in input order, into records.
//
// A row with a name starts a new record which becomes the current one. A row
// without a name is a continuation: its description is appended to the
// current record's detail. A continuation before any record is dropped.
//
// The returned slice is ordered most-recent-first, as if every new record had
// been pushed onto the front of the list. Callers wanting the order the
// records appeared in should reverse it.
func Reconcile(rows []Row) Result {
	var res Result
	// Built back-to-front: the current record is the last element.
	acc := make([]Package, 0, len(rows))
	for _, r := range rows {
		if !r.IsContinuation() {
			acc = append(acc, newPackage(r))
			continue
		}
		if len(acc) == 0 {
			res.Dropped++
			continue
		}
		last := len(acc) - 1
		acc[last] = acc[last].merge(r)
		res.Merged++
	}
	slices.Reverse(acc)
	res.Packages = acc
	return res
}

// Parse parses raw search output and reconciles its rows.
func Parse(data string) Result {
	return Reconcile(ParseTable(data).Rows())
}

// ParseOutput returns the records in data, most recently started first.
func ParseOutput(data string) []Package {
	return Parse(data).Packages
}

// Chronological returns a copy of pkgs in the order they appeared in the output.
func Chronological(pkgs []Package) []Package {
	out := slices.Clone(pkgs)
	slices.Reverse(out)
	return out
}
