package deps

import "context"

// Collect looks up every entry with f, one request at a time in manifest
// order, and returns a record for each successful lookup.
//
// A failed lookup is reported through opts.Logger and the entry is left out;
// it never affects other entries. Cancelling ctx aborts the run and returns
// the context error with no records.
func Collect(ctx context.Context, entries []Dependency, f Fetcher, opts Options) ([]Record, error) {
	opts = opts.WithDefaults()

	records := make([]Record, 0, len(entries))
	for i, dep := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pkg, err := f.Fetch(ctx, dep.Name)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			opts.Logger("failed to get package information: %s: %v", dep, err)
			continue
		}

		records = append(records, NewRecord(dep, pkg))
		opts.Progress(i+1, len(entries), dep.Name)
	}
	return records, nil
}
