package catalog

// PageSize is the fixed number of records per page.
const PageSize = 5

// View is the visible window over the filtered collection, plus enough
// bookkeeping for a shell to render "page 2/3 (12 matching)".
type View struct {
	Records    []BookRecord `json:"records"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Matches    int          `json:"matches"`
}

// ComputeView derives the page of records visible for the given search
// term and 1-based page number.
//
// The filter keeps records whose title contains the term under the
// case-insensitive fold (empty term keeps everything), preserving
// collection order. TotalPages is ceil(matches/PageSize) and is 0 when
// nothing matches. Page numbers past the last page are not an error: the
// window is simply empty. Pages below 1 are treated as 1; clamping
// against the upper bound is the caller's business.
func ComputeView(c Collection, term string, page int) View {
	if page < 1 {
		page = 1
	}

	var filtered []BookRecord
	for _, rec := range c {
		if Matches(rec, term) {
			filtered = append(filtered, rec)
		}
	}

	matches := len(filtered)
	totalPages := (matches + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > matches {
		start = matches
	}
	if end > matches {
		end = matches
	}

	records := make([]BookRecord, end-start)
	copy(records, filtered[start:end])

	return View{
		Records:    records,
		Page:       page,
		TotalPages: totalPages,
		Matches:    matches,
	}
}
