package model

// LikedCat is one entry of the summary gallery
type LikedCat struct {
	Index  int
	URL    string
	Record *CatRecord
}

// Summary is the end-of-session result
type Summary struct {
	Count int        // number of liked cats
	Seen  int        // number of decided cards
	Items []LikedCat // liked cats in increasing index order
}

// URLs returns the image URLs of the liked cats in order
func (s Summary) URLs() []string {
	urls := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		urls = append(urls, item.URL)
	}
	return urls
}

// Summarize collects every record whose ledger decision is true.
// Records past the end of the ledger are treated as undecided.
func Summarize(records []*CatRecord, ledger *Ledger) Summary {
	summary := Summary{Items: make([]LikedCat, 0)}
	if ledger == nil {
		return summary
	}
	summary.Seen = ledger.Len()

	for i, record := range records {
		liked, ok := ledger.Decision(i)
		if !ok || !liked || record == nil {
			continue
		}
		summary.Items = append(summary.Items, LikedCat{
			Index:  i,
			URL:    record.URL,
			Record: record,
		})
	}
	summary.Count = len(summary.Items)

	return summary
}
