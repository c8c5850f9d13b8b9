package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func records(urls ...string) []*CatRecord {
	out := make([]*CatRecord, 0, len(urls))
	for i, url := range urls {
		rec := NewCatRecord(string(rune('a'+i)), url)
		rec.MarkLoaded([]byte{0x1})
		out = append(out, rec)
	}
	return out
}

func ledgerOf(t *testing.T, decisions ...bool) *Ledger {
	t.Helper()
	ledger := NewLedger()
	for i, liked := range decisions {
		require.NoError(t, ledger.Record(i, liked))
	}
	return ledger
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		urls      []string
		decisions []bool
		wantURLs  []string
		wantSeen  int
	}{
		{
			name:      "likes and dislikes",
			urls:      []string{"A", "B", "C"},
			decisions: []bool{true, false, true},
			wantURLs:  []string{"A", "C"},
			wantSeen:  3,
		},
		{
			name:      "nothing liked",
			urls:      []string{"A", "B"},
			decisions: []bool{false, false},
			wantURLs:  []string{},
			wantSeen:  2,
		},
		{
			name:      "empty queue",
			urls:      nil,
			decisions: nil,
			wantURLs:  []string{},
			wantSeen:  0,
		},
		{
			name:      "partially decided",
			urls:      []string{"A", "B", "C", "D"},
			decisions: []bool{false, true},
			wantURLs:  []string{"B"},
			wantSeen:  2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			summary := Summarize(records(test.urls...), ledgerOf(t, test.decisions...))

			if diff := cmp.Diff(test.wantURLs, summary.URLs()); diff != "" {
				t.Errorf("URLs mismatch (-want +got):\n%s", diff)
			}
			if summary.Count != len(test.wantURLs) {
				t.Errorf("Count = %d, expected %d", summary.Count, len(test.wantURLs))
			}
			if summary.Seen != test.wantSeen {
				t.Errorf("Seen = %d, expected %d", summary.Seen, test.wantSeen)
			}
		})
	}
}

func TestSummarize_CountMatchesLedger(t *testing.T) {
	decisions := []bool{true, true, false, true, false, false, true}
	urls := []string{"0", "1", "2", "3", "4", "5", "6"}
	ledger := ledgerOf(t, decisions...)

	summary := Summarize(records(urls...), ledger)

	if summary.Count != ledger.LikedCount() {
		t.Fatalf("Count = %d, ledger has %d likes", summary.Count, ledger.LikedCount())
	}
	for i := 1; i < len(summary.Items); i++ {
		if summary.Items[i-1].Index >= summary.Items[i].Index {
			t.Errorf("items not in increasing index order: %d then %d", summary.Items[i-1].Index, summary.Items[i].Index)
		}
	}
	for _, item := range summary.Items {
		liked, ok := ledger.Decision(item.Index)
		if !ok || !liked {
			t.Errorf("item %d is not liked in ledger", item.Index)
		}
		if item.URL != urls[item.Index] {
			t.Errorf("item %d URL = %s, expected %s", item.Index, item.URL, urls[item.Index])
		}
	}
}

func TestSummarize_NilLedger(t *testing.T) {
	summary := Summarize(records("A"), nil)
	if summary.Count != 0 || len(summary.Items) != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}
