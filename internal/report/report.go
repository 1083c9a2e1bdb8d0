// internal/report/report.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/srikanth-srinvas/TFBSFinder/internal/output"
)

// SiteCount is one entry of the frequency table.
type SiteCount struct {
	Site  string
	Count int
}

// Summary aggregates a TFBS result file: the top-K most common sites and
// the number of sequences with no site on either strand.
type Summary struct {
	Top       []SiteCount
	NoSite    int
	Sequences int
}

// Analyze tallies site frequencies from a result file produced by
// tfbsfinder. The header line is skipped when present; a data row with
// fewer than two fields is an error naming the line.
func Analyze(r io.Reader, delim string, topK int) (Summary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	counts := make(map[string]int)
	var s Summary
	lineNo := 0
	seenData := false
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		// The header may sit below leading blank lines; only the first
		// non-blank line can be one.
		if !seenData {
			seenData = true
			if strings.HasPrefix(line, output.ColSequenceID) {
				continue
			}
		}
		fields := strings.Split(line, delim)
		if len(fields) < 2 {
			return Summary{}, fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNo, len(fields))
		}
		s.Sequences++
		sites := fields[1:]
		if len(sites) == 1 && sites[0] == output.NoneToken {
			s.NoSite++
			continue
		}
		for _, site := range sites {
			counts[site]++
		}
	}
	if err := sc.Err(); err != nil {
		return Summary{}, fmt.Errorf("read results: %w", err)
	}

	s.Top = topCounts(counts, topK)
	return s, nil
}

// topCounts returns the K most frequent sites, ties broken by site for
// deterministic output.
func topCounts(counts map[string]int, k int) []SiteCount {
	all := make([]SiteCount, 0, len(counts))
	for site, n := range counts {
		all = append(all, SiteCount{Site: site, Count: n})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Site < all[j].Site
	})
	if k > 0 && len(all) > k {
		all = all[:k]
	}
	return all
}

// WriteSummary renders the frequency table and no-hit count as TSV.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "Top %d most common TFBS sequences:\n", len(s.Top)); err != nil {
		return err
	}
	for _, sc := range s.Top {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", sc.Site, sc.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nNumber of sequences without any TFBS:\t%d\n", s.NoSite)
	return err
}
