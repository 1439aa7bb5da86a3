package tracing

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// DefaultTopK is the number of most-fired rules the report lists.
const DefaultTopK = 32

// Options selects which lowerings are excluded from the statistics.
type Options struct {
	ExcludeFP   bool
	ExcludeMem  bool
	ExcludeCtrl bool
	TopK        int
}

// RuleUsage is one entry of the most-fired list.
type RuleUsage struct {
	Pos   string
	Name  string
	Count int
}

// Report summarizes rule firings over a trace. "Named" counts rules with
// a non-empty name; "covered" counts distinct positions fired at least
// once.
type Report struct {
	TopK         int
	NamedUses    int
	TotalUses    int
	NamedCovered int
	TotalCovered int
	Top          []RuleUsage
}

// Summarize reduces a trace stream in a single pass. An instruction
// event recomputes the exclusion state from the enabled predicates;
// rule events count per position and record a first-seen name while the
// state is clear.
func Summarize(r io.Reader, opts Options) (*Report, error) {
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}

	counts := make(map[string]int)
	names := make(map[string]string)

	exclude := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		event, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		switch e := event.(type) {
		case nil:
		case Instruction:
			exclude = false
			if opts.ExcludeFP {
				exclude = exclude || e.IsFP()
			}
			if opts.ExcludeMem {
				exclude = exclude || e.IsMem()
			}
			if opts.ExcludeCtrl {
				exclude = exclude || e.IsCtrl()
			}
		case Rule:
			if exclude {
				continue
			}
			counts[e.Pos]++
			if _, ok := names[e.Pos]; !ok {
				names[e.Pos] = e.Name
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}

	report := &Report{TopK: opts.TopK}
	for pos, count := range counts {
		report.TotalUses += count
		report.TotalCovered++
		if names[pos] != "" {
			report.NamedUses += count
			report.NamedCovered++
		}
		report.Top = append(report.Top, RuleUsage{Pos: pos, Name: names[pos], Count: count})
	}

	// Most fired first; ties broken by position to keep output stable.
	sort.Slice(report.Top, func(i, j int) bool {
		if report.Top[i].Count != report.Top[j].Count {
			return report.Top[i].Count > report.Top[j].Count
		}
		return report.Top[i].Pos < report.Top[j].Pos
	})
	if len(report.Top) > opts.TopK {
		report.Top = report.Top[:opts.TopK]
	}

	return report, nil
}

// Render writes the report in the usual text form. Empty traces render
// zero totals with an n/a percentage rather than faulting on division.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\nNamed uses: %d/%d = %s\n", r.NamedUses, r.TotalUses, percentage(r.NamedUses, r.TotalUses)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nNamed covered: %d/%d = %s\n", r.NamedCovered, r.TotalCovered, percentage(r.NamedCovered, r.TotalCovered)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Top %d most commonly used rules:\n", r.TopK); err != nil {
		return err
	}
	for _, usage := range r.Top {
		if _, err := fmt.Fprintln(w, usage.Count, usage.Pos, usage.Name); err != nil {
			return err
		}
	}
	return nil
}

func percentage(n, total int) string {
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
