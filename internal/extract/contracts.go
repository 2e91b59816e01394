package extract

import (
	"context"
	"io"

	"github.com/catalogkit/extractor/internal/entity"
)

// Source identifies the stored file a pass reads from.
type Source struct {
	Path      string
	PageCount int
}

// Stream is a pull-based lazy sequence of raw candidates. Next returns
// io.EOF after the final candidate; any other error aborts the pass.
// Candidates already yielded stay valid after a failure.
type Stream interface {
	Next(ctx context.Context) (*entity.Candidate, error)
}

// Extractor is a pluggable extraction strategy invoked by a pass. The
// orchestrator treats it as opaque: it only consumes the stream and records
// whatever arrives before exhaustion or failure.
type Extractor interface {
	Extract(ctx context.Context, src Source, cfg entity.PassConfig) (Stream, error)
}

// PageList resolves a pass config to the concrete 1-based pages to visit.
// An explicit page list wins; otherwise the [StartPage, EndPage) range is
// expanded, clamped to the document.
func PageList(cfg entity.PassConfig, pageCount int) []int {
	if len(cfg.Pages) > 0 {
		pages := make([]int, len(cfg.Pages))
		copy(pages, cfg.Pages)
		return pages
	}
	last := cfg.EndPage
	if last == 0 || last > pageCount {
		last = pageCount
	}
	var pages []int
	for p := cfg.StartPage + 1; p <= last; p++ {
		pages = append(pages, p)
	}
	return pages
}

// FilterConfidence drops candidates scoring below min. Zero keeps
// everything; adapters apply it at the yield point so the orchestrator
// never sees filtered candidates.
func FilterConfidence(items []entity.Candidate, min float64) []entity.Candidate {
	if min <= 0 {
		return items
	}
	out := make([]entity.Candidate, 0, len(items))
	for _, c := range items {
		if c.Confidence >= min {
			out = append(out, c)
		}
	}
	return out
}

// SliceStream wraps a fixed candidate list as a Stream.
func SliceStream(items []entity.Candidate) Stream {
	return &sliceStream{items: items}
}

type sliceStream struct {
	items []entity.Candidate
	next  int
}

func (s *sliceStream) Next(ctx context.Context) (*entity.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.items) {
		return nil, io.EOF
	}
	c := s.items[s.next]
	s.next++
	return &c, nil
}
