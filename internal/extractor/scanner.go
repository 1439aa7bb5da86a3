package extractor

import (
	"bufio"
	"io"
	"strings"

	log "github.com/xuperchain/log15"
)

// scanState enumerates the phases of arm reconstruction.
type scanState int

const (
	// seekFunction: searching for the translation function signature.
	seekFunction scanState = iota
	// seekDispatch: inside the function, searching for the dispatch open.
	seekDispatch
	// awaitBranch: at an arm boundary, pattern accumulator empty.
	awaitBranch
	// accumulatePattern: collecting a multi-line pattern.
	accumulatePattern
	// accumulateBody: collecting a nested block body.
	accumulateBody
)

// Scanner reconstructs dispatch arms from raw translator source. It is
// a line-oriented state machine: lines are classified by the profile's
// prefix and suffix markers, never tokenized. Newlines are kept on each
// line so that suffix markers like ",\n" can be matched directly.
type Scanner struct {
	profile Profile
	r       *bufio.Reader
	log     log.Logger
}

// NewScanner returns a Scanner over the given source text.
func NewScanner(r io.Reader, profile Profile) *Scanner {
	return &Scanner{
		profile: profile,
		r:       bufio.NewReader(r),
		log:     log.New("module", "extractor"),
	}
}

// Scan runs the state machine to completion and returns the arms in
// source order. Scanning ends normally at the dispatch close marker;
// exhausting the input before both anchors have been seen is a
// NotFoundError.
func (s *Scanner) Scan() ([]Arm, error) {
	var (
		arms    []Arm
		pattern strings.Builder
		body    strings.Builder
	)

	state := seekFunction
	for {
		line, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			switch state {
			case seekFunction:
				return nil, &NotFoundError{Anchor: s.profile.FuncAnchor}
			case seekDispatch:
				return nil, &NotFoundError{Anchor: s.profile.DispatchOpen}
			default:
				return nil, &NotFoundError{Anchor: s.profile.DispatchClose}
			}
		}

		switch state {
		case seekFunction:
			if strings.HasPrefix(line, s.profile.FuncAnchor) {
				s.log.Debug("found target", "anchor", s.profile.FuncAnchor)
				state = seekDispatch
			}

		case seekDispatch:
			if strings.HasPrefix(line, s.profile.DispatchOpen) {
				s.log.Debug("found target", "anchor", s.profile.DispatchOpen)
				state = awaitBranch
			}

		case awaitBranch, accumulatePattern:
			// Single-line arms and the dispatch close take precedence on
			// every pattern-phase line.
			if arm, ok := s.profile.singleLine(line); ok {
				if err := s.emit(&arms, arm); err != nil {
					return nil, err
				}
				pattern.Reset()
				state = awaitBranch
				continue
			}
			if strings.HasPrefix(line, s.profile.DispatchClose) {
				return arms, nil
			}
			pattern.WriteString(line)
			if strings.HasSuffix(line, s.profile.BlockOpen) {
				state = accumulateBody
			} else {
				state = accumulatePattern
			}

		case accumulateBody:
			body.WriteString(line)
			if strings.HasPrefix(line, s.profile.BodyClose) {
				arm := Arm{Pattern: pattern.String(), Body: body.String()}
				if err := s.emit(&arms, arm); err != nil {
					return nil, err
				}
				pattern.Reset()
				body.Reset()
				state = awaitBranch
			}
		}
	}
}

// emit appends a reconstructed arm after checking the invariant that
// both pattern and body are non-empty.
func (s *Scanner) emit(arms *[]Arm, arm Arm) error {
	s.log.Debug("arm", "pattern", arm.Pattern)
	if arm.Pattern == "" || arm.Body == "" {
		return &EmptyTranslationError{Arm: arm}
	}
	*arms = append(*arms, arm)
	return nil
}
