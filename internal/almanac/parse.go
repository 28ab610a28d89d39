package almanac

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/rangemap"
)

var (
	ErrInvalidAlmanac = errors.New("invalid almanac")

	headerPattern = regexp.MustCompile(`^([a-z]+)-to-([a-z]+) map$`)
)

type block struct {
	// 1-based line number of the first line
	line  int
	lines []string
}

// splitBlocks groups non-blank lines into blocks separated by blank lines.
func splitBlocks(text string) []block {
	var blocks []block
	var cur *block
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, block{line: i + 1})
			cur = &blocks[len(blocks)-1]
		}
		cur.lines = append(cur.lines, line)
	}
	return blocks
}

func lineError(line int, err error) error {
	return errors.Mark(errors.Wrapf(err, "line %d", line), ErrInvalidAlmanac)
}

func parseInt(line int, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, lineError(line, err)
	}
	return v, nil
}

// parseLabel splits "<label>: <rest>".
func parseLabel(line int, s string) (label, rest string, err error) {
	label, rest, ok := strings.Cut(s, ":")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return "", "", lineError(line, errors.Newf("expected \"<label>:\", got %q", s))
	}
	return label, rest, nil
}

func parseSeeds(b block) (label string, seeds []int64, err error) {
	if len(b.lines) != 1 {
		return "", nil, lineError(b.line+1, errors.New("seed list must be a single line"))
	}
	label, rest, err := parseLabel(b.line, b.lines[0])
	if err != nil {
		return "", nil, err
	}
	for _, f := range strings.Fields(rest) {
		v, err := parseInt(b.line, f)
		if err != nil {
			return "", nil, err
		}
		seeds = append(seeds, v)
	}
	return label, seeds, nil
}

func parseStage(b block) (Stage, error) {
	name, rest, err := parseLabel(b.line, b.lines[0])
	if err != nil {
		return Stage{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Stage{}, lineError(b.line, errors.Newf("unexpected text after stage label: %q", rest))
	}

	stage := Stage{
		Name:  name,
		Rules: new(rangemap.OffsetMap),
	}
	if parts := headerPattern.FindStringSubmatch(name); parts != nil {
		stage.Source = parts[1]
		stage.Destination = parts[2]
	}

	for i, l := range b.lines[1:] {
		line := b.line + i + 1
		fields := strings.Fields(l)
		if len(fields) != 3 {
			return Stage{}, lineError(line, errors.Newf("expected \"<dst> <src> <length>\", got %q", l))
		}
		var vals [3]int64
		for j, f := range fields {
			vals[j], err = parseInt(line, f)
			if err != nil {
				return Stage{}, err
			}
		}
		dst, src, length := vals[0], vals[1], vals[2]
		if length < 0 {
			return Stage{}, lineError(line, errors.Newf("negative length %d", length))
		} else if length == 0 {
			continue
		}

		r, ok := rangemap.NewIntervalChecked(src, length)
		if !ok {
			return Stage{}, lineError(line, errors.Newf("source range %d+%d overflows", src, length))
		}
		if _, ok := rangemap.NewIntervalChecked(dst, length); !ok {
			return Stage{}, lineError(line, errors.Newf("destination range %d+%d overflows", dst, length))
		}
		offset := dst - src
		if (src < 0 && offset < dst) || (src > 0 && offset > dst) {
			return Stage{}, lineError(line, errors.Newf("offset %d-%d overflows", dst, src))
		}
		if stage.Rules.Overlaps(r) {
			return Stage{}, lineError(line, errors.Newf("source range %v overlaps an earlier rule", r))
		}
		stage.Rules.Add(r, offset)
	}
	return stage, nil
}

// Parse reads an almanac: a seed line, then one block per stage, each
// block separated by a blank line.
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func Parse(text string) (*Almanac, error) {
	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, errors.Wrap(ErrInvalidAlmanac, "no seed list")
	}

	a := &Almanac{}
	var err error
	a.SeedLabel, a.Seeds, err = parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}

	for _, b := range blocks[1:] {
		stage, err := parseStage(b)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", len(a.Stages)+1)
		}
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}
