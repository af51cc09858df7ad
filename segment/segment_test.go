package segment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/udcheck/sentence"
)

type scan struct {
	blocks   []*sent.Sentence
	trailing []sent.Defect
}

func scanAll(t *testing.T, in string) scan {
	t.Helper()
	sc := NewScanner(strings.NewReader(in))
	var out scan
	for sc.Next() {
		out.blocks = append(out.blocks, sc.Sentence())
	}
	require.NoError(t, sc.Err())
	out.trailing = sc.Trailing()
	return out
}

func ids(defects []sent.Defect) []string {
	var out []string
	for _, d := range defects {
		out = append(out, d.TestID)
	}
	return out
}

const row = "1\ta\ta\tX\t_\t_\t0\troot\t_\t_"

func TestScannerBlocks(t *testing.T) {
	s := scanAll(t, "# sent_id = 1\n"+row+"\n\n"+row+"\n\n")
	require.Len(t, s.blocks, 2)
	assert.Empty(t, s.trailing)

	first := s.blocks[0]
	assert.Equal(t, 1, first.Start)
	assert.Len(t, first.Comments, 1)
	assert.Len(t, first.Lines, 1)
	assert.Equal(t, 2, first.Lines[0].Number)
	assert.Empty(t, first.Defects)

	assert.Equal(t, 4, s.blocks[1].Start)
}

func TestScannerDefects(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		blocks   int
		defects  []string
		trailing []string
	}{
		{"leading blank", "\n" + row + "\n\n", 1, []string{ExtraEmptyLine}, nil},
		{"pseudo empty", row + "\n \n", 1, []string{PseudoEmptyLine}, nil},
		{"misplaced comment", row + "\n# late\n\n", 1, []string{MisplacedComment}, nil},
		{"comments only", "# sent_id = x\n\n", 1, []string{EmptySentence}, nil},
		{"crlf", row + "\r\n\n", 1, []string{NonUnixNewline}, nil},
		{"no final blank", row + "\n", 1, nil, []string{MissingEmptyLine}},
		{"no final newline", row, 1, nil, []string{MissingFinalNewline, MissingEmptyLine}},
		{"trailing blanks", row + "\n\n\n\n", 1, nil, []string{ExtraEmptyLine, ExtraEmptyLine}},
		{"empty input", "", 0, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := scanAll(t, tc.in)
			require.Len(t, s.blocks, tc.blocks)
			if tc.blocks > 0 {
				assert.Equal(t, tc.defects, ids(s.blocks[0].Defects))
			}
			assert.Equal(t, tc.trailing, ids(s.trailing))
		})
	}
}

func TestScannerCarriageReturnStripped(t *testing.T) {
	s := scanAll(t, row+"\r\n\n")
	require.Len(t, s.blocks, 1)
	l := s.blocks[0].Lines[0]
	assert.Equal(t, row, l.Text)
	assert.True(t, l.CR)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScannerReadError(t *testing.T) {
	sc := NewScanner(failingReader{})
	assert.False(t, sc.Next())
	assert.ErrorContains(t, sc.Err(), "disk on fire")
	assert.Nil(t, sc.Sentence())
}
