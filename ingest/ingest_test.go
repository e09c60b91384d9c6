package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

func TestFromRecords(t *testing.T) {
	g, err := FromRecords("g",
		[]NodeRecord{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}, {ID: 3, Label: "c"}},
		[]EdgeRecord{{From: 1, To: 2, Label: "x"}, {From: 3, To: 1, Label: "y"}})
	require.NoError(t, err)

	require.NoError(t, g.Validate(), "constructed graphs must satisfy the adjacency invariant")
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
	assert.NotEmpty(t, g.UID)

	// Edge ids are sequential from 1 in record order.
	assert.Equal(t, models.NodeID(1), g.Edges[1].From)
	assert.Equal(t, models.NodeID(2), g.Edges[1].To)
	assert.Equal(t, models.NodeID(3), g.Edges[2].From)
}

func TestFromRecordsRejectsDuplicateNode(t *testing.T) {
	_, err := FromRecords("g",
		[]NodeRecord{{ID: 1, Label: "a"}, {ID: 1, Label: "again"}}, nil)
	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestFromRecordsRejectsUnknownEndpoint(t *testing.T) {
	_, err := FromRecords("g",
		[]NodeRecord{{ID: 1, Label: "a"}},
		[]EdgeRecord{{From: 1, To: 2, Label: "dangling"}})
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestParseText(t *testing.T) {
	input := `1 Dreams
2 Waking Life
3 Memories

--
1 2 fades into
2 3 is built from
`

	g, err := ParseText("t", strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
	assert.Equal(t, "Waking Life", g.Nodes[2].Label, "labels keep their spaces")
	assert.Equal(t, "fades into", g.Edges[1].Label)
}

func TestParseTextSeparatorVariants(t *testing.T) {
	for _, sep := range []string{"-", "--", "----------"} {
		input := "1 a\n" + sep + "\n"
		g, err := ParseText("t", strings.NewReader(input))
		require.NoError(t, err, "separator %q", sep)
		assert.Len(t, g.Nodes, 1)
		assert.Empty(t, g.Edges)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing separator", "1 a\n2 b\n", ErrMissingSeparator},
		{"node without label", "1\n--\n", ErrMalformedRecord},
		{"bad node id", "x label\n--\n", ErrMalformedRecord},
		{"edge without label", "1 a\n2 b\n--\n1 2\n", ErrMalformedRecord},
		{"bad edge endpoint", "1 a\n2 b\n--\n1 x label\n", ErrMalformedRecord},
		{"edge to undeclared node", "1 a\n--\n1 9 label\n", ErrUnknownEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText("t", strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseTextReportsLineNumbers(t *testing.T) {
	_, err := ParseText("t", strings.NewReader("1 a\n2 b\n--\nbroken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestSample(t *testing.T) {
	g := Sample()
	require.NoError(t, g.Validate())
	assert.NotEmpty(t, g.Nodes)
	assert.NotEmpty(t, g.Edges)
}
