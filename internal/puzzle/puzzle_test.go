package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unsolvedGrid = "509003407001547893473910560057030684102860309836704105390076201010382040204000730"
const solvedGrid = "589623417621547893473918562957231684142865379836794125398476251715382946264159738"

func TestFromStringRoundTrips(t *testing.T) {
	p, err := FromString(unsolvedGrid)
	require.NoError(t, err)
	assert.Equal(t, unsolvedGrid, p.String())
}

func TestFromStringRejectsWrongLength(t *testing.T) {
	_, err := FromString(strings.Repeat("0", 80))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestFromStringRejectsNonDigit(t *testing.T) {
	bad := "x" + unsolvedGrid[1:]
	_, err := FromString(bad)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestIsSolved(t *testing.T) {
	unsolved, err := FromString(unsolvedGrid)
	require.NoError(t, err)
	assert.False(t, unsolved.IsSolved())

	solved, err := FromString(solvedGrid)
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())
}

func TestIsValidDetectsRowConflict(t *testing.T) {
	p := New()
	p.Write(0, 0, 5)
	p.Write(0, 1, 5)
	assert.False(t, p.IsValid(ScopeWhole{}))
}

func TestIsValidDetectsBoxConflict(t *testing.T) {
	p := New()
	p.Write(0, 0, 5)
	p.Write(1, 1, 5)
	assert.False(t, p.IsValid(ScopeWhole{}))
}

func TestIsValidAcceptsSolvedGrid(t *testing.T) {
	p, err := FromString(solvedGrid)
	require.NoError(t, err)
	assert.True(t, p.IsValid(ScopeWhole{}))
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := FromString(unsolvedGrid)
	require.NoError(t, err)

	clone := p.Clone()
	clone.Write(0, 0, 9)

	assert.NotEqual(t, p.Read(0, 0), clone.Read(0, 0))
}

func TestBoxNumbering(t *testing.T) {
	assert.Equal(t, 0, Box(0, 0))
	assert.Equal(t, 0, Box(2, 2))
	assert.Equal(t, 4, Box(4, 4))
	assert.Equal(t, 8, Box(8, 8))
}

func TestReadParsesLinesLeavingNonDigitsEmpty(t *testing.T) {
	input := "53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79\n"
	p := Read(strings.NewReader(input))
	assert.Equal(t, int8(5), p.Read(0, 0))
	assert.Equal(t, int8(0), p.Read(0, 2))
	assert.Equal(t, int8(9), p.Read(8, 8))
}
