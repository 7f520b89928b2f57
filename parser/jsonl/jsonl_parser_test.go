package jsonl

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func testSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "loc.lat", Type: arrow.PrimitiveTypes.Float64},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
	}, nil)
}

func TestParseBasic(t *testing.T) {
	data := `{"name": "Alice", "loc": {"lat": 1.5}, "active": true}
{"name": "Bob", "loc": {"lat": 2.5}, "active": false}
`
	parser := CreateParser(&ParserConf{})
	table, err := parser.Parse(strings.NewReader(data), testSchema())
	require.Nil(t, err)
	defer table.Release()

	require.Equal(t, 2, table.NumRows())
	col, err := table.Col("loc.lat")
	require.Nil(t, err)
	vals, err := col.Float64s()
	require.Nil(t, err)
	require.Equal(t, []float64{1.5, 2.5}, vals)
}

func TestParseMissingFieldIsNull(t *testing.T) {
	data := `{"name": "Alice"}
`
	parser := CreateParser(&ParserConf{})
	table, err := parser.Parse(strings.NewReader(data), testSchema())
	require.Nil(t, err)
	defer table.Release()

	col, err := table.Col("loc.lat")
	require.Nil(t, err)
	require.True(t, col.IsNull(0))
}

func TestParseBlankLinesIgnored(t *testing.T) {
	data := "\n{\"name\": \"Alice\", \"loc\": {\"lat\": 1.5}, \"active\": true}\n\n"
	parser := CreateParser(&ParserConf{})
	table, err := parser.Parse(strings.NewReader(data), testSchema())
	require.Nil(t, err)
	defer table.Release()
	require.Equal(t, 1, table.NumRows())
}

func TestParseWrongTypeAborts(t *testing.T) {
	data := `{"name": 12, "loc": {"lat": 1.5}, "active": true}
`
	parser := CreateParser(&ParserConf{})
	_, err := parser.Parse(strings.NewReader(data), testSchema())
	require.NotNil(t, err)
}

func TestParseSkipMalformed(t *testing.T) {
	data := `{"name": "Alice", "loc": {"lat": 1.5}, "active": true}
{"name": 12, "loc": {"lat": 2.5}, "active": false}
{"name": "Carol", "loc": {"lat": 3.5}, "active": true}
`
	parser := CreateParser(&ParserConf{SkipMalformed: true})
	table, err := parser.Parse(strings.NewReader(data), testSchema())
	require.NotNil(t, err)
	defer table.Release()

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 1)
	require.Equal(t, 2, table.NumRows())
}
