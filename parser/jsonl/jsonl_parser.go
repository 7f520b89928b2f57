package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/go-rtab/rtab/frame"
	"github.com/go-rtab/rtab/logging"
)

// maxLineLength bounds a single line of JSON, in bytes
const maxLineLength = 1024 * 1024

// ParserConf configures a JSONL Parser
type ParserConf struct {
	SkipMalformed bool            // If true, lines which fail to parse are skipped and their errors accumulated, instead of aborting the parse.
	Log           *logging.Logger // Destination for skipped-line warnings. Defaults to silent.
}

// Parser produces Tables from JSON Lines data. Columns are located within
// each line using their schema name, which should be a gjson path. Values
// which do not correspond to a schema column are ignored.
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	return &Parser{conf: conf}
}

// Parse reads JSON Lines data from r and produces a Table with the given
// schema. Blank lines are ignored. With SkipMalformed set, the Table
// contains the lines which parsed cleanly and the returned error is a
// multierror of the skipped lines' failures, or nil if none were skipped.
func (p *Parser) Parse(r io.Reader, schema *arrow.Schema) (*frame.Table, error) {
	pool := memory.NewGoAllocator()
	builders := make([]array.Builder, schema.NumFields())
	for i, field := range schema.Fields() {
		builders[i] = array.NewBuilder(pool, field.Type)
		defer builders[i].Release()
	}

	var multierr *multierror.Error
	nrows := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		err := parseJSONRow(gjson.Parse(line), schema, builders)
		if err != nil {
			if !p.conf.SkipMalformed {
				return nil, err
			}
			multierr = multierror.Append(multierr, err)
			p.conf.Log.Logf(logging.WarnLevel, "skipping malformed line: %v", err)
			continue
		}
		nrows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	arrays := make([]arrow.Array, len(builders))
	for i, builder := range builders {
		arrays[i] = builder.NewArray()
		defer arrays[i].Release()
	}
	rec := array.NewRecord(schema, arrays, int64(nrows))
	defer rec.Release()
	table, err := frame.FromRecord(rec, nil)
	if err != nil {
		return nil, err
	}
	return table, multierr.ErrorOrNil()
}

// parseJSONRow validates every field of row before appending anything, so a
// malformed line never leaves a partial row in the builders
func parseJSONRow(row gjson.Result, schema *arrow.Schema, builders []array.Builder) error {
	vals := make([]interface{}, schema.NumFields())
	for i, field := range schema.Fields() {
		res := row.Get(field.Name)
		if !res.Exists() || res.Type == gjson.Null {
			vals[i] = nil
			continue
		}
		switch field.Type.ID() {
		case arrow.BOOL:
			if !res.IsBool() {
				return fmt.Errorf("Column %s was not a boolean. Was: %s", field.Name, res.Raw)
			}
			vals[i] = res.Bool()
		case arrow.INT64:
			if res.Type != gjson.Number {
				return fmt.Errorf("Column %s was not a number. Was: %s", field.Name, res.Raw)
			}
			vals[i] = res.Int()
		case arrow.FLOAT64:
			if res.Type != gjson.Number {
				return fmt.Errorf("Column %s was not a number. Was: %s", field.Name, res.Raw)
			}
			vals[i] = res.Float()
		case arrow.STRING:
			if res.Type != gjson.String {
				return fmt.Errorf("Column %s was not a string. Was: %s", field.Name, res.Raw)
			}
			vals[i] = res.String()
		default:
			return fmt.Errorf("JSONL parsing does not support column type %s", field.Type)
		}
	}
	for i, val := range vals {
		if val == nil {
			builders[i].AppendNull()
			continue
		}
		switch typed := val.(type) {
		case bool:
			builders[i].(*array.BooleanBuilder).Append(typed)
		case int64:
			builders[i].(*array.Int64Builder).Append(typed)
		case float64:
			builders[i].(*array.Float64Builder).Append(typed)
		case string:
			builders[i].(*array.StringBuilder).Append(typed)
		}
	}
	return nil
}
