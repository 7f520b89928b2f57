package dsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hashicorp/go-multierror"

	"github.com/go-rtab/rtab/frame"
	"github.com/go-rtab/rtab/logging"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines   int             // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Delimiter     rune            // The delimiter separating columns. Defaults to ,
	Comment       rune            // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue      string          // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	SkipMalformed bool            // If true, rows which fail to parse are skipped and their errors accumulated, instead of aborting the parse.
	Log           *logging.Logger // Destination for skipped-row warnings. Defaults to silent.
}

// Parser produces Tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads DSV data from r and produces a Table with the given schema.
// With SkipMalformed set, the Table contains the rows which parsed cleanly
// and the returned error is a multierror of the skipped rows' failures, or
// nil if none were skipped.
func (p *Parser) Parse(r io.Reader, schema *arrow.Schema) (*frame.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumFields()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	pool := memory.NewGoAllocator()
	builders := make([]array.Builder, schema.NumFields())
	for i, field := range schema.Fields() {
		builders[i] = array.NewBuilder(pool, field.Type)
		defer builders[i].Release()
	}

	var multierr *multierror.Error
	nrows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// only per-row parse failures are skippable; anything else is a
			// reader failure which csv.Reader re-returns forever
			var parseErr *csv.ParseError
			if !p.conf.SkipMalformed || !errors.As(err, &parseErr) {
				return nil, err
			}
			multierr = multierror.Append(multierr, err)
			p.conf.Log.Logf(logging.WarnLevel, "skipping malformed row: %v", err)
			continue
		}
		if err := p.parseRow(record, schema, builders); err != nil {
			if !p.conf.SkipMalformed {
				return nil, err
			}
			multierr = multierror.Append(multierr, err)
			p.conf.Log.Logf(logging.WarnLevel, "skipping malformed row: %v", err)
			continue
		}
		nrows++
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

// parseRow validates every field of record before appending anything, so a
// malformed row never leaves a partial row in the builders
func (p *Parser) parseRow(record []string, schema *arrow.Schema, builders []array.Builder) error {
	vals, err := p.parseValues(record, schema)
	if err != nil {
		return err
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

func (p *Parser) parseValues(record []string, schema *arrow.Schema) ([]interface{}, error) {
	vals := make([]interface{}, len(record))
	for i, raw := range record {
		field := schema.Field(i)
		if raw == p.conf.NilValue {
			vals[i] = nil
			continue
		}
		switch field.Type.ID() {
		case arrow.BOOL:
			bval, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("Column %s was not a boolean. Was: %#v", field.Name, raw)
			}
			vals[i] = bval
		case arrow.INT64:
			nval, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Column %s was not an integer. Was: %#v", field.Name, raw)
			}
			vals[i] = nval
		case arrow.FLOAT64:
			nval, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("Column %s was not a number. Was: %#v", field.Name, raw)
			}
			vals[i] = nval
		case arrow.STRING:
			vals[i] = raw
		default:
			return nil, fmt.Errorf("DSV parsing does not support column type %s", field.Type)
		}
	}
	return vals, nil
}
