package trajectory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

var requiredColumns = []string{ColT, ColTheta, ColThetaDot}

type field struct {
	col string
	idx int
	dst *float64
}

// Load reads a trajectory CSV with columns t, theta, theta_dot and optionally
// theta_ddot. Column order is free. Every failure is a *LoadError.
func Load(path string) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	tb, err := Read(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Wrapped: err}
	}

	zap.L().Debug("loaded trajectory",
		zap.String("path", path),
		zap.Int("samples", tb.Len()),
		zap.Bool("theta_ddot", tb.HasAcceleration()))
	return tb, nil
}

// LoadResult loads path and tags the table with m.
func LoadResult(m Method, path string) (*Result, error) {
	tb, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Result{Method: m, Path: path, Table: tb}, nil
}

// LoadAll loads every input and reports all failures at once.
// Nothing is returned unless every input loaded.
func LoadAll(inputs []Input) ([]*Result, error) {
	var merr *multierror.Error
	results := make([]*Result, 0, len(inputs))
	for _, in := range inputs {
		res, err := LoadResult(in.Method, in.Path)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", in.Method, err))
			continue
		}
		results = append(results, res)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return results, nil
}

// Read parses trajectory CSV from r. Errors carry line and column but no path.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Wrapped: ErrEmpty}
	}
	if err != nil {
		return nil, &LoadError{Wrapped: err}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Column: col, Wrapped: ErrMissingColumn}
		}
	}
	accIdx, withAcc := index[ColThetaDDot]

	tb := &Table{}
	if withAcc {
		tb.ThetaDDot = []float64{}
	}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Wrapped: err}
		}
		line, _ := cr.FieldPos(0)

		var s Sample
		fields := []field{
			{ColT, index[ColT], &s.T},
			{ColTheta, index[ColTheta], &s.Theta},
			{ColThetaDot, index[ColThetaDot], &s.ThetaDot},
		}
		if withAcc {
			fields = append(fields, field{ColThetaDDot, accIdx, &s.ThetaDDot})
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[f.idx]), 64)
			if err != nil {
				return nil, &LoadError{Line: line, Column: f.col, Wrapped: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &LoadError{Line: line, Column: f.col, Wrapped: ErrNonFinite}
			}
			*f.dst = v
		}
		tb.append(s, withAcc)
	}

	if tb.Len() == 0 {
		return nil, &LoadError{Wrapped: ErrEmpty}
	}
	return tb, nil
}
