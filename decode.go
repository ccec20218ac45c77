package chartdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/chartdata/date"
	"github.com/shopspring/decimal"
)

// This file decodes the series payloads returned by the API. Two shapes exist:
//
//	quantities and values: [["2020-01-06", 107], ["2020-01-05", 106.5]]
//	prices:                [{"date": "2020-01-06", "value": "107.25"}]
//
// Dates are truncated to the day, values are read exactly as decimals before being
// converted to float64. The order of the payload is preserved.

// ErrUnknownShape is returned when a payload is neither a list of pairs nor a list
// of {date, value} objects.
var ErrUnknownShape = errors.New("unknown series shape")

// Decode reads a series payload of either shape from r.
//
// If path is not empty, it is a JSONPath expression (e.g. "$.results") selecting
// the list in a larger document.
func Decode(r io.Reader, path string) (Series, error) {
	doc, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	if path != "" {
		doc, err = jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot select %q in payload: %w", path, err)
		}
	}
	return FromJSON(doc)
}

// DecodePairs reads a list of [date, value] pairs from r.
func DecodePairs(r io.Reader) (Series, error) {
	list, err := decodeList(r)
	if err != nil {
		return nil, err
	}
	return fromPairs(list)
}

// DecodePrices reads a list of {date, value} objects from r.
func DecodePrices(r io.Reader) (Series, error) {
	list, err := decodeList(r)
	if err != nil {
		return nil, err
	}
	return fromObjects(list)
}

// FromJSON converts a generic JSON value, as produced by encoding/json, into a
// Series. The shape is detected from the first element.
func FromJSON(doc any) (Series, error) {
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want a list got %T", ErrUnknownShape, doc)
	}
	if len(list) == 0 {
		return Series{}, nil
	}
	switch list[0].(type) {
	case []any:
		return fromPairs(list)
	case map[string]any:
		return fromObjects(list)
	default:
		return nil, fmt.Errorf("%w: list of %T", ErrUnknownShape, list[0])
	}
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	// keep numbers as written, they are parsed as decimals.
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("payload is not a correct json: %w", err)
	}
	return doc, nil
}

func decodeList(r io.Reader) ([]any, error) {
	doc, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want a list got %T", ErrUnknownShape, doc)
	}
	return list, nil
}

func fromPairs(list []any) (Series, error) {
	series := make(Series, 0, len(list))
	for i, elem := range list {
		pair, ok := elem.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("element %d: want a [date, value] pair got %v", i, elem)
		}
		p, err := point(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		series = append(series, p)
	}
	return series, nil
}

func fromObjects(list []any) (Series, error) {
	series := make(Series, 0, len(list))
	for i, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: want a {date, value} object got %v", i, elem)
		}
		jdate, ok := obj["date"]
		if !ok {
			return nil, fmt.Errorf("element %d: missing the property %q", i, "date")
		}
		jvalue, ok := obj["value"]
		if !ok {
			return nil, fmt.Errorf("element %d: missing the property %q", i, "value")
		}
		p, err := point(jdate, jvalue)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		series = append(series, p)
	}
	return series, nil
}

func point(jdate, jvalue any) (Point, error) {
	str, ok := jdate.(string)
	if !ok {
		return Point{}, fmt.Errorf("date is not a string: %v", jdate)
	}
	on, err := date.Parse(str)
	if err != nil {
		return Point{}, err
	}
	value, err := parseValue(jvalue)
	if err != nil {
		return Point{}, err
	}
	return Point{Date: on, Value: value}, nil
}

// parseValue reads a value written as a json number or a numeric string.
func parseValue(jvalue any) (float64, error) {
	var str string
	switch v := jvalue.(type) {
	case json.Number:
		str = v.String()
	case string:
		str = strings.TrimSpace(v)
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("value is neither a number nor a numeric string: %v", jvalue)
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", str, err)
	}
	return d.InexactFloat64(), nil
}

// EncodeSeries writes s as a list of {date, value} objects, the form chart widgets
// consume.
func EncodeSeries(w io.Writer, s Series) error {
	if s == nil {
		s = Series{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(s)
}
