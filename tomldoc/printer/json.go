package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/tomlkit/tomldoc"
)

// MarshalJSON writes the table as an object with keys in declaration order.
func (o *ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(jsonValue(o.vals[i]))
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue maps values JSON cannot carry natively onto strings.
func jsonValue(x any) any {
	switch v := x.(type) {
	case float64:
		switch {
		case math.IsNaN(v):
			return "nan"
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		}
		return v
	case tomldoc.Timestamp:
		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = jsonValue(e)
		}
		return out
	default:
		return x
	}
}

func (p *Printer) printJSON(v tomldoc.Value) error {
	x, err := p.collect(v, 0)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(jsonValue(x), "", strings.Repeat(" ", p.opts.IndentSize))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
