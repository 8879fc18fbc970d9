package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/arc/comb"
)

type JSONEncoder struct {
	w     io.Writer
	state comb.State
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(s comb.State) error {
	e.state = s
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildDocument(e.state), "", "  ")
}
