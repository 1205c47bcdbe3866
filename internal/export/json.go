package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/astrosim/internal/orbit"
	"github.com/san-kum/astrosim/internal/storage"
)

type RunData struct {
	ID      string                `json:"id"`
	Body    string                `json:"body"`
	A       float64               `json:"a"`
	E       float64               `json:"e"`
	Period  float64               `json:"period"`
	Timing  string                `json:"timing"`
	Steps   int                   `json:"steps"`
	Metrics map[string]float64    `json:"metrics"`
	Areas   *orbit.AreaComparison `json:"areas,omitempty"`
	Frames  []orbit.Frame         `json:"frames"`
}

// WriteJSON encodes a run and its frames as indented JSON.
func WriteJSON(w io.Writer, meta *storage.RunMetadata, frames []orbit.Frame) error {
	data := RunData{
		ID:      meta.ID,
		Body:    meta.Body,
		A:       meta.A,
		E:       meta.E,
		Period:  meta.Period,
		Timing:  meta.Timing,
		Steps:   len(frames),
		Metrics: meta.Metrics,
		Areas:   meta.Areas,
		Frames:  frames,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
