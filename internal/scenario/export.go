package scenario

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type exportFrame struct {
	T          float64 `json:"t"`
	Progress   float64 `json:"progress"`
	Scrolling  bool    `json:"scrolling"`
	State      string  `json:"state"`
	SizeRem    float64 `json:"size_rem"`
	Scale      float64 `json:"scale"`
	Opacity    float64 `json:"opacity"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visible    bool    `json:"visible"`
	Enlarged   int     `json:"enlarged"`
	BurstFired bool    `json:"burst_fired,omitempty"`
	Droplets   int     `json:"droplets"`
}

type exportData struct {
	Scenario string             `json:"scenario"`
	Frame    float64            `json:"frame_s"`
	Frames   []exportFrame      `json:"frames"`
	Summary  map[string]float64 `json:"summary"`
}

func toExport(r Record) exportFrame {
	return exportFrame{
		T:          r.T.Seconds(),
		Progress:   r.Progress,
		Scrolling:  r.Scrolling,
		State:      r.State.String(),
		SizeRem:    r.Bubble.SizeRem,
		Scale:      r.Bubble.Scale,
		Opacity:    r.Bubble.Opacity,
		X:          r.Bubble.X,
		Y:          r.Bubble.Y,
		Visible:    r.Bubble.Visible,
		Enlarged:   r.Enlarged,
		BurstFired: r.BurstFired,
		Droplets:   r.Droplets,
	}
}

// WriteJSON writes the replay and its summary as indented JSON.
func WriteJSON(w io.Writer, sc *Scenario, records []Record) error {
	data := exportData{
		Scenario: sc.Name,
		Frame:    sc.Frame.Seconds(),
		Frames:   make([]exportFrame, len(records)),
		Summary:  Summarize(records, DefaultMetrics()...),
	}
	for i, r := range records {
		data.Frames[i] = toExport(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

var csvHeader = []string{"t", "progress", "scrolling", "state", "size_rem", "scale", "opacity", "x", "y", "enlarged", "droplets"}

// WriteCSV writes one row per frame.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, r := range records {
		row := []string{
			f(r.T.Seconds()),
			f(r.Progress),
			strconv.FormatBool(r.Scrolling),
			r.State.String(),
			f(r.Bubble.SizeRem),
			f(r.Bubble.Scale),
			f(r.Bubble.Opacity),
			f(r.Bubble.X),
			f(r.Bubble.Y),
			strconv.Itoa(r.Enlarged),
			strconv.Itoa(r.Droplets),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
