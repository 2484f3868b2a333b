package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/sweep"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/trajectory"
)

type ExportData struct {
	Options sweep.Options `json:"options"`
	Points  []sweep.Point `json:"points"`
	Order   *float64      `json:"order,omitempty"`
}

func newExportData(result *sweep.Result) ExportData {
	data := ExportData{Options: result.Options, Points: result.Points}
	if order, err := result.Order(); err == nil {
		data.Order = &order
	}
	return data
}

func ExportJSON(path string, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeJSON(file, result)
}

func EncodeJSON(w io.Writer, result *sweep.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(result))
}

func LoadJSON(path string) (*ExportData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data ExportData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

var sampleHeader = []string{"t", "x", "y", "z", "vx", "vy", "vz", "ax", "ay", "az"}

// WriteSamplesCSV writes n samples of p, starting at t0 and dt apart.
func WriteSamplesCSV(w io.Writer, p trajectory.Particle, t0, dt float64, n int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader); err != nil {
		return err
	}

	row := make([]string, len(sampleHeader))
	for i := 0; i < n; i++ {
		t := t0 + float64(i)*dt
		x, v, a := p.Position(t), p.Velocity(t), p.Acceleration(t)

		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, c := range []float64{x.X, x.Y, x.Z, v.X, v.Y, v.Z, a.X, a.Y, a.Z} {
			row[j+1] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
