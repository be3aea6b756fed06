package outputs

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
)

// Table is the tabular payload for SaveTable.
type Table struct {
	Columns []string
	Rows    [][]string
}

// SaveObject saves an arbitrary object through a caller-supplied
// serialization function. Request defaults are used as given.
func (m *Manager) SaveObject(req Request, save SaveFunc) (SaveResult, error) {
	return m.Save(req, save)
}

// SaveText writes text content. Defaults: suffix "log", extension ".txt".
func (m *Manager) SaveText(req Request, text string) (SaveResult, error) {
	applyDefaults(&req, "log", ".txt")
	return m.Save(req, func(path string) error {
		return os.WriteFile(path, []byte(text), 0o644)
	})
}

// SaveJSON writes a value as indented JSON. Defaults: suffix "data",
// extension ".json".
func (m *Manager) SaveJSON(req Request, value any) (SaveResult, error) {
	applyDefaults(&req, "data", ".json")
	return m.Save(req, func(path string) error {
		data, err := json.MarshalIndent(value, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		return os.WriteFile(path, append(data, '\n'), 0o644)
	})
}

// SaveTable writes tabular data as CSV or TSV, chosen by Request.Format
// (default "csv"). Default suffix is "table"; the extension follows the
// format.
func (m *Manager) SaveTable(req Request, tbl Table) (SaveResult, error) {
	format := req.Format
	if format == "" {
		format = "csv"
	}

	var comma rune
	switch format {
	case "csv":
		comma = ','
	case "tsv":
		comma = '\t'
	default:
		return SaveResult{}, fmt.Errorf("unsupported table format %q (expected csv or tsv)", format)
	}
	applyDefaults(&req, "table", "."+format)

	return m.Save(req, func(path string) error {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		writer.Comma = comma
		if len(tbl.Columns) > 0 {
			if err := writer.Write(tbl.Columns); err != nil {
				return err
			}
		}
		for _, row := range tbl.Rows {
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		return file.Close()
	})
}

// SaveArray writes a float64 slice either as little-endian binary
// (Format "bin", extension ".bin", the default) or as one value per line
// (Format "txt", extension ".txt"). Default suffix is "array".
func (m *Manager) SaveArray(req Request, values []float64) (SaveResult, error) {
	format := req.Format
	if format == "" {
		format = "bin"
	}

	switch format {
	case "bin":
		applyDefaults(&req, "array", ".bin")
		return m.Save(req, func(path string) error {
			file, err := os.Create(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := binary.Write(file, binary.LittleEndian, values); err != nil {
				return err
			}
			return file.Close()
		})
	case "txt":
		applyDefaults(&req, "array", ".txt")
		return m.Save(req, func(path string) error {
			file, err := os.Create(path)
			if err != nil {
				return err
			}
			defer file.Close()
			for _, v := range values {
				if _, err := fmt.Fprintln(file, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
					return err
				}
			}
			return file.Close()
		})
	default:
		return SaveResult{}, fmt.Errorf("unsupported array format %q (expected bin or txt)", format)
	}
}

// SaveFigure writes an image as PNG. Other figure encodings go through
// SaveObject with a caller-supplied encoder. Defaults: suffix "plot",
// extension ".png".
func (m *Manager) SaveFigure(req Request, img image.Image) (SaveResult, error) {
	applyDefaults(&req, "plot", ".png")
	return m.Save(req, func(path string) error {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := png.Encode(file, img); err != nil {
			return err
		}
		return file.Close()
	})
}

func applyDefaults(req *Request, suffix, extension string) {
	if req.Suffix == "" {
		req.Suffix = suffix
	}
	if req.Extension == "" {
		req.Extension = extension
	}
}
