// Package batch appends option 82 hex lookup keys to CSV documents.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/andrei-cloud/dhcp_o82/internal/logging"
	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

// Column names read from the input header.
const (
	ColVlan         = "vlan"
	ColModule       = "module"
	ColPort         = "port"
	ColCircuitID    = "circuit_id"
	ColRemoteID     = "remote_id"
	ColSubscriberID = "subscriber_id"
	ColHex          = "hex"
)

var (
	errEmptyInput = errors.New("input has no header row")
	errSameFile   = errors.New("output file is the input file")
	errNoColumns  = errors.New(
		"input needs vlan, module and port, circuit_id, remote_id, or subscriber_id columns",
	)
)

// DefaultOutputPath derives the output file name from the input file name.
func DefaultOutputPath(fileIn, suffix string) string {
	return strings.TrimSuffix(fileIn, ".csv") + suffix + ".csv"
}

type columns struct {
	index map[string]int
	tuple bool
}

func (c columns) get(record []string, name string) (string, bool) {
	i, ok := c.index[name]
	if !ok || i >= len(record) {
		return "", false
	}

	return strings.TrimSpace(record[i]), true
}

// Process reads CSV rows from r and writes them to w with a hex column holding
// the encoded option. A vlan, module and port column set takes precedence over
// circuit_id, which is always stored as text. Blank cells are skipped.
func Process(r io.Reader, w io.Writer) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, errEmptyInput
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	cols := columns{index: make(map[string]int, len(header))}
	for i, name := range header {
		cols.index[strings.TrimSpace(name)] = i
	}
	_, hasVlan := cols.index[ColVlan]
	_, hasModule := cols.index[ColModule]
	_, hasPort := cols.index[ColPort]
	cols.tuple = hasVlan && hasModule && hasPort

	known := cols.tuple
	for _, name := range []string{ColCircuitID, ColRemoteID, ColSubscriberID} {
		if _, ok := cols.index[name]; ok {
			known = true
		}
	}
	if !known {
		return 0, errNoColumns
	}

	hexCol, replace := cols.index[ColHex]
	if !replace {
		header = append(header, ColHex)
		hexCol = len(header) - 1
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("row %d: %w", rows+1, err)
		}
		rows++

		c, err := encodeRow(cols, record)
		if err != nil {
			return rows, fmt.Errorf("row %d: %w", rows, err)
		}
		h, err := c.Hex()
		if err != nil {
			return rows, fmt.Errorf("row %d: %w", rows, err)
		}

		for len(record) <= hexCol {
			record = append(record, "")
		}
		record[hexCol] = h
		if err := writer.Write(record); err != nil {
			return rows, fmt.Errorf("row %d: %w", rows, err)
		}
	}

	writer.Flush()

	return rows, writer.Error()
}

func encodeRow(cols columns, record []string) (*option82.Container, error) {
	c := option82.New()

	if cols.tuple {
		vlan, err := parseUint(cols, record, ColVlan, 16)
		if err != nil {
			return nil, err
		}
		module, err := parseUint(cols, record, ColModule, 8)
		if err != nil {
			return nil, err
		}
		port, err := parseUint(cols, record, ColPort, 8)
		if err != nil {
			return nil, err
		}
		c.SetCircuitID(uint16(vlan), uint8(module), uint8(port))
	} else if v, ok := cols.get(record, ColCircuitID); ok && v != "" {
		c.SetCircuitIDText(v)
	}

	if v, ok := cols.get(record, ColRemoteID); ok && v != "" {
		c.SetRemoteID(v)
	}
	if v, ok := cols.get(record, ColSubscriberID); ok && v != "" {
		c.SetSubscriberID(v)
	}

	return c, c.Err()
}

func parseUint(cols columns, record []string, name string, bits int) (uint64, error) {
	v, _ := cols.get(record, name)
	n, err := strconv.ParseUint(v, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", option82.ErrUnsupportedValue, name, v)
	}

	return n, nil
}

// ProcessFile runs Process from fileIn into fileOut. The output is written to
// a temporary file next to fileOut and renamed into place only on success.
func ProcessFile(fileIn, fileOut string) (int, error) {
	runID := uuid.NewString()
	start := time.Now()

	in, err := os.Open(fileIn)
	if err != nil {
		return 0, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	inInfo, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat input: %w", err)
	}
	if outInfo, err := os.Stat(fileOut); err == nil && os.SameFile(inInfo, outInfo) {
		return 0, fmt.Errorf("%w: %s", errSameFile, fileOut)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fileOut), ".o82-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	log.Debug().
		Str("event", "batch_start").
		Str("run_id", runID).
		Str("file_in", fileIn).
		Str("file_out", fileOut).
		Msg("processing batch")

	rows, err := Process(in, tmp)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), fileOut)
	}
	if err != nil {
		log.Error().Str("run_id", runID).Err(err).Msg("batch failed")
		return rows, err
	}

	logging.LogBatch(runID, fileIn, fileOut, rows, time.Since(start))

	return rows, nil
}
