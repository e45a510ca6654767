// Package store persists one flat CSV row per calendar date with a
// self-migrating header.
//
// The header is the union of every column name ever written, in first-seen
// order. Appending a row whose columns are all known is a plain append.
// Appending a row that introduces new columns rewrites the whole file so
// the header stays authoritative; prior rows get empty values for the new
// columns. The file is expected to stay small (one row per day) — the
// rewrite path is not suitable for high-volume data.
//
// There is no locking. Two writers racing a rewrite will corrupt the file;
// run one daily or backfill process at a time.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Append writes row to the CSV store at path, creating the file (and its
// parent directory) on first use and growing the header when the row
// carries columns the file has not seen before. Header growth rewrites
// the file through a temp file and rename so a crash mid-rewrite cannot
// truncate history.
func Append(path string, row *Row) error {
	header, err := readHeader(path)
	if os.IsNotExist(err) {
		return create(path, row)
	}
	if err != nil {
		return err
	}

	grown := false
	for _, k := range row.keys {
		if !contains(header, k) {
			header = append(header, k)
			grown = true
		}
	}

	if !grown {
		return appendRecord(path, header, row)
	}
	return rewrite(path, header, row)
}

// Load reads the store back as its header plus one column/value map per
// row. A missing file is an error; callers that tolerate absence should
// stat first or use Dates.
func Load(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("store %s: empty file", path)
	}
	if err != nil {
		return nil, nil, err
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		m := make(map[string]string, len(header))
		for i, k := range header {
			if i < len(rec) {
				m[k] = rec[i]
			} else {
				m[k] = ""
			}
		}
		rows = append(rows, m)
	}
	return header, rows, nil
}

// Dates returns the set of run_date_utc values already present. A missing
// store reads as empty, not as an error — the first backfill run starts
// from nothing.
func Dates(path string) (map[string]bool, error) {
	_, rows, err := Load(path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	dates := make(map[string]bool, len(rows))
	for _, r := range rows {
		if d := r[DateColumn]; d != "" {
			dates[d] = true
		}
	}
	return dates, nil
}

// readHeader reads only the first line of the file.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("store %s: empty file", path)
	}
	return header, err
}

func create(path string, row *Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	header := row.Keys()
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.Write(row.Record(header)); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func appendRecord(path string, header []string, row *Row) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(row.Record(header)); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// rewrite re-serializes every prior row under the grown header, then the
// new row, into a temp file renamed over the original.
func rewrite(path string, header []string, row *Row) error {
	_, prior, err := Load(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, m := range prior {
		rec := make([]string, len(header))
		for i, k := range header {
			rec[i] = m[k]
		}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Write(row.Record(header)); err != nil {
		tmp.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
