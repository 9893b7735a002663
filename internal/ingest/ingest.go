// Package ingest loads the collector's per-year CSV tables into the record
// form the engine consumes, and enforces the input contract's required
// columns.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/core"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// Collector file names look like "qualifying_data_2022_results.csv"; the
// year is recovered from the name when a file cannot be read at all.
var fileYearRe = regexp.MustCompile(`(\d{4})`)

// LoadResult is the combined raw table plus per-year outcome bookkeeping.
type LoadResult struct {
	Records        []schema.QualifyingRecord
	ProcessedYears []int // Years with at least one loaded row, first-encounter order
	FailedYears    []int // Years whose file could not be read
}

// LoadDirectory reads every CSV table in dir, derives the seconds columns,
// and validates the required-column contract. A file that cannot be read
// marks its year failed and the rest continue; a missing required column is
// a fatal ConfigurationError.
func LoadDirectory(dir string) (*LoadResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}
	sort.Strings(paths)

	result := &LoadResult{}
	var columns map[string]bool

	for _, path := range paths {
		records, fileColumns, err := readTable(path)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping unreadable table %s", filepath.Base(path)), err)
			if year, ok := yearFromFileName(path); ok {
				result.FailedYears = append(result.FailedYears, year)
			}
			continue
		}
		if columns == nil {
			columns = fileColumns
		} else {
			intersectColumns(columns, fileColumns)
		}
		result.Records = append(result.Records, records...)
	}

	if columns == nil {
		return nil, fmt.Errorf("could not read any CSV file in %s", dir)
	}

	for i := range result.Records {
		core.NormalizeTimes(&result.Records[i])
	}
	// The seconds columns are derived above, so the combined table always
	// carries them once any file loads.
	columns["Q1Seconds"] = true
	columns["Q2Seconds"] = true
	columns["Q3Seconds"] = true

	if err := checkRequiredColumns(columns); err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	for _, rec := range result.Records {
		if !seen[rec.Year] {
			seen[rec.Year] = true
			result.ProcessedYears = append(result.ProcessedYears, rec.Year)
		}
	}

	return result, nil
}

// readTable parses one CSV file into records, also reporting which columns
// its header carries.
func readTable(path string) ([]schema.QualifyingRecord, map[string]bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	columns := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		index[name] = i
		columns[name] = true
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var records []schema.QualifyingRecord
	for _, row := range rows {
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		year := parseYear(field("Year"))
		rec := schema.QualifyingRecord{
			DriverNumber:  field("DriverNumber"),
			BroadcastName: field("BroadcastName"),
			TeamName:      field("TeamName"),
			Position:      parsePosition(field("Position")),
			Q1:            field("Q1"),
			Q2:            field("Q2"),
			Q3:            field("Q3"),
			Year:          year,
			EventName:     field("EventName"),
			WetSession:    parseBool(field("WetSession")),
		}

		// Rows that cannot be placed in any timeline are dropped, not
		// errored: the engine tolerates gaps, it aborts only on a broken
		// column contract.
		if rec.Year == 0 || rec.BroadcastName == "" || rec.EventName == "" {
			continue
		}
		records = append(records, rec)
	}

	return records, columns, nil
}

// parseYear handles both integer and float-formatted year cells.
func parseYear(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v)
}

// parsePosition handles the collector's float-formatted positions ("3.0")
// and the usual null spellings.
func parsePosition(s string) *int {
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return schema.IntPtr(int(v))
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.ToLower(s))
	return err == nil && v
}

func yearFromFileName(path string) (int, bool) {
	m := fileYearRe.FindString(filepath.Base(path))
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

// intersectColumns drops from dst any column absent in src, so the check
// below sees only columns present in every loaded table.
func intersectColumns(dst, src map[string]bool) {
	for col := range dst {
		if !src[col] {
			delete(dst, col)
		}
	}
}

func checkRequiredColumns(columns map[string]bool) error {
	var missing []string
	for _, col := range schema.RequiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &contract.ConfigurationError{MissingColumns: missing}
	}
	return nil
}
