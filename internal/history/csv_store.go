package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/fileutils"
	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/models"

	"github.com/gocarina/gocsv"
)

// ErrNoHistory is returned by Export when nothing has been recorded yet.
var ErrNoHistory = errors.New("no history recorded yet")

// CSVStore keeps the history in a headerless delimited file with the columns
// date, month, ac_kwh, lighting_kwh, other_kwh, cost_usd.
type CSVStore struct {
	path      string
	delimiter rune
	logger    logging.Logger
}

// NewCSVStore returns a store backed by the file at path. The file is created
// on the first Append.
func NewCSVStore(path string, delimiter rune, logger logging.Logger) *CSVStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVStore{
		path:      path,
		delimiter: delimiter,
		logger:    logger.WithField(logging.FieldComponent, "history"),
	}
}

// Path returns the location of the log file.
func (s *CSVStore) Path() string {
	return s.path
}

// Append writes entry as one row at the end of the log.
func (s *CSVStore) Append(entry models.ConsumptionEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("refusing to append invalid entry: %w", err)
	}

	file, err := fileutils.OpenAppend(s.path, models.PermissionLogFile, models.PermissionDirectory)
	if err != nil {
		return &apperror.PersistenceError{Path: s.path, Op: "append", Err: err}
	}

	err = fileutils.EnsureTrailingNewline(file)
	if err == nil {
		writer := csv.NewWriter(file)
		writer.Comma = s.delimiter
		rows := []models.ConsumptionEntry{entry}
		err = gocsv.MarshalCSVWithoutHeaders(&rows, gocsv.NewSafeCSVWriter(writer))
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return &apperror.PersistenceError{Path: s.path, Op: "append", Err: err}
	}

	s.logger.Debug("Appended history entry",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldMonth, entry.Month))
	return nil
}

// Load reads the whole log. Rows with the wrong number of columns or with a
// field that does not parse are skipped. A missing file is an empty history.
func (s *CSVStore) Load() (*models.History, error) {
	file, err := os.Open(s.path) // #nosec G304 -- path comes from configuration
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("History log not found, starting empty", logging.F(logging.FieldFile, s.path))
		return &models.History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening history log: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close history log")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter
	reader.FieldsPerRecord = -1

	history := &models.History{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("error reading history log: %w", err)
			}
			s.skip(history, &apperror.RowError{Line: line, Reason: "malformed row", Err: err})
			continue
		}

		entry, rowErr := decodeRow(record, line)
		if rowErr != nil {
			s.skip(history, rowErr)
			continue
		}
		history.Entries = append(history.Entries, entry)
	}

	s.logger.Debug("Loaded history",
		logging.F(logging.FieldCount, len(history.Entries)),
		logging.F(logging.FieldSkipped, history.Skipped))
	return history, nil
}

// RawLog returns the log file exactly as stored.
func (s *CSVStore) RawLog() ([]byte, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path comes from configuration
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, &apperror.PersistenceError{Path: s.path, Op: "read", Err: err}
	}
	return data, nil
}

// Export copies the raw log to dst and returns the number of bytes written.
func (s *CSVStore) Export(dst string) (int64, error) {
	if !fileutils.FileExists(s.path) {
		return 0, ErrNoHistory
	}
	n, err := fileutils.CopyFile(s.path, dst, models.PermissionLogFile, models.PermissionDirectory)
	if err != nil {
		return n, &apperror.PersistenceError{Path: dst, Op: "export", Err: err}
	}
	return n, nil
}

func (s *CSVStore) skip(history *models.History, rowErr *apperror.RowError) {
	history.Skipped++
	s.logger.Debug("Skipping history row",
		logging.F(logging.FieldLine, rowErr.Line),
		logging.F(logging.FieldReason, rowErr.Error()))
}

// monthColumn holds a free label; every other column must be non-empty to parse.
const monthColumn = 1

// decodeRow turns one raw record into an entry using the gocsv column mapping.
func decodeRow(record []string, line int) (models.ConsumptionEntry, *apperror.RowError) {
	if len(record) != models.HistoryColumns {
		return models.ConsumptionEntry{}, &apperror.RowError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d columns, got %d", models.HistoryColumns, len(record)),
		}
	}

	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
		if fields[i] == "" && i != monthColumn {
			return models.ConsumptionEntry{}, &apperror.RowError{Line: line, Reason: fmt.Sprintf("column %d is empty", i+1)}
		}
	}

	var rows []models.ConsumptionEntry
	if err := gocsv.UnmarshalCSVWithoutHeaders(&recordReader{records: [][]string{fields}}, &rows); err != nil {
		return models.ConsumptionEntry{}, &apperror.RowError{Line: line, Reason: "unparseable field", Err: err}
	}
	if len(rows) != 1 {
		return models.ConsumptionEntry{}, &apperror.RowError{Line: line, Reason: "row did not decode"}
	}
	if err := rows[0].Validate(); err != nil {
		return models.ConsumptionEntry{}, &apperror.RowError{Line: line, Reason: "invalid value", Err: err}
	}
	return rows[0], nil
}

// recordReader feeds already-split records to gocsv.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	record := r.records[r.pos]
	r.pos++
	return record, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
