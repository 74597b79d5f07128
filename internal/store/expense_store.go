// Package store provides persistence for expense records, keyword rule
// overrides and budget configuration.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

// dateLayout is the calendar-day format used in the CSV date column. It can
// be overridden through configuration.
var dateLayout = "2006-01-02"

// SetDateFormat overrides the date layout used for the CSV date column.
func SetDateFormat(layout string) {
	if layout != "" {
		dateLayout = layout
	}
}

// SetDelimiter sets the field delimiter for subsequent CSV reads and writes.
func SetDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})
}

// expenseRow is the CSV representation of one expense record.
type expenseRow struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	Timestamp   string `csv:"timestamp"`
}

// ExpenseStore reads and writes expense records as CSV.
type ExpenseStore struct {
	log logging.Logger
}

// NewExpenseStore creates an expense store. A nil logger uses the package
// default.
func NewExpenseStore(log logging.Logger) *ExpenseStore {
	if log == nil {
		log = logging.GetLogger()
	}
	return &ExpenseStore{log: log}
}

// Load reads expense records from a CSV file. Rows that cannot be converted
// are logged and skipped rather than failing the whole load.
func (s *ExpenseStore) Load(path string) ([]models.ExpenseRecord, error) {
	s.log.WithField(logging.FieldInputFile, path).Info("Reading expense file")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening expense file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []expenseRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing expense file: %w", err)
	}

	records := make([]models.ExpenseRecord, 0, len(rows))
	for i, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			s.log.WithError(err).WithField(logging.FieldCount, i+1).
				Warn("Skipping unreadable expense row")
			continue
		}
		records = append(records, record)
	}

	s.log.WithField(logging.FieldCount, len(records)).Info("Loaded expense records")
	return records, nil
}

// Save writes expense records to a CSV file, creating parent directories as
// needed.
func (s *ExpenseStore) Save(path string, records []models.ExpenseRecord) error {
	s.log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Writing expense file")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating expense file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]expenseRow, len(records))
	for i, record := range records {
		rows[i] = toRow(record)
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing expense file: %w", err)
	}
	return nil
}

func (r expenseRow) toRecord() (models.ExpenseRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	category, _ := models.ParseCategory(r.Category)

	record := models.ExpenseRecord{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: r.Description,
	}
	if r.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			record.Timestamp = ts
		}
	}
	return record, nil
}

func toRow(record models.ExpenseRecord) expenseRow {
	row := expenseRow{
		Date:        record.Date.Format(dateLayout),
		Amount:      record.Amount.String(),
		Category:    string(record.Category),
		Description: record.Description,
	}
	if !record.Timestamp.IsZero() {
		row.Timestamp = record.Timestamp.Format(time.RFC3339)
	}
	return row
}
