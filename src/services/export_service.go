package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"crm/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportTables are the tables offered for download, in display order.
var ExportTables = []string{"accounts", "contacts", "opportunities", "quotes", "quote_items", "activities"}

const WorkbookFileName = "crm_export.xlsx"

var ErrUnknownTable = errors.New("unknown table")

type ExportServiceI interface {
	Tables() []string
	ExportCSV(ctx context.Context, table string, w io.Writer) error
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
	ExportToDir(ctx context.Context, dir string, withWorkbook bool) ([]string, error)
}

type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

func (es *ExportService) Tables() []string {
	tables := make([]string, len(ExportTables))
	copy(tables, ExportTables)
	return tables
}

func IsExportTable(table string) bool {
	for _, t := range ExportTables {
		if t == table {
			return true
		}
	}
	return false
}

type tableData struct {
	Columns []string
	Rows    [][]interface{}
}

// loadTable reads every column of a whitelisted table in id order.
func (es *ExportService) loadTable(ctx context.Context, table string) (*tableData, error) {
	if !IsExportTable(table) {
		return nil, errors.Wrap(ErrUnknownTable, table)
	}

	rows, err := es.DB.WithContext(ctx).Raw("SELECT * FROM " + table + " ORDER BY id").Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := &tableData{Columns: columns, Rows: make([][]interface{}, 0)}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", table)
		}
		for i, v := range values {
			values[i] = cellValue(v)
		}
		data.Rows = append(data.Rows, values)
	}
	return data, rows.Err()
}

// cellValue normalises driver values so both backends export alike.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(utils.ShortDashDateLayout)
		}
		return val.Format("2006-01-02 15:04:05")
	}
	return v
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	}
	return fmt.Sprint(v)
}

func (t *tableData) records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Columns)
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		records = append(records, record)
	}
	return records
}

// ExportCSV writes the whole table as CSV with a header row.
func (es *ExportService) ExportCSV(ctx context.Context, table string, w io.Writer) error {
	data, err := es.loadTable(ctx, table)
	if err != nil {
		return err
	}

	records := data.records()
	if len(records) == 1 {
		cw := csv.NewWriter(w)
		if err := cw.Write(data.Columns); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return errors.Wrapf(df.Err, "failed to build %s export", table)
	}
	return df.WriteCSV(w)
}

// ExportWorkbook builds one sheet per table with a bold header row.
func (es *ExportService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	for i, table := range ExportTables {
		data, err := es.loadTable(ctx, table)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			if err := f.SetSheetName("Sheet1", table); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(table); err != nil {
			return nil, err
		}

		header := make([]interface{}, len(data.Columns))
		for c, name := range data.Columns {
			header[c] = name
		}
		if err := f.SetSheetRow(table, "A1", &header); err != nil {
			return nil, err
		}
		for r, row := range data.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			row := row
			if err := f.SetSheetRow(table, cell, &row); err != nil {
				return nil, err
			}
		}

		lastHeader, err := excelize.CoordinatesToCellName(len(data.Columns), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(table, "A1", lastHeader, headerStyle); err != nil {
			return nil, err
		}
		lastCol, err := excelize.ColumnNumberToName(len(data.Columns))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(table, "A", lastCol, 15); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// ExportToDir writes <table>.csv for every table into dir. A table that
// fails is logged and skipped; the paths written are returned.
func (es *ExportService) ExportToDir(ctx context.Context, dir string, withWorkbook bool) ([]string, error) {
	logger := utils.LoggerFromContext(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create export directory %s", dir)
	}

	written := make([]string, 0, len(ExportTables)+1)
	for _, table := range ExportTables {
		path := filepath.Join(dir, table+".csv")
		if err := es.exportFile(ctx, table, path); err != nil {
			logger.WithError(err).WithField("table", table).Warn("Could not export table")
			continue
		}
		written = append(written, path)
	}

	if withWorkbook {
		path := filepath.Join(dir, WorkbookFileName)
		f, err := es.ExportWorkbook(ctx)
		if err != nil {
			logger.WithError(err).Warn("Could not build workbook")
			return written, nil
		}
		defer f.Close()
		if err := f.SaveAs(path); err != nil {
			logger.WithError(err).WithField("path", path).Warn("Could not save workbook")
			return written, nil
		}
		written = append(written, path)
	}
	return written, nil
}

func (es *ExportService) exportFile(ctx context.Context, table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := es.ExportCSV(ctx, table, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}
