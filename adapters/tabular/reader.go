package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"goreview/internal/errors"
)

// DataReader handles reading objectives exports in CSV and XLSX form
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for filePath, picking the format by extension
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read loads the export into a Table. Header and cell whitespace is trimmed.
// A header-only or empty file yields an empty table; a file that cannot be
// opened or decoded is an ingest error naming the path.
func (r *DataReader) Read() (*Table, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IngestError(r.filePath, fmt.Errorf("file not found"))
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readXLSX()
	}
}

func (r *DataReader) readCSV() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IngestError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exports are occasionally ragged
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IngestError(r.filePath, err)
	}
	log.Printf("[DataReader] CSV file read (%d rows)", len(rows))

	return processRows(rows), nil
}

func (r *DataReader) readXLSX() (*Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IngestError(r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.IngestError(r.filePath, fmt.Errorf("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.IngestError(r.filePath, err)
	}
	log.Printf("[DataReader] Sheet %s read (%d rows)", sheets[0], len(rows))

	return processRows(rows), nil
}

// processRows converts raw string rows into a Table. Short rows are padded to
// the header width so a present column always has a cell; excess cells beyond
// the header width are dropped.
func processRows(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{Headers: []string{}, Rows: []Row{}}
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		rowData := make(Row, len(headers))
		for j, header := range headers {
			if j < len(raw) {
				rowData[header] = strings.TrimSpace(raw[j])
			} else {
				rowData[header] = ""
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &Table{Headers: headers, Rows: dataRows}
}
