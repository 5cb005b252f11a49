package tabular

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "objectives.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	csvData := "Owner , Title,Progress %\n John Doe ,  Ship the feature , 40\nJane,Fix checkout bugs,\n"
	table, err := NewDataReader(writeTempCSV(t, csvData)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	wantHeaders := []string{"Owner", "Title", "Progress %"}
	if !reflect.DeepEqual(table.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", table.Headers, wantHeaders)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}

	row := table.Rows[0]
	if got := row.Get("Owner"); got != "John Doe" {
		t.Errorf("Owner = %q, want %q", got, "John Doe")
	}
	if got := row.Get("Title"); got != "Ship the feature" {
		t.Errorf("Title = %q, want %q", got, "Ship the feature")
	}
	if got := row.Get("Progress %"); got != "40" {
		t.Errorf("Progress = %q, want %q", got, "40")
	}

	// A present column with an empty cell keeps the empty cell; the fallback
	// applies only to columns the export never had.
	if got := table.Rows[1].GetOr("Progress %", "0"); got != "" {
		t.Errorf("GetOr on empty cell = %q, want empty", got)
	}
	if got := table.Rows[1].GetOr("Status", "0"); got != "0" {
		t.Errorf("GetOr on absent column = %q, want fallback", got)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	csvData := "Owner,Title,Status\nJohn,Short row\nJane,Long row,On Track,extra cell\n"
	table, err := NewDataReader(writeTempCSV(t, csvData)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Rows[0].Get("Status"); got != "" {
		t.Errorf("short row Status = %q, want padded empty", got)
	}
	if got := table.Rows[1].Get("Status"); got != "On Track" {
		t.Errorf("long row Status = %q, want %q", got, "On Track")
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := NewDataReader(writeTempCSV(t, "Owner,Title\n")).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(table.Rows))
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	table, err := NewDataReader(writeTempCSV(t, "")).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table.Headers) != 0 || len(table.Rows) != 0 {
		t.Errorf("empty file produced headers=%v rows=%d", table.Headers, len(table.Rows))
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nowhere.csv")
	_, err := NewDataReader(path).Read()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err.Error())
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objectives.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Owner", "Title", "Parent Objective Title"},
		{"Asha Rao", "Reduce cold start from 6s to 2s", "Engineering/Operation Excellence"},
		{"Asha Rao", "Trailing cells omitted"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	table, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	wantHeaders := []string{"Owner", "Title", "Parent Objective Title"}
	if !reflect.DeepEqual(table.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", table.Headers, wantHeaders)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Rows[0].Get("Parent Objective Title"); got != "Engineering/Operation Excellence" {
		t.Errorf("Parent = %q", got)
	}
	// excelize drops trailing empty cells; the reader pads them back.
	if got, ok := table.Rows[1]["Parent Objective Title"]; !ok || got != "" {
		t.Errorf("padded cell = %q (present=%v), want empty present", got, ok)
	}
}
