package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fuelview/fuelview/internal/model"
)

const fixture = "../../testdata/fuel_records.csv"

func TestLoad_CSVFixture(t *testing.T) {
	rs, err := Load(fixture, Options{})
	require.NoError(t, err)

	assert.Equal(t, fixture, rs.Source())
	assert.True(t, rs.HasCreatedAtColumn())
	require.Equal(t, 6, rs.Len())

	all := rs.All()
	assert.Equal(t, "KA01AB1234", all[0].VehicleNo)
	assert.Equal(t, 2, all[0].Row)
	assert.Equal(t, "10.5", all[0].Kmpl.String())
	assert.Equal(t, "42.3", all[0].Consumed.String())
	assert.Equal(t, time.Date(2025, 1, 5, 8, 10, 0, 0, time.UTC), all[0].CreatedAt)

	// Rows 5-7 are dropped: bad kmpl, missing vehicle, missing consumed.
	rows := make([]int, len(all))
	for i, r := range all {
		rows[i] = r.Row
	}
	assert.Equal(t, []int{2, 3, 4, 8, 9, 10}, rows)
}

func TestLoad_UnparsableTimestampKeepsRow(t *testing.T) {
	rs, err := Load(fixture, Options{})
	require.NoError(t, err)

	all := rs.All()
	tn := all[4]
	assert.Equal(t, "TN09CD5678", tn.VehicleNo)
	assert.False(t, tn.HasCreatedAt())

	last := all[5]
	assert.Equal(t, 10, last.Row)
	assert.False(t, last.HasCreatedAt())
}

func TestLoad_ExcludesNonNumericValues(t *testing.T) {
	src := "Vehicle_no,Last_Tnx_Kmpl,Est_fuel_Consumed\n" +
		"A1,10,5\n" +
		"A1,ten,5\n" +
		"A1,10,five\n" +
		"A1,,5\n" +
		"A1,NaN,5\n" +
		"A1,10,\n"
	rs, err := Read(strings.NewReader(src), "csv", Options{})
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
	assert.False(t, rs.HasCreatedAtColumn())
	for _, r := range rs.All() {
		assert.True(t, r.Kmpl.Equal(decimal.NewFromInt(10)))
	}
}

func TestLoad_HeaderMatchingIgnoresCaseAndSpace(t *testing.T) {
	src := "\ufeff vehicle_no ,LAST_TNX_KMPL,est_fuel_consumed\nB2,9.5,3.25\n"
	rs, err := Read(strings.NewReader(src), "csv", Options{})
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
	assert.Equal(t, "B2", rs.All()[0].VehicleNo)
}

func TestLoad_ShortRowsAreDropped(t *testing.T) {
	src := "Vehicle_no,Last_Tnx_Kmpl,Est_fuel_Consumed\nC3,4\nC3,4,2\n"
	rs, err := Read(strings.NewReader(src), "csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}

func TestLoad_CustomColumns(t *testing.T) {
	src := "truck,kmpl,litres,when\nT1,7,80,2025-02-01\n"
	rs, err := Read(strings.NewReader(src), "csv", Options{Columns: Columns{
		Vehicle:   "truck",
		Kmpl:      "kmpl",
		Consumed:  "litres",
		CreatedAt: "when",
	}})
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), rs.All()[0].CreatedAt)
}

func TestLoad_MissingColumn(t *testing.T) {
	src := "Vehicle_no,Last_Tnx_Kmpl\nA1,10\n"
	_, err := Read(strings.NewReader(src), "csv", Options{})
	require.Error(t, err)

	var dse *DataSourceError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "header", dse.Op)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Est_fuel_Consumed")
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Read(strings.NewReader(""), "csv", Options{})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	require.Error(t, err)

	var dse *DataSourceError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "open", dse.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MalformedCSV(t *testing.T) {
	src := "Vehicle_no,Last_Tnx_Kmpl,Est_fuel_Consumed\n\"A1,10,5\n"
	_, err := Read(strings.NewReader(src), "csv", Options{})
	require.Error(t, err)

	var dse *DataSourceError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "read", dse.Op)
}

func writeWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]any{
		{"Vehicle_no", "Last_Tnx_Kmpl", "Est_fuel_Consumed", "Created_date"},
		{"KA01AB1234", 10.5, 42.3, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)},
		{"ka01ab1234", 12.1, 38.0, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"KA01AB1234", "n/a", 40.0, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
	}
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &row))
	}
	return f
}

func TestRead_XLSX(t *testing.T) {
	f := writeWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rs, err := Read(bytes.NewReader(buf.Bytes()), "xlsx", Options{})
	require.NoError(t, err)
	require.Equal(t, 2, rs.Len())

	first := rs.All()[0]
	assert.Equal(t, "10.5", first.Kmpl.String())
	assert.WithinDuration(t, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC), first.CreatedAt, time.Second)
}

func TestLoad_XLSXFileAndSheet(t *testing.T) {
	f := writeWorkbook(t)
	_, err := f.NewSheet("Other")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "task1.xlsx")
	require.NoError(t, f.SaveAs(path))

	rs, err := Load(path, Options{Sheet: "Sheet1"})
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())

	_, err = Load(path, Options{Sheet: "Other"})
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Load(path, Options{Sheet: "Nope"})
	var dse *DataSourceError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "read", dse.Op)
}

func TestRecordSet_LookupIgnoresCase(t *testing.T) {
	rs := NewRecordSet("mem", []model.FuelRecord{
		{VehicleNo: "AB1", Kmpl: decimal.NewFromInt(10)},
		{VehicleNo: "ab1", Kmpl: decimal.NewFromInt(12)},
		{VehicleNo: "CD2", Kmpl: decimal.NewFromInt(9)},
	})

	got := rs.Lookup(" Ab1 ")
	require.Len(t, got, 2)
	assert.Equal(t, "AB1", got[0].VehicleNo)
	assert.Equal(t, "ab1", got[1].VehicleNo)
	assert.Nil(t, rs.Lookup("ZZ9"))
}

func TestRecordSet_IsReadOnly(t *testing.T) {
	src := []model.FuelRecord{{VehicleNo: "AB1", Kmpl: decimal.NewFromInt(10)}}
	rs := NewRecordSet("mem", src)

	src[0].VehicleNo = "changed"
	all := rs.All()
	all[0].Kmpl = decimal.NewFromInt(99)
	got := rs.Lookup("AB1")
	got[0].Consumed = decimal.NewFromInt(1)

	again := rs.All()
	assert.Equal(t, "AB1", again[0].VehicleNo)
	assert.True(t, again[0].Kmpl.Equal(decimal.NewFromInt(10)))
	assert.True(t, again[0].Consumed.IsZero())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("csv"))

	r.Register(&CSVReader{})
	assert.NotNil(t, r.Get("CSV"))
	assert.NotNil(t, r.Get(".csv"))
	assert.Panics(t, func() { r.Register(&CSVReader{}) })

	d := DefaultRegistry()
	assert.ElementsMatch(t, []string{"csv", "xlsx"}, d.Formats())
}

func TestWriteCSV(t *testing.T) {
	records := []model.FuelRecord{
		{VehicleNo: "AB1", Kmpl: decimal.RequireFromString("12.1"), Consumed: decimal.RequireFromString("38.0"),
			CreatedAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)},
		{VehicleNo: "AB1", Kmpl: decimal.RequireFromString("10.5"), Consumed: decimal.RequireFromString("42.3")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Vehicle_no,Last_Tnx_Kmpl,Est_fuel_Consumed,Created_date", lines[0])
	assert.Equal(t, "AB1,12.1,38,2025-01-02 09:00:00", lines[1])
	assert.Equal(t, "AB1,10.5,42.3,", lines[2])

	// Exported rows load back unchanged.
	rs, err := Read(strings.NewReader(buf.String()), "csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in     string
		serial bool
		ok     bool
	}{
		{"2025-01-02", false, true},
		{"2025-01-02T09:00:00Z", false, true},
		{"02/01/2025", false, true},
		{"13/01/2025", false, false},
		{"01-13-2025 08:00:00", false, true},
		{"45659", false, false},
		{"45659", true, true},
		{"", true, false},
		{"yesterday", true, false},
	}
	for _, tt := range tests {
		_, ok := parseTimestamp(tt.in, tt.serial)
		assert.Equal(t, tt.ok, ok, "parseTimestamp(%q, %v)", tt.in, tt.serial)
	}
}

func TestLoad_SlashDatesAreMonthFirst(t *testing.T) {
	src := "Vehicle_no,Last_Tnx_Kmpl,Est_fuel_Consumed,Created_date\n" +
		"AB1,1,1,05/01/2025\n" +
		"AB1,2,2,01/13/2025\n"
	rs, err := Read(strings.NewReader(src), "csv", Options{})
	require.NoError(t, err)

	all := rs.All()
	require.Len(t, all, 2)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), all[0].CreatedAt)
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), all[1].CreatedAt)
}
