package editor

import (
	"time"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
	"google.golang.org/genproto/googleapis/type/date"
)

// DefaultDateFormat is the display format WriteDate applies when the caller
// passes none.
const DefaultDateFormat = "yyyy-mm-dd"

// SerialDate converts a civil date to its serial number in the 1900 date
// system, the numeric representation workbooks store dates as. The base
// honors the system's historical leap year bug, so dates from March 1900
// onward line up with what spreadsheet applications display.
func SerialDate(d *date.Date) float64 {
	base := time.Date(1900, time.January, -1, 0, 0, 0, 0, time.UTC)
	t := time.Date(int(d.GetYear()), time.Month(d.GetMonth()), int(d.GetDay()), 0, 0, 0, 0, time.UTC)
	return t.Sub(base).Hours() / 24
}

// WriteDate writes a date at addr as a numeric record carrying a date
// display format, DefaultDateFormat when format is empty.
func WriteDate(ws sheet.Worksheet, addr string, d *date.Date, format string) error {
	if format == "" {
		format = DefaultDateFormat
	}
	cell := models.NumberCell(SerialDate(d))
	cell.Format = format
	return ws.SetCell(addr, cell)
}
