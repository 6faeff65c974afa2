package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	XLSXExtension   = "xlsx"

	GridSheet   = "Календарь"
	EventsSheet = "Записи"

	headerRow    = 2
	firstSlotRow = 3
)

var eventsHeader = []string{"Дата", "Начало", "Конец", "Статус", "Услуга", "Клиент", "Специалист", "Колонка"}

// WriteXLSX формирует книгу из двух листов: сетка недели по слотам и плоский список записей
func WriteXLSX(w io.Writer, week *Week) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GridSheet); err != nil {
		return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}
	if _, err := f.NewSheet(EventsSheet); err != nil {
		return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}

	if err := writeGrid(f, week); err != nil {
		return fmt.Errorf("%w: xlsx grid: %v", ErrRender, err)
	}
	if err := writeEvents(f, week); err != nil {
		return fmt.Errorf("%w: xlsx events: %v", ErrRender, err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}
	return nil
}

func writeGrid(f *excelize.File, week *Week) error {
	// Заголовок периода
	title := fmt.Sprintf("Период: %s - %s", week.From().Format("02.01.2006"), week.To().Format("02.01.2006"))
	if err := f.SetCellValue(GridSheet, "A1", title); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(week.Days) + 1)
	_ = f.MergeCell(GridSheet, "A1", lastCol+"1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(GridSheet, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// Заголовки дней
	for i, day := range week.Days {
		cell, _ := excelize.CoordinatesToCellName(i+2, headerRow)
		if err := f.SetCellValue(GridSheet, cell, day.Date.Format("Mon 02.01")); err != nil {
			return err
		}
		_ = f.SetCellStyle(GridSheet, cell, cell, headerStyle)
	}

	// Метки слотов
	for i, slot := range week.Slots {
		cell, _ := excelize.CoordinatesToCellName(1, firstSlotRow+i)
		if err := f.SetCellValue(GridSheet, cell, slot.Label); err != nil {
			return err
		}
	}

	// События в ячейке слота, в который попадает их начало
	wrapStyles := make(map[domain.EventStatus]int)
	for col, day := range week.Days {
		cells := make(map[int][]domain.PlacedEvent)
		for _, placed := range day.Events {
			row, ok := slotRow(week.Slots, types.NewTimeString(placed.Event.Start))
			if !ok {
				continue
			}
			cells[row] = append(cells[row], placed)
		}

		for row, events := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+2, row)
			if err := f.SetCellValue(GridSheet, cell, cellText(events)); err != nil {
				return err
			}

			status := events[0].Event.Status
			style, ok := wrapStyles[status]
			if !ok {
				style, _ = f.NewStyle(&excelize.Style{
					Fill:      excelize.Fill{Type: "pattern", Color: []string{calendar.StatusColor(status)}, Pattern: 1},
					Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
				})
				wrapStyles[status] = style
			}
			_ = f.SetCellStyle(GridSheet, cell, cell, style)
		}
	}

	_ = f.SetColWidth(GridSheet, "A", "A", 12)
	if len(week.Days) > 0 {
		_ = f.SetColWidth(GridSheet, "B", lastCol, 28)
	}
	return nil
}

func writeEvents(f *excelize.File, week *Week) error {
	if err := f.SetSheetRow(EventsSheet, "A1", &eventsHeader); err != nil {
		return err
	}

	row := 2
	for _, day := range week.Days {
		for _, placed := range day.Events {
			e := placed.Event
			values := []interface{}{
				e.Start.Format(domain.DateFormat),
				e.Start.Format(domain.TimeFormat),
				e.End.Format(domain.TimeFormat),
				string(e.Status),
				e.ServiceName,
				e.CustomerName,
				e.ProfessionalName,
				fmt.Sprintf("%d/%d", placed.ColumnIndex+1, placed.TotalColumns),
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(EventsSheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	_ = f.SetColWidth(EventsSheet, "A", "H", 16)
	return nil
}

// slotRow возвращает строку последнего слота, начинающегося не позже start
func slotRow(slots []domain.TimeSlot, start types.TimeString) (int, bool) {
	row, found := 0, false
	for i, slot := range slots {
		if start.IsBefore(slot.Time) {
			break
		}
		row, found = firstSlotRow+i, true
	}
	if found && start.Hour() > slots[len(slots)-1].Time.Hour() {
		return 0, false
	}
	return row, found
}

func cellText(events []domain.PlacedEvent) string {
	lines := make([]string, 0, len(events))
	for _, placed := range events {
		e := placed.Event
		lines = append(lines, fmt.Sprintf("%s-%s %s (%s)",
			e.Start.Format(domain.TimeFormat), e.End.Format(domain.TimeFormat), e.Title, e.CustomerName))
	}
	return strings.Join(lines, "\n")
}
