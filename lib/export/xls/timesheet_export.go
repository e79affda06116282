package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	timesheetapimodels "hrms-backend/models/api/timesheet"
)

type Provider interface {
	ExportTimesheetCalendar(employeeName, department string, calendar timesheetapimodels.CalendarResponse) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var calendarHeaders = []string{"Дата", "День недели", "Тип", "Начало", "Окончание", "Проект", "Задача", "Часы", "Статус", "Отпуск", "Праздник"}

// Выгрузка зеркалит календарный запрос: шапка с метаданными,
// строка на каждый день месяца, итоги внизу
func (i impl) ExportTimesheetCalendar(employeeName, department string, calendar timesheetapimodels.CalendarResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeMeta(f, sheet, row, employeeName, department, calendar.Month)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования шапки в xlsx")
	}
	row, err = writeHeader(f, sheet, row, calendarHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(calendar.Days) != 0 {
		row, err = writeCalendarData(f, sheet, calendar.Days, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = writeTotals(f, sheet, row, calendar); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования итогов в xlsx")
	}
	f.SetSheetName(sheet, "Табель")
	return f.WriteToBuffer()
}

func writeMeta(f *excelize.File, sheet string, row int, employeeName, department, month string) (int, error) {
	meta := [][2]string{
		{"Сотрудник", employeeName},
		{"Подразделение", department},
		{"Месяц", month},
	}
	for _, pair := range meta {
		row++
		if err := writeColumn(f, sheet, 1, row, pair[0]); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 2, row, pair[1]); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeCalendarData(f *excelize.File, sheet string, days []timesheetapimodels.CalendarDay, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(calendarHeaders), row+len(days)); err != nil {
		return row, err
	}
	for _, day := range days {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, day.Date); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.Weekday); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(day.Type)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.StartTime); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.EndTime); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.Project); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.Task); err != nil {
			return row, err
		}

		col++
		if day.Hours != 0 {
			if err := writeColumn(f, sheet, col, row, day.Hours); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.Status); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.LeaveType); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, day.Holiday); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeTotals(f *excelize.File, sheet string, row int, calendar timesheetapimodels.CalendarResponse) error {
	totals := [][2]string{
		{"Часов отработано", fmt.Sprintf("%.2f", calendar.HoursTotal)},
		{"Дней отработано", fmt.Sprintf("%d", calendar.DaysWorked)},
		{"Дней отпуска", fmt.Sprintf("%d", calendar.LeaveDays)},
	}
	for _, pair := range totals {
		row++
		if err := writeColumn(f, sheet, 1, row, pair[0]); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 2, row, pair[1]); err != nil {
			return err
		}
	}
	return nil
}
