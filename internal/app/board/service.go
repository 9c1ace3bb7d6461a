package board

import (
	"bytes"
	"fmt"
	"net/http"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/factory"
	"sitelabour/internal/model"
	"sitelabour/internal/repository"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/util/general"
	"sitelabour/pkg/util/response"
	"sitelabour/pkg/util/retry"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Service interface {
	Daily(ctx *abstraction.Context, payload *dto.BoardDailyRequest) (map[string]interface{}, error)
	Rollup(ctx *abstraction.Context, payload *dto.BoardRollupRequest) (map[string]interface{}, error)
	Export(ctx *abstraction.Context, payload *dto.BoardExportRequest) (string, *bytes.Buffer, string, error)
}

type service struct {
	BoardRepository repository.Board

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		BoardRepository: f.BoardRepository,

		DB: f.Db,
	}
}

func checkBoardAccess(ctx *abstraction.Context) error {
	if ctx.Auth.RoleID != constant.ROLE_ID_BOARD && ctx.Auth.RoleID != constant.ROLE_ID_ADMIN {
		return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
	}
	return nil
}

// windowOrDefault resolves the window query param: absent means the 30 day
// default, explicit 0 means all time.
func windowOrDefault(window *int) int {
	if window == nil {
		return 30
	}
	if *window < 0 {
		return 0
	}
	return *window
}

func windowLabel(window int) string {
	if window == 0 {
		return "all time"
	}
	return fmt.Sprintf("last %d days", window)
}

func (s *service) dailySeries(ctx *abstraction.Context, projectId, window int) ([]*model.BoardDailyRow, error) {
	cutoff := ""
	if window > 0 {
		cutoff = general.DateCutoff(*general.Now(), window)
	}
	var data []*model.BoardDailyRow
	err := retry.Do(constant.RETRY_MAX_RETRIES, constant.RETRY_INITIAL_DELAY, func() error {
		var err error
		data, err = s.BoardRepository.DailySeries(ctx, projectId, cutoff)
		return err
	})
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	return data, nil
}

// rollup prefers the precomputed view only for the default filter (all
// projects, last 30 days); every other filter and any view failure falls
// back to aggregating the daily series.
func (s *service) rollup(ctx *abstraction.Context, projectId, window int) ([]*model.BoardRollupRow, error) {
	if projectId == 0 && window == 30 {
		var data []*model.BoardRollupRow
		err := retry.Do(constant.RETRY_MAX_RETRIES, constant.RETRY_INITIAL_DELAY, func() error {
			var err error
			data, err = s.BoardRepository.RollupLast30(ctx)
			return err
		})
		if err == nil {
			return data, nil
		}
		logrus.Warnf("board rollup view unavailable, aggregating daily series: %s", err.Error())
	}

	daily, err := s.dailySeries(ctx, projectId, window)
	if err != nil {
		return nil, err
	}
	return RollupFromDaily(daily), nil
}

func (s *service) Daily(ctx *abstraction.Context, payload *dto.BoardDailyRequest) (map[string]interface{}, error) {
	if err := checkBoardAccess(ctx); err != nil {
		return nil, err
	}
	window := windowOrDefault(payload.Window)

	data, err := s.dailySeries(ctx, payload.ProjectId, window)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{} = nil
	var attendance, allotted int
	for _, v := range data {
		attendance += v.Attendance
		allotted += v.Allotted
		rows = append(rows, map[string]interface{}{
			"project_id":   v.ProjectId,
			"project_name": v.ProjectName,
			"date":         v.Date,
			"attendance":   v.Attendance,
			"allotted":     v.Allotted,
			"gap":          v.Attendance - v.Allotted,
		})
	}

	return map[string]interface{}{
		"window": window,
		"totals": map[string]interface{}{
			"attendance": attendance,
			"allotted":   allotted,
			"gap":        attendance - allotted,
		},
		"data": rows,
	}, nil
}

func (s *service) Rollup(ctx *abstraction.Context, payload *dto.BoardRollupRequest) (map[string]interface{}, error) {
	if err := checkBoardAccess(ctx); err != nil {
		return nil, err
	}
	window := windowOrDefault(payload.Window)

	data, err := s.rollup(ctx, payload.ProjectId, window)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{} = nil
	for _, v := range data {
		rows = append(rows, map[string]interface{}{
			"project_id":   v.ProjectId,
			"project_name": v.ProjectName,
			"attendance":   v.Attendance,
			"allotted":     v.Allotted,
			"gap":          v.Attendance - v.Allotted,
		})
	}

	attendance, allotted, gap := Totals(data)

	return map[string]interface{}{
		"window": window,
		"totals": map[string]interface{}{
			"attendance": attendance,
			"allotted":   allotted,
			"gap":        gap,
		},
		"data": rows,
	}, nil
}

func (s *service) Export(ctx *abstraction.Context, payload *dto.BoardExportRequest) (string, *bytes.Buffer, string, error) {
	if err := checkBoardAccess(ctx); err != nil {
		return "", nil, "", err
	}
	window := windowOrDefault(payload.Window)

	data, err := s.rollup(ctx, payload.ProjectId, window)
	if err != nil {
		return "", nil, "", err
	}

	if payload.Format == "pdf" {
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, "Site Labour - Board Rollup ("+windowLabel(window)+")")
		pdf.Ln(12)
		pdf.SetFont("Arial", "B", 10)
		header := []string{"No", "Project", "Attendance", "Allotted", "Gap"}
		colWidths := []float64{10, 90, 30, 30, 30}
		xStart := pdf.GetX()
		yStart := pdf.GetY()
		headerHeight := 8.0

		for i, str := range header {
			pdf.Rect(xStart, yStart, colWidths[i], headerHeight, "D")
			pdf.MultiCell(colWidths[i], 5, str, "", "C", false)
			xStart += colWidths[i]
			pdf.SetXY(xStart, yStart)
		}
		pdf.Ln(headerHeight)
		pdf.SetFont("Arial", "", 9)

		for i, v := range data {
			row := []string{
				fmt.Sprintf("%d", i+1),
				v.ProjectName,
				fmt.Sprintf("%d", v.Attendance),
				fmt.Sprintf("%d", v.Allotted),
				fmt.Sprintf("%d", v.Attendance-v.Allotted),
			}

			startX := pdf.GetX()
			startY := pdf.GetY()
			maxHeight := 0.0
			for j, txt := range row {
				lines := pdf.SplitLines([]byte(txt), colWidths[j])
				h := float64(len(lines)) * 5
				if h > maxHeight {
					maxHeight = h
				}
			}
			x := startX
			for j, txt := range row {
				y := pdf.GetY()
				pdf.Rect(x, y, colWidths[j], maxHeight, "D")
				pdf.MultiCell(colWidths[j], 5, txt, "", "", false)
				x += colWidths[j]
				pdf.SetXY(x, y)
			}
			pdf.SetXY(startX, startY+maxHeight)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		filename := fmt.Sprintf("Site Labour - Board Rollup (%s).pdf", general.Now().Format(constant.DATE_LAYOUT))
		return filename, &buf, "pdf", nil
	}

	f := excelize.NewFile()
	sheet := "Board Rollup"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)
	f.SetCellValue(sheet, "A1", "No")
	f.SetCellValue(sheet, "B1", "Project")
	f.SetCellValue(sheet, "C1", "Attendance")
	f.SetCellValue(sheet, "D1", "Allotted")
	f.SetCellValue(sheet, "E1", "Gap")
	for i, v := range data {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), v.ProjectName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), v.Attendance)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), v.Allotted)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), v.Attendance-v.Allotted)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	filename := fmt.Sprintf("Site Labour - Board Rollup (%s).xlsx", general.Now().Format(constant.DATE_LAYOUT))
	return filename, &buf, "excel", nil
}
