package workreport

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
	"sitelabour/pkg/util/trxmanager"
	"sitelabour/pkg/ws"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.WorkReportCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.WorkReportFindByIDRequest) (map[string]interface{}, error)
	Remaining(ctx *abstraction.Context, payload *dto.WorkReportRemainingRequest) (map[string]interface{}, error)
	Export(ctx *abstraction.Context, payload *dto.WorkReportExportRequest) (string, *bytes.Buffer, string, error)
}

type service struct {
	WorkReportRepository        repository.WorkReport
	AttendanceRepository        repository.Attendance
	ProjectRepository           repository.Project
	ProjectAssignmentRepository repository.ProjectAssignment
	LabourTypeRepository        repository.LabourType

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		WorkReportRepository:        f.WorkReportRepository,
		AttendanceRepository:        f.AttendanceRepository,
		ProjectRepository:           f.ProjectRepository,
		ProjectAssignmentRepository: f.ProjectAssignmentRepository,
		LabourTypeRepository:        f.LabourTypeRepository,

		DB: f.Db,
	}
}

func (s *service) checkProjectAccess(ctx *abstraction.Context, projectId int) error {
	if ctx.Auth.RoleID == constant.ROLE_ID_ADMIN {
		return nil
	}
	if ctx.Auth.RoleID != constant.ROLE_ID_ENGINEER {
		return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "this role is not permitted")
	}
	assignments, err := s.ProjectAssignmentRepository.FindByUserId(ctx, ctx.Auth.ID)
	if err != nil && err.Error() != "record not found" {
		return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if len(assignments) == 0 {
		return nil
	}
	for _, a := range assignments {
		if a.ProjectId == projectId {
			return nil
		}
	}
	return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project is not assigned to this user")
}

func (s *service) attendanceByKey(ctx *abstraction.Context, projectId int, date string) (map[AllocationKey]int, error) {
	var rows []*model.AttendanceEntityModel
	err := retry.Do(constant.RETRY_MAX_RETRIES, constant.RETRY_INITIAL_DELAY, func() error {
		var findErr error
		rows, findErr = s.AttendanceRepository.FindByProjectAndDate(ctx, projectId, date)
		return findErr
	})
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	attendance := make(map[AllocationKey]int, len(rows))
	for _, row := range rows {
		attendance[AllocationKey{TeamId: row.TeamId, LabourTypeId: row.LabourTypeId}] = row.Count
	}
	return attendance, nil
}

/// Create writes the whole report or nothing: header, allotments and labour
// rows land in one transaction so a crash never leaves a header without its
// items.
func (s *service) Create(ctx *abstraction.Context, payload *dto.WorkReportCreateRequest) (map[string]interface{}, error) {
	if !general.IsValidDate(payload.Date) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "date is not valid")
	}

	var reportId int
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		if err := s.checkProjectAccess(ctx, payload.ProjectId); err != nil {
			return err
		}

		projectData, err := s.ProjectRepository.FindById(ctx, payload.ProjectId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if projectData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "project not found")
		}

		for _, item := range payload.Items {
			for _, alloc := range item.Allocations {
				typeData, err := s.LabourTypeRepository.FindById(ctx, alloc.LabourTypeId)
				if err != nil && err.Error() != "record not found" {
					return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
				}
				if typeData == nil {
					return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type not found")
				}
				if typeData.TeamId != alloc.TeamId {
					return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "labour type does not belong to team")
				}
			}
		}

		modelReport := &model.WorkReportEntityModel{
			Context: ctx,
			WorkReportEntity: model.WorkReportEntity{
				ProjectId:   payload.ProjectId,
				Date:        payload.Date,
				Description: payload.Description,
			},
			EntityWithBy: abstraction.EntityWithBy{
				CreatedBy: ctx.Auth.ID,
			},
		}
		if err = s.WorkReportRepository.Create(ctx, modelReport).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		reportId = modelReport.ID

		for _, item := range payload.Items {
			modelAllotment := &model.WorkAllotmentEntityModel{
				Context: ctx,
				WorkAllotmentEntity: model.WorkAllotmentEntity{
					ReportId:        modelReport.ID,
					WorkDescription: item.WorkDescription,
					Quantity:        item.Quantity,
					Uom:             item.Uom,
				},
			}
			if err = s.WorkReportRepository.CreateAllotment(ctx, modelAllotment).Error; err != nil {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}

			if len(item.Allocations) == 0 {
				continue
			}
			labours := make([]*model.WorkReportLabourEntityModel, 0, len(item.Allocations))
			for _, alloc := range item.Allocations {
				labours = append(labours, &model.WorkReportLabourEntityModel{
					Context: ctx,
					WorkReportLabourEntity: model.WorkReportLabourEntity{
						WorkAllotmentId: modelAllotment.ID,
						TeamId:          alloc.TeamId,
						LabourTypeId:    alloc.LabourTypeId,
						Count:           alloc.Count,
					},
				})
			}
			if err = s.WorkReportRepository.CreateLabourBatch(ctx, labours).Error; err != nil {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	ws.PublishBoardUpdate(payload.ProjectId, payload.Date)

	// over-allocation is reported back, never rejected
	attendance, err := s.attendanceByKey(ctx, payload.ProjectId, payload.Date)
	if err != nil {
		return nil, err
	}
	var overAllocated []map[string]interface{} = nil
	for key, rem := range ComputeRemaining(attendance, payload.Items) {
		if rem < 0 {
			overAllocated = append(overAllocated, map[string]interface{}{
				"team_id":        key.TeamId,
				"labour_type_id": key.LabourTypeId,
				"remaining":      rem,
			})
		}
	}

	return map[string]interface{}{
		"message":        "success create!",
		"id":             reportId,
		"over_allocated": overAllocated,
	}, nil
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	var res []map[string]interface{} = nil
	data, err := s.WorkReportRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.WorkReportRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"id":          v.ID,
			"project_id":  v.ProjectId,
			"project":     v.Project.Name,
			"date":        v.Date,
			"description": v.Description,
			"items":       len(v.Allotments),
			"created_at":  general.FormatWithZWithoutChangingTime(v.CreatedAt),
		})
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.WorkReportFindByIDRequest) (map[string]interface{}, error) {
	data, err := s.WorkReportRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data == nil {
		return map[string]interface{}{
			"data": nil,
		}, nil
	}

	var items []map[string]interface{} = nil
	for _, a := range data.Allotments {
		var allocations []map[string]interface{} = nil
		for _, l := range a.Labours {
			allocations = append(allocations, map[string]interface{}{
				"team_id":        l.TeamId,
				"team_name":      l.Team.Name,
				"labour_type_id": l.LabourTypeId,
				"type_name":      l.LabourType.TypeName,
				"count":          l.Count,
			})
		}
		items = append(items, map[string]interface{}{
			"id":               a.ID,
			"work_description": a.WorkDescription,
			"quantity":         a.Quantity,
			"uom":              a.Uom,
			"allocations":      allocations,
		})
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"id":          data.ID,
			"project_id":  data.ProjectId,
			"project":     data.Project.Name,
			"date":        data.Date,
			"description": data.Description,
			"items":       items,
			"created_at":  general.FormatWithZWithoutChangingTime(data.CreatedAt),
		},
	}, nil
}

// Remaining answers "how many heads are left" while the engineer is still
// composing the report; nothing is written.
func (s *service) Remaining(ctx *abstraction.Context, payload *dto.WorkReportRemainingRequest) (map[string]interface{}, error) {
	if !general.IsValidDate(payload.Date) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "date is not valid")
	}
	if err := s.checkProjectAccess(ctx, payload.ProjectId); err != nil {
		return nil, err
	}

	attendance, err := s.attendanceByKey(ctx, payload.ProjectId, payload.Date)
	if err != nil {
		return nil, err
	}
	remaining := ComputeRemaining(attendance, payload.Items)

	// only buckets backed by an attendance row are listed; allocations against
	// unattended buckets surface through the over_allocated warning on save
	var rows []map[string]interface{} = nil
	for key, rem := range remaining {
		if _, ok := attendance[key]; !ok {
			continue
		}
		rows = append(rows, map[string]interface{}{
			"key":            fmt.Sprintf("%d-%d", key.TeamId, key.LabourTypeId),
			"team_id":        key.TeamId,
			"labour_type_id": key.LabourTypeId,
			"attendance":     attendance[key],
			"remaining":      rem,
		})
	}

	return map[string]interface{}{
		"project_id": payload.ProjectId,
		"date":       payload.Date,
		"rows":       rows,
	}, nil
}

func (s *service) Export(ctx *abstraction.Context, payload *dto.WorkReportExportRequest) (string, *bytes.Buffer, string, error) {
	data, err := s.WorkReportRepository.Find(ctx, true)
	if err != nil && err.Error() != "record not found" {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	type exportRow struct {
		reportId    int
		project     string
		date        string
		description string
		quantity    string
		uom         string
		labours     int
	}
	var rows []exportRow
	for _, v := range data {
		for _, a := range v.Allotments {
			total := 0
			for _, l := range a.Labours {
				total += l.Count
			}
			rows = append(rows, exportRow{
				reportId:    v.ID,
				project:     v.Project.Name,
				date:        v.Date,
				description: a.WorkDescription,
				quantity:    a.Quantity,
				uom:         a.Uom,
				labours:     total,
			})
		}
	}

	if payload.Format == "pdf" {
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, "Site Labour - Work Reports")
		pdf.Ln(12)
		pdf.SetFont("Arial", "B", 10)
		header := []string{"No", "Report", "Project", "Date", "Work Description", "Quantity", "UOM", "Labours"}
		colWidths := []float64{10, 18, 50, 26, 102, 26, 20, 25}
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

		for i, v := range rows {
			row := []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", v.reportId),
				v.project,
				v.date,
				v.description,
				v.quantity,
				v.uom,
				fmt.Sprintf("%d", v.labours),
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
		filename := fmt.Sprintf("Site Labour - Work Reports (%s).pdf", general.Now().Format(constant.DATE_LAYOUT))
		return filename, &buf, "pdf", nil
	}

	f := excelize.NewFile()
	sheet := "Work Reports"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)
	f.SetCellValue(sheet, "A1", "No")
	f.SetCellValue(sheet, "B1", "Report")
	f.SetCellValue(sheet, "C1", "Project")
	f.SetCellValue(sheet, "D1", "Date")
	f.SetCellValue(sheet, "E1", "Work Description")
	f.SetCellValue(sheet, "F1", "Quantity")
	f.SetCellValue(sheet, "G1", "UOM")
	f.SetCellValue(sheet, "H1", "Labours")
	for i, v := range rows {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), v.reportId)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), v.project)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), v.date)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), v.description)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), v.quantity)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), v.uom)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), v.labours)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	filename := fmt.Sprintf("Site Labour - Work Reports (%s).xlsx", general.Now().Format(constant.DATE_LAYOUT))
	return filename, &buf, "excel", nil
}
