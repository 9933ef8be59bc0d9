package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportReport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.payrollService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report.ToResponse())
}

func (h *payrollHandlerImpl) ExportReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.payrollService.ExportReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.xlsx", req.Year, req.Month)
	response.Attachment(w, xlsxContentType, filename, data)
}

func parseReportRequest(r *http.Request) (payroll.ReportRequest, error) {
	var errs validator.ValidationErrors
	query := r.URL.Query()

	month, err := validator.ParseInt("month", query.Get("month"))
	if err != nil {
		errs = appendValidation(errs, err)
	}

	year, err := validator.ParseInt("year", query.Get("year"))
	if err != nil {
		errs = appendValidation(errs, err)
	}

	if len(errs) > 0 {
		return payroll.ReportRequest{}, errs
	}

	return payroll.ReportRequest{Month: month, Year: year}, nil
}

func appendValidation(errs validator.ValidationErrors, err error) validator.ValidationErrors {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return append(errs, ve...)
	}
	return append(errs, validator.ValidationError{Message: err.Error()})
}
