package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ReportResponse is the JSON representation of an available report.
type ReportResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// ReportListResponse is the body of the report catalogue endpoint.
type ReportListResponse struct {
	Locale  string           `json:"locale"`
	Reports []ReportResponse `json:"reports"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toReportResponse converts a domain ReportDescriptor to its JSON representation.
func toReportResponse(d model.ReportDescriptor) ReportResponse {
	return ReportResponse{
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Description: d.Description,
		Path:        d.Path,
	}
}
