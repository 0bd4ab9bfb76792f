package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/payledger/payledger-backend-go/internal/domain/dataset"
	"github.com/payledger/payledger-backend-go/internal/handler/http/response"
)

type DatasetHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type datasetHandlerImpl struct {
	datasetService dataset.DatasetService
}

func NewDatasetHandler(datasetService dataset.DatasetService) DatasetHandler {
	return &datasetHandlerImpl{datasetService: datasetService}
}

// Export implements DatasetHandler. The document is returned raw, not in
// the response envelope, so the download round-trips through Import as-is.
func (h *datasetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.datasetService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="data.json"`)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		response.InternalServerError(w, "Failed to encode dataset")
	}
}

// Import implements DatasetHandler. ?year= selects the year legacy
// single-year documents are applied to (default: current year).
func (h *datasetHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var doc dataset.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		response.BadRequest(w, "Invalid dataset document", nil)
		return
	}

	defaultYear := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		defaultYear = parsed
	}

	if err := h.datasetService.Import(r.Context(), doc, defaultYear); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dataset imported", nil)
}
