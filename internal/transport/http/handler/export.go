package handler

import (
	"log/slog"
	"net/http"

	"github.com/Sc-Mae/squad-service/internal/usecase"
)

// ExportHandler обрабатывает выгрузку отрядов в XML
type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

// NewExportHandler создает новый handler для экспорта
func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

// ExportSquads обрабатывает GET /squads/export
func (h *ExportHandler) ExportSquads(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportUseCase.ExportSquadsXML(r.Context())
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write XML response", "error", err)
	}
}
