package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CrewPlanner_Go/internal/catalog"
	"github.com/osse101/CrewPlanner_Go/internal/demand"
	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/export"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/profile"
	"github.com/osse101/CrewPlanner_Go/internal/report"
)

// HeaderRunID carries the export run id on CSV responses
const HeaderRunID = "X-Run-ID"

// HydrateResponse is the profile merged with the reference catalog
type HydrateResponse struct {
	RunID   string                `json:"run_id"`
	Summary *profile.Summary      `json:"summary"`
	Crew    []domain.HydratedCrew `json:"crew"`
	Ships   []domain.HydratedShip `json:"ships"`
	Items   []domain.HydratedItem `json:"items"`
	Catalog catalog.Stats         `json:"catalog"`
}

// SheetResponse is one rendered sheet plus the run's bookkeeping
type SheetResponse struct {
	RunID    string             `json:"run_id"`
	Sheet    export.Sheet       `json:"sheet"`
	Summary  *profile.Summary   `json:"summary"`
	Excluded []demand.Exclusion `json:"excluded,omitempty"`
}

// ExportHandlers serves profile uploads
type ExportHandlers struct {
	profiles ProfileDecoder
	reports  report.Service
}

// NewExportHandlers creates export handlers
func NewExportHandlers(profiles ProfileDecoder, reports report.Service) *ExportHandlers {
	return &ExportHandlers{
		profiles: profiles,
		reports:  reports,
	}
}

// HandleHydrate returns the uploaded profile joined with catalog metadata
func (h *ExportHandlers) HandleHydrate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, sum, ok := h.build(w, r)
		if !ok {
			return
		}

		respondJSON(w, http.StatusOK, HydrateResponse{
			RunID:   rep.RunID,
			Summary: sum,
			Crew:    rep.Crew,
			Ships:   rep.Ships,
			Items:   rep.Items,
			Catalog: rep.Catalog,
		})
	}
}

// HandleExportSheet renders the sheet named in the route in the requested
// format, falling back to DefaultFormat
func (h *ExportHandlers) HandleExportSheet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseExportParams(w, r)
		if !ok {
			return
		}
		h.serveSheet(w, r, params)
	}
}

func (h *ExportHandlers) serveSheet(w http.ResponseWriter, r *http.Request, params ExportParams) {
	rep, sum, ok := h.build(w, r)
	if !ok {
		return
	}

	sheet, found := export.SheetByName(rep, params.Sheet)
	if !found {
		respondError(w, http.StatusNotFound, ErrMsgUnknownSheet)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgExportServed,
		"sheet", sheet.Name,
		"format", params.Format,
		"rows", len(sheet.Rows),
		"columns", len(sheet.Header))

	if params.Format == FormatCSV {
		respondCSV(w, r, rep.RunID, sheet)
		return
	}

	resp := SheetResponse{
		RunID:   rep.RunID,
		Sheet:   sheet,
		Summary: sum,
	}
	if sheet.Name == export.SheetEquipment {
		resp.Excluded = rep.Excluded
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *ExportHandlers) build(w http.ResponseWriter, r *http.Request) (*report.Report, *profile.Summary, bool) {
	p, sum, ok := decodeProfile(w, r, h.profiles)
	if !ok {
		return nil, nil, false
	}

	rep, err := h.reports.Build(r.Context(), p)
	if err != nil {
		respondServiceError(w, r, LogMsgBuildFailed, err)
		return nil, nil, false
	}
	return rep, sum, true
}

// respondCSV buffers the sheet so a write failure can still produce a 500
func respondCSV(w http.ResponseWriter, r *http.Request, runID string, sheet export.Sheet) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := export.WriteCSV(buf, sheet); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgCSVFailed, "sheet", sheet.Name, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgWriteCSVFailed)
		return
	}

	w.Header().Set("Content-Type", ContentTypeCSV)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(sheet)))
	w.Header().Set(HeaderRunID, runID)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
	}
}
