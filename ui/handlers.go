package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"

	"goreview/adapters/tabular"
	"goreview/domain/review"
	"goreview/internal/errors"
	"goreview/internal/extract"
	"goreview/internal/prompt"
	"goreview/internal/report"
	"goreview/internal/validate"
)

const maxExportSize = 50 * 1024 * 1024 // 50MB

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("[Server] Failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"archive": s.archive != nil,
	})
}

// handleSections lists the twelve review-form sections.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, review.Sections)
}

// handleParse ingests an uploaded objectives export and returns the extracted
// dataset.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := s.parseSem.Acquire(r.Context(), 1); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "Parse capacity unavailable")
		return
	}
	defer s.parseSem.Release(1)

	file, header, err := r.FormFile("export")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "No export file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxExportSize {
		s.writeError(w, http.StatusBadRequest, "Export exceeds the 50MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".xlsx" && ext != ".xls" {
		s.writeError(w, http.StatusBadRequest, "Only .csv, .xlsx, and .xls exports are supported")
		return
	}
	s.logger.Debug("[Server] Received export %s (%d bytes)", header.Filename, header.Size)

	// The reader dispatches on the file extension, so the temp file keeps
	// the upload's.
	tmp, err := os.CreateTemp("", "export-*"+ext)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.writeError(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}
	tmp.Close()

	table, err := tabular.NewDataReader(tmp.Name()).Read()
	if err != nil {
		s.logger.Warn("[Server] Export parse failed: %v", err)
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Failed to parse export: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, extract.Assemble(table))
}

type validateRequest struct {
	Dataset   *review.Dataset   `json:"dataset"`
	Responses map[string]string `json:"responses"`
}

type validateResponse struct {
	Report    *review.Report `json:"report"`
	ArchiveID *uuid.UUID     `json:"archive_id,omitempty"`
}

// handleValidate scores authored responses against a dataset. Archive
// failures degrade to a log line rather than failing the request.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Dataset == nil {
		s.writeError(w, http.StatusBadRequest, "Missing dataset")
		return
	}
	if req.Responses == nil {
		s.writeError(w, http.StatusBadRequest, "Missing responses")
		return
	}

	rep := validate.New(req.Dataset).ValidateReview(req.Responses)

	resp := validateResponse{Report: rep}
	if s.archive != nil {
		id, err := s.archive.SaveReport(r.Context(), req.Dataset.Metadata.Owner, rep)
		if err != nil {
			s.logger.Error("[Server] Failed to archive report: %v", err)
		} else {
			resp.ArchiveID = &id
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handlePrompt composes the generation prompt for one section from a posted
// dataset.
func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Section number must be an integer")
		return
	}

	var ds review.Dataset
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid dataset body")
		return
	}

	text, err := prompt.ForSection(number, &ds)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	section, _ := review.SectionByNumber(number)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"section": section,
		"prompt":  text,
	})
}

// handlePromptDocument renders the full prompt pack as Markdown or HTML.
func (s *Server) handlePromptDocument(w http.ResponseWriter, r *http.Request) {
	var ds review.Dataset
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid dataset body")
		return
	}

	doc, err := report.PromptDocument(&ds)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(doc))
	case "html":
		p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
		renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.CompletePage})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(markdown.Render(p.Parse([]byte(doc)), renderer))
	default:
		s.writeError(w, http.StatusBadRequest, "format must be markdown or html")
	}
}

// handleListReports returns archived validation runs, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Report archive not configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	reports, err := s.archive.ListReports(r.Context(), r.URL.Query().Get("owner"), limit)
	if err != nil {
		s.logger.Error("[Server] Failed to list reports: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}
	s.writeJSON(w, http.StatusOK, reports)
}

// handleGetReport returns one archived run by id.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Report archive not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	record, err := s.archive.GetReport(r.Context(), id)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			s.writeError(w, http.StatusNotFound, "Report not found")
			return
		}
		s.logger.Error("[Server] Failed to load report: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}
