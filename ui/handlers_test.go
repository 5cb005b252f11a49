package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goreview/domain/review"
	"goreview/internal/config"
)

func testServer() *Server {
	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	return NewServer(cfg, nil)
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, testServer(), httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["archive"] != false {
		t.Errorf("archive field = %v", body["archive"])
	}
}

func TestHandleSections(t *testing.T) {
	rec := doRequest(t, testServer(), httptest.NewRequest(http.MethodGet, "/api/sections", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var sections []review.Section
	if err := json.Unmarshal(rec.Body.Bytes(), &sections); err != nil {
		t.Fatal(err)
	}
	if len(sections) != 12 {
		t.Fatalf("got %d sections", len(sections))
	}
	if sections[0].Name != review.SectionEngineeringExcellence {
		t.Errorf("first section = %q", sections[0].Name)
	}
}

func multipartExport(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("export", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, mw.FormDataContentType()
}

func TestHandleParseCSV(t *testing.T) {
	csv := "Owner,Owner Email,Teams,Title,Parent Objective Title,State,Start Date,Due Date,Progress %,Status\n" +
		"Ravi Kumar,ravi@example.com,Payments,Cut build time from 45 minutes to 12 minutes for SD2 pipeline,Engineering/Operation Excellence,Closed,01/04/2025,30/06/2025,100,Completed\n"
	body, contentType := multipartExport(t, "objectives.csv", csv)

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, testServer(), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var ds review.Dataset
	if err := json.Unmarshal(rec.Body.Bytes(), &ds); err != nil {
		t.Fatal(err)
	}
	if ds.Metadata.Owner != "Ravi Kumar" || ds.Metadata.Team != "Payments" || ds.Metadata.Role != "SD2" {
		t.Errorf("metadata = %+v", ds.Metadata)
	}
	if ds.Objectives.Total() != 1 {
		t.Errorf("objectives total = %d", ds.Objectives.Total())
	}
	if len(ds.Metrics) != 1 {
		t.Errorf("metrics = %+v", ds.Metrics)
	}
	if ds.Summary.TotalObjectives != 1 {
		t.Errorf("summary = %+v", ds.Summary)
	}
}

func TestHandleParseRejectsUnknownExtension(t *testing.T) {
	body, contentType := multipartExport(t, "objectives.txt", "not a spreadsheet")

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, testServer(), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only .csv, .xlsx, and .xls exports are supported") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleParseWithoutFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/datasets/parse", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
	rec := doRequest(t, testServer(), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func promptRequestBody(t *testing.T) *bytes.Reader {
	t.Helper()
	ix := review.NewObjectiveIndex()
	ix.Add(review.SectionImpact, review.Objective{Title: "Reduced API latency by 30%"})
	ds := &review.Dataset{
		Metadata:   review.Metadata{Owner: "Ravi Kumar", Team: "Payments", Role: "SD2"},
		Objectives: ix,
	}
	raw, err := json.Marshal(ds)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(raw)
}

func TestHandlePrompt(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/prompts/9", promptRequestBody(t))
	rec := doRequest(t, testServer(), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Section review.Section `json:"section"`
		Prompt  string         `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Section.Number != 9 || resp.Section.Name != review.SectionImpact {
		t.Errorf("section = %+v", resp.Section)
	}
	if !strings.Contains(resp.Prompt, `Generate a response for the "Impact" competency section.`) {
		t.Errorf("prompt = %q", resp.Prompt)
	}
}

func TestHandlePromptBadNumbers(t *testing.T) {
	for _, path := range []string{"/api/prompts/13", "/api/prompts/abc"} {
		req := httptest.NewRequest(http.MethodPost, path, promptRequestBody(t))
		rec := doRequest(t, testServer(), req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}
}

func TestHandlePromptDocumentFormats(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/prompts/document", promptRequestBody(t))
		rec := doRequest(t, testServer(), req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
			t.Errorf("content type = %q", ct)
		}
		if !strings.Contains(rec.Body.String(), "# Performance Review Prompts") {
			t.Error("markdown document missing title")
		}
	})

	t.Run("html", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/prompts/document?format=html", promptRequestBody(t))
		rec := doRequest(t, testServer(), req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("content type = %q", ct)
		}
		if !strings.Contains(rec.Body.String(), "<h1") {
			t.Error("html document missing rendered heading")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/prompts/document?format=pdf", promptRequestBody(t))
		rec := doRequest(t, testServer(), req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleValidate(t *testing.T) {
	ix := review.NewObjectiveIndex()
	payload := map[string]interface{}{
		"dataset": &review.Dataset{
			Metadata:   review.Metadata{Owner: "Ravi Kumar", Team: "Payments", Role: "SD2"},
			Objectives: ix,
		},
		"responses": map[string]string{review.SectionImpact: ""},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/validate", bytes.NewReader(raw))
	rec := doRequest(t, testServer(), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report    *review.Report `json:"report"`
		ArchiveID *string        `json:"archive_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Report.Summary.SectionsValidated != 1 {
		t.Errorf("summary = %+v", resp.Report.Summary)
	}
	if resp.Report.Sections[review.SectionImpact].Status != review.StatusError {
		t.Errorf("sections = %+v", resp.Report.Sections)
	}
	if resp.ArchiveID != nil {
		t.Error("archive id should be absent without an archive")
	}
}

func TestHandleValidateMissingPieces(t *testing.T) {
	for name, body := range map[string]string{
		"empty object":  `{}`,
		"no responses":  `{"dataset": {"metadata": {"owner": "", "owner_email": "", "team": "", "role": "UNKNOWN"}}}`,
		"garbled input": `{"dataset": [}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/reviews/validate", strings.NewReader(body))
		rec := doRequest(t, testServer(), req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", name, rec.Code)
		}
	}
}

func TestArchiveRoutesWithoutArchive(t *testing.T) {
	for _, path := range []string{"/api/reports", "/api/reports/0198c5a4-0000-7000-8000-000000000000"} {
		rec := doRequest(t, testServer(), httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}
}
