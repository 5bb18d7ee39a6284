package progress

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"greenplot/internal/upload"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := NewFileStore(filepath.Join(t.TempDir(), "progress_log.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	photos := upload.NewSaver(t.TempDir(), 0)

	r := gin.New()
	NewHandler(NewLedger(store), photos, nil).RegisterRoutes(r.Group("/"))
	return r
}

func multipartBody(t *testing.T, fields map[string]string, photoName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if photoName != "" {
		fw, err := w.CreateFormFile("photo", photoName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestSubmitWithoutPhotoNotSaved(t *testing.T) {
	r := setupRouter(t)

	form := url.Values{"region": {"Gujarat"}, "soil": {"clayey"}, "area_sqm": {"120"}}
	req := httptest.NewRequest(http.MethodPost, "/progress", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 even when not saved", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["saved"] != false {
		t.Errorf("saved = %v; want false", resp["saved"])
	}
}

func TestSubmitRejectedPhotoExtensionNotSaved(t *testing.T) {
	r := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{"region": "Gujarat"}, "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/progress", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["saved"] != false {
		t.Errorf("saved = %v; want false for a .txt upload", resp["saved"])
	}
}

func TestSubmitAndHistory(t *testing.T) {
	r := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"region":   "Gujarat",
		"soil":     "clayey",
		"area_sqm": "120",
		"note":     " day one ",
	}, "plot.jpg")
	req := httptest.NewRequest(http.MethodPost, "/progress", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "u42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Saved bool `json:"saved"`
		Entry struct {
			Region         string `json:"region"`
			Note           string `json:"note"`
			PhotoReference string `json:"photo_reference"`
			CreatedAt      string `json:"created_at"`
			UserID         string `json:"user_id"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Saved {
		t.Fatalf("saved = false; body %s", w.Body.String())
	}
	if resp.Entry.Note != "day one" {
		t.Errorf("note = %q; want trimmed", resp.Entry.Note)
	}
	if resp.Entry.PhotoReference == "" || resp.Entry.PhotoReference == "plot.jpg" {
		t.Errorf("photo_reference = %q; want an opaque stored name", resp.Entry.PhotoReference)
	}
	if !strings.HasSuffix(resp.Entry.PhotoReference, ".jpg") {
		t.Errorf("photo_reference = %q; want original extension kept", resp.Entry.PhotoReference)
	}
	if resp.Entry.UserID != "u42" {
		t.Errorf("user_id = %q; want u42", resp.Entry.UserID)
	}

	// The submitter sees their entry and first badge.
	histReq := httptest.NewRequest(http.MethodGet, "/progress", nil)
	histReq.Header.Set("X-User-ID", "u42")
	histW := httptest.NewRecorder()
	r.ServeHTTP(histW, histReq)

	var hist struct {
		Total   int              `json:"total"`
		Entries []map[string]any `json:"entries"`
		Badges  []string         `json:"badges"`
	}
	if err := json.Unmarshal(histW.Body.Bytes(), &hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if hist.Total != 1 || len(hist.Entries) != 1 {
		t.Fatalf("history total = %d, entries = %d; want 1/1", hist.Total, len(hist.Entries))
	}
	if hist.Entries[0]["region"] != "Gujarat" {
		t.Errorf("history region = %v; want Gujarat", hist.Entries[0]["region"])
	}
	if len(hist.Badges) != 1 || hist.Badges[0] != "FirstSubmission" {
		t.Errorf("badges = %v; want [FirstSubmission]", hist.Badges)
	}

	// Anonymous callers get an empty view, not an error.
	anonReq := httptest.NewRequest(http.MethodGet, "/progress", nil)
	anonW := httptest.NewRecorder()
	r.ServeHTTP(anonW, anonReq)

	if err := json.Unmarshal(anonW.Body.Bytes(), &hist); err != nil {
		t.Fatalf("decode anonymous history: %v", err)
	}
	if hist.Total != 0 || len(hist.Badges) != 0 {
		t.Errorf("anonymous history total = %d, badges = %v; want empty", hist.Total, hist.Badges)
	}
}
