package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubSiteService struct {
	maintenance  bool
	announcement string
	writeErr     error
}

func (s *stubSiteService) Maintenance(context.Context) bool { return s.maintenance }

func (s *stubSiteService) SetMaintenance(_ context.Context, on bool) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.maintenance = on
	return nil
}

func (s *stubSiteService) Announcement(context.Context) string { return s.announcement }

func (s *stubSiteService) SetAnnouncement(_ context.Context, text string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.announcement = text
	return nil
}

type stubAuditLog struct{ entries []string }

func (a *stubAuditLog) Append(m string) { a.entries = append([]string{m}, a.entries...) }
func (a *stubAuditLog) List() []string  { return a.entries }

func TestSiteHandler_Maintenance(t *testing.T) {
	e := newEcho()
	site := &stubSiteService{}
	handler := NewSiteHandler(site, &stubAuditLog{})

	c, rec := postJSON(e, "/api/maintenance", `{"maintenance":true}`)
	if err := handler.SetMaintenance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[messageResponse](t, rec); resp.Message != "維護模式已 開啟" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/maintenance", nil), rec)
	if err := handler.GetMaintenance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[maintenanceResponse](t, rec); !resp.Maintenance {
		t.Fatalf("expected maintenance on")
	}

	c, rec = postJSON(e, "/api/maintenance", `{"maintenance":false}`)
	if err := handler.SetMaintenance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[messageResponse](t, rec); resp.Message != "維護模式已 關閉" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestSiteHandler_Announcement(t *testing.T) {
	e := newEcho()
	site := &stubSiteService{}
	handler := NewSiteHandler(site, &stubAuditLog{})

	c, rec := postJSON(e, "/api/announcement", `{"text":"x"}`)
	if err := handler.SetAnnouncement(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[messageResponse](t, rec); resp.Message != "公告已更新" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/announcement", nil), rec)
	if err := handler.GetAnnouncement(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[announcementResponse](t, rec); resp.Text != "x" {
		t.Fatalf("expected %q, got %q", "x", resp.Text)
	}
}

func TestSiteHandler_WriteFailures(t *testing.T) {
	e := newEcho()
	handler := NewSiteHandler(&stubSiteService{writeErr: errors.New("read-only")}, &stubAuditLog{})

	c, rec := postJSON(e, "/api/maintenance", `{"maintenance":true}`)
	if err := handler.SetMaintenance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decode[errorResponse](t, rec); resp.Error != "無法更新維護模式" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}

	c, rec = postJSON(e, "/api/announcement", `{"text":"x"}`)
	if err := handler.SetAnnouncement(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSiteHandler_Logs(t *testing.T) {
	e := newEcho()
	audit := &stubAuditLog{}
	handler := NewSiteHandler(&stubSiteService{}, audit)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/logs", nil), rec)
	if err := handler.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}

	audit.Append("first")
	audit.Append("second")
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/logs", nil), rec)
	if err := handler.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	entries := decode[[]string](t, rec)
	if len(entries) != 2 || entries[0] != "second" {
		t.Fatalf("unexpected entries: %v", entries)
	}
}
