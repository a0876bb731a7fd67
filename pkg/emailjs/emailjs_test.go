package emailjs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	if err := c.Init("pub_key"); err != nil {
		t.Fatal(err)
	}
	resp, err := c.Send(context.Background(), "service_x", "template_y", map[string]string{"clientName": "홍길동"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if resp.Status != http.StatusOK || resp.Text != "OK" {
		t.Errorf("resp = %+v", resp)
	}
	if got.ServiceID != "service_x" || got.TemplateID != "template_y" || got.UserID != "pub_key" {
		t.Errorf("request = %+v", got)
	}
	if got.TemplateParams["clientName"] != "홍길동" {
		t.Errorf("params = %v", got.TemplateParams)
	}
}

func TestSend_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_ = c.Init("pub_key")
	resp, err := c.Send(context.Background(), "s", "t", nil)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if resp.Status != http.StatusBadRequest || resp.Text != "The template ID is invalid" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSend_NotInitialized(t *testing.T) {
	c := New("", nil)
	if c.Initialized() {
		t.Error("new client must not be initialized")
	}
	if _, err := c.Send(context.Background(), "s", "t", nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if err := c.Init(""); !errors.Is(err, ErrMissingPublicKey) {
		t.Errorf("expected ErrMissingPublicKey, got %v", err)
	}
}

func TestSend_MissingIDs(t *testing.T) {
	c := New("", nil)
	_ = c.Init("pub_key")
	if _, err := c.Send(context.Background(), "", "t", nil); !errors.Is(err, ErrMissingIDs) {
		t.Errorf("expected ErrMissingIDs, got %v", err)
	}
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, nil)
	_ = c.Init("pub_key")
	if _, err := c.Send(context.Background(), "s", "t", nil); err == nil {
		t.Error("expected error when the server is down")
	}
}
