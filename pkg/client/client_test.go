package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStartSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Turn{
			SessionID: "sess-1",
			Question:  "How was your weekend?",
			MaxTurns:  10,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	turn, err := c.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if turn.SessionID != "sess-1" || turn.Question == "" {
		t.Errorf("unexpected turn: %+v", turn)
	}
}

func TestSendMessage_ForwardsReplyAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/sess-1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("auth = %q", auth)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["reply"] != "I went hiking." {
			t.Errorf("reply = %q", body["reply"])
		}
		_ = json.NewEncoder(w).Encode(Turn{SessionID: "sess-1", Turn: 1, Question: "Next?"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithAPIKey("secret"))
	turn, err := c.SendMessage(context.Background(), "sess-1", "I went hiking.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if turn.Turn != 1 {
		t.Errorf("turn = %d", turn.Turn)
	}
}

func TestSendMessage_FinalTurnResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Turn{
			SessionID: "sess-1",
			Turn:      10,
			Done:      true,
			Result: &Assessment{
				Score:          4.1,
				Classification: "High",
				Confidence:     0.78,
				FusionMethod:   "confidence_weighted_mean",
				MethodsUsed:    3,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	turn, err := c.SendMessage(context.Background(), "sess-1", "last reply")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !turn.Done || turn.Result == nil || turn.Result.Classification != "High" {
		t.Errorf("unexpected final turn: %+v", turn)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		code   string
		want   error
	}{
		{http.StatusNotFound, "session_not_found", ErrSessionNotFound},
		{http.StatusConflict, "session_terminated", ErrSessionTerminated},
		{http.StatusConflict, "session_busy", ErrSessionBusy},
		{http.StatusBadRequest, "empty_reply", ErrEmptyReply},
		{http.StatusRequestEntityTooLarge, "reply_too_long", ErrReplyTooLong},
		{http.StatusBadGateway, "provider_error", ErrProviderError},
		{http.StatusUnauthorized, "bad_request", ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"code":    tc.code,
					"message": "nope",
				})
			}))
			defer srv.Close()

			c := New(srv.URL)
			_, err := c.SendMessage(context.Background(), "x", "y")
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestErrorMapping_UnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "odd_code",
			"message": "strange",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.StartSession(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTeapot || apiErr.Code != "odd_code" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestSetSelfReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/sessions/sess-1/self-report" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]float64
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["score"] != 3.7 {
			t.Errorf("score = %v", body["score"])
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.SetSelfReport(context.Background(), "sess-1", 3.7); err != nil {
		t.Fatalf("self report: %v", err)
	}
}

func TestGetReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Report{
			SessionID:  "sess-1",
			TotalTurns: 2,
			Turns: []TurnRecord{
				{TurnNumber: 1, Question: "Q1", Reply: "R1"},
				{TurnNumber: 2, Question: "Q2", Reply: "R2"},
			},
			Scoring: &Assessment{Score: 2.1, Classification: "Low"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	report, err := c.GetReport(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TotalTurns != 2 || report.Scoring == nil || report.Scoring.Classification != "Low" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestListSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SessionList{Items: []string{"a", "b"}, Total: 2})
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("total = %d", list.Total)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Health{
			Status: "ok",
			Checks: map[string]string{"database": "ok"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	h, err := c.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "ok" {
		t.Errorf("status = %q", h.Status)
	}
}
