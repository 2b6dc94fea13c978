// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, config.App{}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// fastRetries shrinks the retry waits so rate-limit tests do not sleep for
// real. The retry count and conditions stay as configured.
func fastRetries(a *httpServerAdapter) {
	a.client.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)
}

// ── Signon ───────────────────────────────────────────────────────────────────

func TestSignon_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/user/signon", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wc"))
		assert.Equal(t, "true", r.URL.Query().Get("remember"))

		var creds models.SignonRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SignonResponse{
			Token:   "sess-token",
			UserID:  "u1",
			InboxID: "inbox-u1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signon(context.Background(), models.SignonRequest{
		Username: "alice@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-token", got.Token)
	assert.Equal(t, "sess-token", a.Token())
	assert.Equal(t, models.AuthModeWeb, a.AuthMode())
}

func TestSignon_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("username or password incorrect"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signon(context.Background(), models.SignonRequest{Username: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── request identity ─────────────────────────────────────────────────────────

func TestRequestIdentityHeaders(t *testing.T) {
	var gotUA, gotDevice, gotOrigin string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotDevice = r.Header.Get("x-device")
		gotOrigin = r.Header.Get("Origin")
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	adapterCfg := config.Adapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	ai, err := NewHTTPServerAdapter(adapterCfg, config.App{DeviceID: "dev-42"}, logger.Nop())
	require.NoError(t, err)

	_, err = ai.GetUserProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultUserAgent, gotUA)
	assert.Equal(t, "https://ticktick.com", gotOrigin)

	var device struct {
		Platform string `json:"platform"`
		ID       string `json:"id"`
		Version  int    `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(gotDevice), &device))
	assert.Equal(t, "web", device.Platform)
	assert.Equal(t, "dev-42", device.ID)
	assert.Equal(t, 6010, device.Version)
}

func TestDeviceHeader_DefaultID(t *testing.T) {
	var device struct {
		ID      string `json:"id"`
		Channel string `json:"channel"`
	}
	require.NoError(t, json.Unmarshal([]byte(deviceHeader("")), &device))

	assert.Equal(t, "web_client", device.ID)
	assert.Equal(t, "website", device.Channel)
}

// ── auth modes ───────────────────────────────────────────────────────────────

func TestAuthedRequest_WebTokenCookie(t *testing.T) {
	var cookie *http.Cookie
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, _ = r.Cookie("t")
		authHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("web-session")

	_, err := a.GetHabits(context.Background())

	require.NoError(t, err)
	require.NotNil(t, cookie)
	assert.Equal(t, "web-session", cookie.Value)
	assert.Empty(t, authHeader)
}

func TestAuthedRequest_APITokenBearer(t *testing.T) {
	var cookie *http.Cookie
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, _ = r.Cookie("t")
		authHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	adapterCfg := config.Adapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	ai, err := NewHTTPServerAdapter(adapterCfg, config.App{APIToken: "open-api-token"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.AuthModeAPIToken, ai.AuthMode())

	_, err = ai.GetHabits(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer open-api-token", authHeader)
	assert.Nil(t, cookie)
}

func TestAuthedRequest_NoToken(t *testing.T) {
	var hasCookie bool
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("t")
		hasCookie = err == nil
		authHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetHabits(context.Background())

	require.NoError(t, err)
	assert.False(t, hasCookie)
	assert.Empty(t, authHeader)
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestCheck_FullSync(t *testing.T) {
	body := `{
		"checkPoint": 1724200000000,
		"inboxId": "inbox-u1",
		"projectProfiles": [{"id": "p1", "name": "Chores"}],
		"projectGroups": [],
		"tags": [{"name": "home", "label": "Home"}],
		"filters": [],
		"syncTaskBean": {"update": [{"id": "t1", "projectId": "p1", "title": "Mop floor"}], "empty": false},
		"syncTaskOrderBean": {}
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/batch/check/0", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	snap, err := a.Check(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1724200000000), snap.Checkpoint)
	assert.Equal(t, "inbox-u1", snap.InboxID)

	require.True(t, snap.Projects.Present())
	require.Equal(t, 1, snap.Projects.Len())
	assert.Equal(t, "Chores", snap.Projects.Items()[0].Name)

	assert.True(t, snap.Groups.Present())
	assert.Zero(t, snap.Groups.Len())

	require.True(t, snap.Tags.Present())
	assert.Equal(t, "home", snap.Tags.Items()[0].Name)

	require.NotNil(t, snap.Tasks)
	require.Len(t, snap.Tasks.Update, 1)
	assert.Equal(t, "Mop floor", snap.Tasks.Update[0].Title)
}

func TestCheck_DeltaKeepsAbsentCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/batch/check/1724200000000", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"checkPoint": 1724200000123, "tags": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	snap, err := a.Check(context.Background(), 1724200000000)

	require.NoError(t, err)
	assert.Equal(t, int64(1724200000123), snap.Checkpoint)

	// tags came back explicitly empty: every tag is gone
	assert.True(t, snap.Tags.Present())
	assert.Zero(t, snap.Tags.Len())

	// projects and tasks were omitted: unchanged, not empty
	assert.False(t, snap.Projects.Present())
	assert.Nil(t, snap.Tasks)
}

func TestCheck_MissingCheckpointIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tags": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.Check(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestCheck_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Check(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── batch writes ─────────────────────────────────────────────────────────────

func TestBatchTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/batch/task", r.URL.Path)

		var req struct {
			Update []models.Task `json:"update"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Update, 1)
		assert.Equal(t, "t1", req.Update[0].ID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id2etag": {"t1": "e2"}, "id2error": {}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.BatchTask(context.Background(), models.BatchRequest{
		Update: []any{models.Task{ID: "t1", ProjectID: "p1", Title: "Mop floor"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "e2", got.ID2Etag["t1"])
	assert.Empty(t, got.ID2Error)
}

func TestBatchTag_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/batch/tag", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.BatchTag(context.Background(), models.BatchRequest{
		Add: []any{models.Tag{Name: "home"}},
	})

	require.NoError(t, err)
	assert.Empty(t, got.ID2Etag)
	assert.Empty(t, got.ID2Error)
}

func TestBatchFilter_WriteRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte("method not allowed"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.BatchFilter(context.Background(), models.BatchRequest{
		Add: []any{models.Filter{Name: "Urgent"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteRejected)
}

func TestBatchTask_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id2etag": {"t1": "e2"}, "id2error": {}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	fastRetries(a)

	got, err := a.BatchTask(context.Background(), models.BatchRequest{
		Update: []any{models.Task{ID: "t1"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "e2", got.ID2Etag["t1"])
}

func TestBatchTask_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	fastRetries(a)

	_, err := a.BatchTask(context.Background(), models.BatchRequest{
		Update: []any{models.Task{ID: "t1"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(maxAttempts), calls.Load())

	wait, ok := RetryAfter(err)
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, wait)
}

// ── task operations ──────────────────────────────────────────────────────────

func TestCreateTask_Materialized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/task", r.URL.Path)

		var task models.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		assert.Equal(t, "deadbeef", task.ID)
		assert.Equal(t, "Water plants", task.Title)

		task.Etag = "e1"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.CreateTask(context.Background(), models.Task{ID: "deadbeef", ProjectID: "p1", Title: "Water plants"})

	require.NoError(t, err)
	assert.Equal(t, "deadbeef", got.ID)
	assert.Equal(t, "e1", got.Etag)
}

func TestUpdateTask_ProjectQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/task/t1", r.URL.Path)
		assert.Equal(t, "p2", r.URL.Query().Get("projectId"))

		var task models.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		task.Etag = "e2"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.UpdateTask(context.Background(), models.Task{ID: "t1", ProjectID: "p2", Title: "Moved"})

	require.NoError(t, err)
	assert.Equal(t, "p2", got.ProjectID)
	assert.Equal(t, "e2", got.Etag)
}

func TestSetTaskParents_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/batch/taskParent", r.URL.Path)

		var parents []models.TaskParent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&parents))
		require.Len(t, parents, 1)
		assert.Equal(t, "t1", parents[0].ParentID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id2etag": {"t2": "e5"}, "id2error": {}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.SetTaskParents(context.Background(), []models.TaskParent{
		{TaskID: "t2", ProjectID: "p1", ParentID: "t1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "e5", got.ID2Etag["t2"])
}

func TestGetTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/task/t1", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("projectId"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Task{ID: "t1", ProjectID: "p1", Title: "Mop floor", Etag: "e1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTask(context.Background(), "t1", "p1")

	require.NoError(t, err)
	assert.Equal(t, "Mop floor", got.Title)
	assert.Equal(t, "e1", got.Etag)
}

func TestGetTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("task not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTask(context.Background(), "missing", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCompletedTasks_ProjectRange(t *testing.T) {
	from := models.NewTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	to := models.NewTime(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/project/p1/completed/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2026-01-01 00:00:00", q.Get("from"))
		assert.Equal(t, "2026-02-01 00:00:00", q.Get("to"))
		assert.Equal(t, "50", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "t3", "projectId": "p1", "title": "Done thing", "status": 2}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCompletedTasks(context.Background(), "p1", from, to, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Status)
}

func TestGetCompletedTasks_AllProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/project/all/completed/", r.URL.Path)

		// zero range must stay off the wire
		_, hasFrom := r.URL.Query()["from"]
		assert.False(t, hasFrom)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCompletedTasks(context.Background(), "", models.Time{}, models.Time{}, 100)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCompletedInAll_Range(t *testing.T) {
	from := models.NewTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/project/all/completedInAll/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2026-03-01 00:00:00", q.Get("from"))
		assert.Equal(t, "1200", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "t4", "status": 2}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCompletedInAll(context.Background(), from, models.Time{}, 1200)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t4", got[0].ID)
}

func TestGetCompletedByTags_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/tag/completedTask", r.URL.Path)

		var body struct {
			Tags  []string `json:"tags"`
			Token string   `json:"token"`
			Limit int      `json:"limit"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"errands"}, body.Tags)
		assert.Equal(t, 50, body.Limit)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "t5", "tags": ["errands"], "status": 2}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCompletedByTags(context.Background(), []string{"errands"}, 50, "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t5", got[0].ID)
}

func TestGetTrashedTasks_ListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/project/all/trash/pagination", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "t9", "title": "Old junk", "deleted": 1}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTrashedTasks(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t9", got[0].ID)
}

func TestGetTrashedTasks_PageShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tasks": [{"id": "t9", "title": "Old junk", "deleted": 1}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTrashedTasks(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t9", got[0].ID)
}

// ── projects ─────────────────────────────────────────────────────────────────

func TestGetProjectData_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/project/p1/data", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"project": {"id": "p1", "name": "Chores"},
			"tasks": [{"id": "t1", "projectId": "p1", "title": "Mop floor"}],
			"columns": [{"id": "c1", "projectId": "p1", "name": "Doing"}]
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetProjectData(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Chores", got.Project.Name)
	require.Len(t, got.Tasks, 1)
	require.Len(t, got.Columns, 1)
}

func TestCreateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/project", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Project{ID: "p1", Name: "Chores", Etag: "e1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateProject(context.Background(), models.Project{Name: "Chores"})

	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "e1", got.Etag)
}

func TestUpdateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v2/project/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Project{ID: "p1", Name: "Chores v2", Etag: "e2"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateProject(context.Background(), models.Project{ID: "p1", Name: "Chores v2"})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "e2", got.Etag)
}

func TestUpdateProject_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateProject(context.Background(), models.Project{ID: "p1", Name: "Chores v2"})

	// accepted without a body: the caller has to refetch
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/project/p1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteProject(context.Background(), "p1")

	require.NoError(t, err)
}

func TestCreateProjectGroup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/projectGroup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ProjectGroup{ID: "g1", Name: "Home", Etag: "e1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateProjectGroup(context.Background(), models.ProjectGroup{Name: "Home"})

	require.NoError(t, err)
	assert.Equal(t, "g1", got.ID)
}

// ── tags ─────────────────────────────────────────────────────────────────────

func TestRenameTag_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v2/tag/rename", r.URL.Path)

		var body models.TagRename
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "home", body.Name)
		assert.Equal(t, "house", body.NewName)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RenameTag(context.Background(), models.TagRename{Name: "home", NewName: "house"})

	require.NoError(t, err)
}

func TestMergeTags_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v2/tag/merge", r.URL.Path)

		var body models.TagRename
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "chores", body.Name)
		assert.Equal(t, "home", body.NewName)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.MergeTags(context.Background(), models.TagRename{Name: "chores", NewName: "home"})

	require.NoError(t, err)
}

func TestDeleteTag_EscapesName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/tag/my%20tag", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteTag(context.Background(), "my tag")

	require.NoError(t, err)
}

// ── columns ──────────────────────────────────────────────────────────────────

func TestGetColumns_WrappedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/column", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("from"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"columns": [{"id": "c1", "projectId": "p1", "name": "Doing"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetColumns(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Doing", got[0].Name)
}

func TestGetProjectColumns_ListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/column/project/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "c1", "projectId": "p1", "name": "Doing"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetProjectColumns(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestSaveColumn_Receipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/column", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id2etag": {"c1": "e1"}, "id2error": {}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SaveColumn(context.Background(), models.Column{ID: "c1", ProjectID: "p1", Name: "Doing"})

	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID2Etag["c1"])
}

// ── habits ───────────────────────────────────────────────────────────────────

func TestGetHabits_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/habits", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "h1", "name": "Stretch", "status": 0}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetHabits(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Stretch", got[0].Name)
}

func TestQueryHabitCheckins_FlatList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/habitCheckins/query", r.URL.Path)

		var q models.HabitCheckinQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, []string{"h1"}, q.HabitIDs)

		// older API revision: a flat list instead of the keyed map
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"habitId": "h1", "checkinStamp": "20260820", "status": 2, "value": 1}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.QueryHabitCheckins(context.Background(), models.HabitCheckinQuery{HabitIDs: []string{"h1"}})

	require.NoError(t, err)
	require.Len(t, got.Checkins["h1"], 1)
	assert.Equal(t, "20260820", got.Checkins["h1"][0].CheckinStamp)
}

func TestBatchCheckin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/habits/batch", r.URL.Path)

		var body models.HabitCheckinBatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Checkins, 1)
		assert.Equal(t, "h1", body.Checkins[0].HabitID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.BatchCheckin(context.Background(), models.HabitCheckinBatch{
		Checkins: []models.HabitCheckin{{HabitID: "h1", CheckinStamp: "20260820", Status: 2}},
	})

	require.NoError(t, err)
}

// ── user ─────────────────────────────────────────────────────────────────────

func TestGetUserStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/user/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId": "u1", "username": "alice@example.com", "inboxId": "inbox-u1", "pro": true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetUserStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.Pro)
}

// ── search ───────────────────────────────────────────────────────────────────

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/search/all", r.URL.Path)
		assert.Equal(t, "mop", r.URL.Query().Get("keywords"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tasks": [{"id": "t1", "title": "Mop floor"}], "tags": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Search(context.Background(), "mop")

	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Mop floor", got.Tasks[0].Title)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://api.ticktick.com", "https://api.ticktick.com", false},
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "api.ticktick.com", "https://api.ticktick.com", false},
		{"trailing slash", "https://api.ticktick.com/", "https://api.ticktick.com", false},
		{"surrounding spaces", "  https://api.ticktick.com  ", "https://api.ticktick.com", false},
		{"empty", "", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// ── parseRetryAfter ──────────────────────────────────────────────────────────

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"missing", "", 0},
		{"seconds", "30", 30 * time.Second},
		{"zero", "0", 0},
		{"negative", "-5", 0},
		{"http date is no hint", "Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetryAfter(tt.raw))
		})
	}
}
