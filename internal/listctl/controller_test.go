package listctl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/models"
)

func newTestController(t *testing.T, handler http.HandlerFunc) (*Controller[models.Appointment], *api.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, zap.NewNop())
	return New(client, Appointments(), zap.NewNop()), client
}

func TestLoadDecodesEnvelope(t *testing.T) {
	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"1","name":"Emma Johnson","status":"pending"}],"total":1}`))
	})

	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	items := ctl.Items()
	if len(items) != 1 || items[0].Name != "Emma Johnson" {
		t.Fatalf("unexpected items %+v", items)
	}
	if ctl.Loading() {
		t.Error("loading flag not reset after success")
	}
}

func TestLoadDecodesBareArray(t *testing.T) {
	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","status":"completed"},{"id":"2","status":"pending"}]`))
	})

	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ctl.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(ctl.Items()))
	}
}

func TestLoadNotFoundIsEmptyNotError(t *testing.T) {
	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	})

	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("404 should be benign, got %v", err)
	}
	if got := ctl.Items(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
	if ctl.Err() != "" {
		t.Errorf("404 should not surface an error message, got %q", ctl.Err())
	}
}

func TestLoadServerErrorKeepsPreviousCollection(t *testing.T) {
	fail := false
	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":[{"id":"1","status":"pending"}],"total":1}`))
	})

	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}

	fail = true
	if err := ctl.Load(context.Background()); err == nil {
		t.Fatal("expected an error from the failing load")
	}
	if len(ctl.Items()) != 1 {
		t.Errorf("previous collection should be retained on failure")
	}
	if ctl.Err() == "" {
		t.Error("expected a retry message")
	}
	if ctl.Loading() {
		t.Error("loading flag not reset after failure")
	}
}

func TestLoadUnauthorizedInvalidatesSession(t *testing.T) {
	ctl, client := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
	})

	invalidated := false
	client.OnUnauthorized(func() { invalidated = true })
	client.SetToken("stale-token", "Bearer")

	err := ctl.Load(context.Background())
	if !api.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if !invalidated {
		t.Error("401 must fire the session invalidation hook")
	}
	if client.HasToken() {
		t.Error("401 must clear the stored token")
	}
	if ctl.Err() == "" {
		t.Error("expected a re-authentication prompt message")
	}
}

// A response that resolves after a newer load has started must not
// overwrite the newer result.
func TestStaleLoadIsDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var n int

	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		n++
		if n == 1 {
			close(firstArrived)
			<-release
			w.Write([]byte(`{"data":[{"id":"old","status":"pending"}],"total":1}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"new","status":"pending"}],"total":1}`))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctl.Load(context.Background())
	}()

	<-firstArrived
	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	close(release)
	<-done

	items := ctl.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Fatalf("stale response overwrote the newer one: %+v", items)
	}
}

func TestFilteredViewUsesLoadedCollection(t *testing.T) {
	ctl, _ := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"1","name":"Emma Johnson","status":"completed"},
			{"id":"2","name":"Sarah Davis","status":"pending"}
		],"total":2}`))
	})
	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := ctl.FilteredView("emma", FilterAll, FilterAll)
	if len(got) != 1 || got[0].Name != "Emma Johnson" {
		t.Fatalf("expected Emma Johnson only, got %+v", got)
	}
}
