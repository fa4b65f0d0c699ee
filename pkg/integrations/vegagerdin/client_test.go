package vegagerdin

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations"
)

func TestCameras(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vefmyndavelar2014_1" {
			t.Errorf("path = %q, want /vefmyndavelar2014_1", r.URL.Path)
		}
		w.Write([]byte(`[
			{"Nafn": "Hellisheiði", "Slod": "http://example.is/hellisheidi.jpg", "Breidd": 64.02, "Lengd": -21.35},
			{"Nafn": "Holtavörðuheiði", "Slod": "http://example.is/holt.jpg", "Breidd": 65.08, "Lengd": -21.08}
		]`))
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL)
	cams, err := c.Cameras(context.Background(), false)
	if err != nil {
		t.Fatalf("Cameras: %v", err)
	}
	if len(cams) != 2 {
		t.Fatalf("cameras = %d, want 2", len(cams))
	}
	if cams[0].Name != "Hellisheiði" || cams[0].Latitude != 64.02 {
		t.Errorf("first camera = %+v", cams[0])
	}
}

func TestClosestCamera(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"Nafn": "South", "Slod": "http://example.is/s.jpg", "Breidd": 64.0, "Lengd": -21.0},
			{"Nafn": "North", "Slod": "http://example.is/n.jpg", "Breidd": 66.0, "Lengd": -18.0}
		]`))
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL)
	cam, err := c.ClosestCamera(context.Background(), 65.9, -18.2)
	if err != nil {
		t.Fatalf("ClosestCamera: %v", err)
	}
	if cam.Name != "North" {
		t.Errorf("camera = %q, want North", cam.Name)
	}
}

func TestClosestCameraEmptyRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL)
	if _, err := c.ClosestCamera(context.Background(), 64, -21); !errors.Is(err, integrations.ErrNotFound) {
		t.Fatalf("ClosestCamera error = %v, want ErrNotFound", err)
	}
}

func TestFetchImage(t *testing.T) {
	frame := []byte{0xff, 0xd8, 0xff, 0xe0} // JPEG magic
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(frame)
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL)
	data, err := c.FetchImage(context.Background(), &Camera{ImageURL: srv.URL + "/cam.jpg"})
	if err != nil {
		t.Fatalf("FetchImage: %v", err)
	}
	if !bytes.Equal(data, frame) {
		t.Errorf("image = %v, want %v", data, frame)
	}
}

func TestTrafficCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/umferd" {
			t.Errorf("path = %q, want /umferd", r.URL.Path)
		}
		w.Write([]byte(`[
			{
				"Breidd": 400000, "Lengd": 370000,
				"Umf15Min": 12, "UmfIDag": 3400,
				"UmfMan": 5000, "UmfThri": 5100, "UmfMid": 5200,
				"UmfFim": 5300, "UmfFos": 6000, "UmfLau": 4000, "UmfSun": 3500
			}
		]`))
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL)
	obs, err := c.TrafficCounts(context.Background(), false)
	if err != nil {
		t.Fatalf("TrafficCounts: %v", err)
	}
	if len(obs) != 1 {
		t.Fatalf("observations = %d, want 1", len(obs))
	}

	o := obs[0]
	if o.Position != (orb.Point{370000, 400000}) {
		t.Errorf("position = %v, want {lon lat} order", o.Position)
	}
	if o.Counts.FifteenMin != 12 || o.Counts.Today != 3400 {
		t.Errorf("counts = %+v", o.Counts)
	}
	if o.Counts.Friday != 6000 || o.Counts.Sunday != 3500 {
		t.Errorf("weekday counts = %+v", o.Counts)
	}
}
