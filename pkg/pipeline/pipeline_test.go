package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/solrun/vegakort/pkg/roadgraph"
)

type fakeRoads struct {
	fc  *geojson.FeatureCollection
	err error
}

func (f *fakeRoads) FetchRoads(ctx context.Context, refresh bool) (*geojson.FeatureCollection, error) {
	return f.fc, f.err
}

type fakeCounts struct {
	obs []roadgraph.Observation
	err error
}

func (f *fakeCounts) TrafficCounts(ctx context.Context, refresh bool) ([]roadgraph.Observation, error) {
	return f.obs, f.err
}

func sampleCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, geom := range []orb.LineString{
		{{0, 0}, {10, 0}},
		{{10, 0}, {20, 0}},
	} {
		f := geojson.NewFeature(geom)
		f.Properties[roadgraph.RoadTypeProperty] = "Stofnvegur"
		fc.Append(f)
	}
	return fc
}

func TestRun(t *testing.T) {
	p := &Pipeline{Roads: &fakeRoads{fc: sampleCollection()}}

	g, err := p.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.EdgeCount() != 2 || g.NodeCount() != 3 {
		t.Errorf("got %d edges, %d nodes, want 2, 3", g.EdgeCount(), g.NodeCount())
	}
}

func TestRunAttachTraffic(t *testing.T) {
	p := &Pipeline{
		Roads: &fakeRoads{fc: sampleCollection()},
		Counts: &fakeCounts{obs: []roadgraph.Observation{
			{Position: orb.Point{5, 1}, Counts: roadgraph.VolumeCounts{Today: 77}},
		}},
	}

	g, err := p.Run(context.Background(), Options{AttachTraffic: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	e, ok := g.Edge(orb.Point{0, 0}, orb.Point{10, 0})
	if !ok {
		t.Fatal("edge missing")
	}
	if e.Traffic == nil || e.Traffic.Today != 77 {
		t.Errorf("traffic = %+v, want Today=77", e.Traffic)
	}
}

func TestRunAttachTrafficWithoutSource(t *testing.T) {
	p := &Pipeline{Roads: &fakeRoads{fc: sampleCollection()}}
	if _, err := p.Run(context.Background(), Options{AttachTraffic: true}); err == nil {
		t.Fatal("Run succeeded without a counter source")
	}
}

func TestRunSavesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	p := &Pipeline{Roads: &fakeRoads{fc: sampleCollection()}}

	var logged int
	_, err := p.Run(context.Background(), Options{
		Output: path,
		Logger: func(string, ...any) { logged++ },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
	if logged == 0 {
		t.Error("logger never called")
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("Roads", func(t *testing.T) {
		p := &Pipeline{Roads: &fakeRoads{err: boom}}
		if _, err := p.Run(context.Background(), Options{}); !errors.Is(err, boom) {
			t.Fatalf("Run error = %v, want %v", err, boom)
		}
	})

	t.Run("Counts", func(t *testing.T) {
		p := &Pipeline{
			Roads:  &fakeRoads{fc: sampleCollection()},
			Counts: &fakeCounts{err: boom},
		}
		if _, err := p.Run(context.Background(), Options{AttachTraffic: true}); !errors.Is(err, boom) {
			t.Fatalf("Run error = %v, want %v", err, boom)
		}
	})
}
