package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mxmdgames/surfcast/internal/geocoding"
)

type fakeGeocoder struct {
	calls   int
	results []geocoding.Result
	err     error
}

func (f *fakeGeocoder) Search(ctx context.Context, query string) ([]geocoding.Result, error) {
	f.calls++
	return f.results, f.err
}

func newTestResolver(g Geocoder) *Resolver {
	return NewResolver(g, slog.New(slog.DiscardHandler))
}

func TestResolveCatalogTierSkipsGeocoder(t *testing.T) {
	geocoder := &fakeGeocoder{}
	resolver := newTestResolver(geocoder)

	results, err := resolver.Resolve(context.Background(), "Tamarindo")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected catalog matches for Tamarindo")
	}
	if results[0].Name != "Tamarindo" {
		t.Errorf("first result = %q, want Tamarindo", results[0].Name)
	}
	if geocoder.calls != 0 {
		t.Errorf("geocoder called %d times for a catalog query", geocoder.calls)
	}
}

func TestResolveCacheHitSkipsAllTiers(t *testing.T) {
	geocoder := &fakeGeocoder{
		results: []geocoding.Result{
			{Name: "Smallville Beach", Lat: 12.5, Lng: -80.25},
		},
	}
	resolver := newTestResolver(geocoder)

	first, err := resolver.Resolve(context.Background(), "smallville")
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), "smallville")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if geocoder.calls != 1 {
		t.Errorf("geocoder called %d times, want 1", geocoder.calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("cached results differ: %v vs %v", first, second)
	}
}

func TestResolveGeocoderFallback(t *testing.T) {
	geocoder := &fakeGeocoder{
		results: []geocoding.Result{
			{Name: "Obscure Cove", Lat: -33.5, Lng: 151.3},
		},
	}
	resolver := newTestResolver(geocoder)

	results, err := resolver.Resolve(context.Background(), "obscure cove")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	got := results[0]
	if got.Name != "Obscure Cove" || got.Coord.Lat != -33.5 || got.Coord.Lng != 151.3 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestResolveEmptyGeocoderResultIsCached(t *testing.T) {
	geocoder := &fakeGeocoder{}
	resolver := newTestResolver(geocoder)

	for i := 0; i < 2; i++ {
		results, err := resolver.Resolve(context.Background(), "zzyzx")
		if err != nil {
			t.Fatalf("Resolve %d: %v", i, err)
		}
		if len(results) != 0 {
			t.Fatalf("Resolve %d: got %d results, want 0", i, len(results))
		}
	}
	if geocoder.calls != 1 {
		t.Errorf("geocoder called %d times, want 1 (empty result should cache)", geocoder.calls)
	}
}

func TestResolveErrorIsNotCached(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("boom")}
	resolver := newTestResolver(geocoder)

	if _, err := resolver.Resolve(context.Background(), "zzyzx"); err == nil {
		t.Fatal("expected error from first Resolve")
	}

	geocoder.err = nil
	geocoder.results = []geocoding.Result{{Name: "Zzyzx Point", Lat: 35.1, Lng: -116.1}}

	results, err := resolver.Resolve(context.Background(), "zzyzx")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results after retry, want 1", len(results))
	}
	if geocoder.calls != 2 {
		t.Errorf("geocoder called %d times, want 2 (errors must not cache)", geocoder.calls)
	}
}
