package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tbourn/platform-dashboard/internal/services"
)

func names(resp ListPlatformsResponse) []string {
	out := make([]string, 0, len(resp.Platforms))
	for _, p := range resp.Platforms {
		out = append(out, p.Name)
	}
	return out
}

func TestListPlatforms_FiltersAndETag(t *testing.T) {
	api := newTestAPI(t)

	w := api.get("/platforms")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	all := decode[ListPlatformsResponse](t, w)
	if diff := cmp.Diff([]string{"Bubble", "Webflow", "OutSystems"}, names(all)); diff != "" {
		t.Fatalf("catalog order mismatch (-want +got):\n%s", diff)
	}
	if all.Count != 3 || all.Message != "" {
		t.Fatalf("unexpected envelope: count=%d msg=%q", all.Count, all.Message)
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	w = api.do(http.MethodGet, "/platforms", nil, map[string]string{"If-None-Match": etag})
	if w.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", w.Code)
	}

	// A different filter over the same catalog does not revalidate.
	w = api.do(http.MethodGet, "/platforms?os=Windows", nil, map[string]string{"If-None-Match": etag})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a different filter, got %d", w.Code)
	}
	if got := names(decode[ListPlatformsResponse](t, w)); !cmp.Equal(got, []string{"OutSystems"}) {
		t.Fatalf("os filter: %v", got)
	}

	w = api.get("/platforms?min_speed=88&min_maintenance=90")
	if got := names(decode[ListPlatformsResponse](t, w)); !cmp.Equal(got, []string{"Webflow"}) {
		t.Fatalf("threshold filter: %v", got)
	}
}

func TestListPlatforms_EmptyAndInvalid(t *testing.T) {
	api := newTestAPI(t)

	w := api.get("/platforms?min_speed=99")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	resp := decode[ListPlatformsResponse](t, w)
	if resp.Count != 0 || resp.Platforms == nil || resp.Message != msgNoPlatforms {
		t.Fatalf("unexpected empty response: %+v", resp)
	}

	expectError(t, api.get("/platforms?min_speed=150"), http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, api.get("/platforms?min_accuracy=fast"), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestExportPlatformsCSV(t *testing.T) {
	api := newTestAPI(t)

	w := api.get("/platforms/export.csv?os=Web")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "platform_comparison.csv") {
		t.Fatalf("content-disposition=%q", cd)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Platform,Operating_System,Speed_Score,Accuracy_Score,Maintenance_Score,Price_Range,Features" {
		t.Fatalf("header=%q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Bubble,Web-based,85,90,88,$25-299/mo,") {
		t.Fatalf("row=%q", lines[1])
	}
}

func TestListOSOptions(t *testing.T) {
	api := newTestAPI(t)

	resp := decode[OSOptionsResponse](t, api.get("/platforms/os"))
	if len(resp.Options) == 0 || resp.Options[0] != "All" {
		t.Fatalf("All must come first: %v", resp.Options)
	}
	joined := strings.Join(resp.Options, "|")
	for _, want := range []string{"Web-based", "Windows", "Linux"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %v", want, resp.Options)
		}
	}
}

func TestTopPlatforms(t *testing.T) {
	api := newTestAPI(t)

	resp := decode[TopPlatformsResponse](t, api.get("/platforms/top?metric=speed&n=2"))
	got := []string{}
	for _, p := range resp.Platforms {
		got = append(got, p.Name)
	}
	if diff := cmp.Diff([]string{"OutSystems", "Webflow"}, got); diff != "" {
		t.Fatalf("top speed (-want +got):\n%s", diff)
	}

	expectError(t, api.get("/platforms/top?metric=price"), http.StatusBadRequest, ErrCodeUnknownMetric)
	expectError(t, api.get("/platforms/top?n=0"), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSearchPlatforms(t *testing.T) {
	api := newTestAPI(t)

	expectError(t, api.get("/platforms/search?q=%20"), http.StatusBadRequest, ErrCodeBadRequest)

	resp := decode[SearchResponse](t, api.get("/platforms/search?q=cms+hosting"))
	if len(resp.Results) == 0 || resp.Results[0].Name != "Webflow" {
		t.Fatalf("expected Webflow first: %+v", resp.Results)
	}

	resp = decode[SearchResponse](t, api.get("/platforms/search?q=blockchain"))
	if len(resp.Results) != 0 || resp.Message == "" {
		t.Fatalf("expected empty result with message: %+v", resp)
	}
}

func TestComparePlatforms(t *testing.T) {
	api := newTestAPI(t)

	w := api.get("/platforms/compare?a=Bubble&b=Webflow")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	cmpResp := decode[services.Comparison](t, w)
	if cmpResp.A.Name != "Bubble" || cmpResp.B.Name != "Webflow" || len(cmpResp.Metrics) != 3 {
		t.Fatalf("unexpected comparison: %+v", cmpResp)
	}
	if cmpResp.Metrics[0].Diff != -5 {
		t.Fatalf("speed diff=%v want -5", cmpResp.Metrics[0].Diff)
	}

	expectError(t, api.get("/platforms/compare?a=Bubble"), http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, api.get("/platforms/compare?a=Bubble&b=Bubble"), http.StatusBadRequest, ErrCodeSamePlatform)
	expectError(t, api.get("/platforms/compare?a=Bubble&b=Retool"), http.StatusNotFound, ErrCodeNotFound)
}

func TestGetPlatform(t *testing.T) {
	api := newTestAPI(t)

	w := api.get("/platforms/Webflow")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	d := decode[services.PlatformDetails](t, w)
	if d.Platform.Name != "Webflow" || d.AverageScore != 90 {
		t.Fatalf("unexpected details: %+v", d)
	}
	if diff := cmp.Diff([]string{"Visual Design", "CMS", "Hosting"}, d.Features); diff != "" {
		t.Fatalf("features (-want +got):\n%s", diff)
	}
	if d.ReviewCount != 0 {
		t.Fatalf("review_count=%d", d.ReviewCount)
	}

	expectError(t, api.get("/platforms/Retool"), http.StatusNotFound, ErrCodeNotFound)
}
