package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func prophecyRouter() *gin.Engine {
	h := &ProphecyHandler{now: func() time.Time { return fixedNow }}
	r := gin.New()
	r.GET("/api/prophecy", h.Get)
	return r
}

func getProphecy(t *testing.T, r *gin.Engine, query string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/prophecy"+query, nil)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	return w.Code, body
}

func TestGetProphecyExplicitSeed(t *testing.T) {
	r := prophecyRouter()
	code, body := getProphecy(t, r, "?seed=apples")

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["seed"] != "apples" {
		t.Errorf("seed = %v, want %q", body["seed"], "apples")
	}
	p, ok := body["prophecy"].(map[string]interface{})
	if !ok {
		t.Fatal("prophecy missing from response")
	}
	if p["doom_percent"] != float64(70) {
		t.Errorf("doom_percent = %v, want 70", p["doom_percent"])
	}
	if p["confidence"] != float64(71) {
		t.Errorf("confidence = %v, want 71", p["confidence"])
	}
	if body["predicted_display"] != "2046-06-12" {
		t.Errorf("predicted_display = %v, want %q", body["predicted_display"], "2046-06-12")
	}
}

func TestGetProphecyDeterministic(t *testing.T) {
	r := prophecyRouter()
	_, a := getProphecy(t, r, "?seed=apples&spoilers=true")
	_, b := getProphecy(t, r, "?seed=apples&spoilers=true")

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Errorf("same seed and clock produced different responses:\n%s\n%s", aj, bj)
	}
}

func TestGetProphecyDailyDefault(t *testing.T) {
	r := prophecyRouter()
	_, body := getProphecy(t, r, "")

	want := "Deniusth-Sun Jun 15 2025"
	if body["seed"] != want {
		t.Errorf("seed = %v, want daily default %q", body["seed"], want)
	}
	if body["character"] != "Deniusth" {
		t.Errorf("character = %v, want Deniusth", body["character"])
	}
}

func TestGetProphecyReseed(t *testing.T) {
	r := prophecyRouter()
	_, body := getProphecy(t, r, "?reseed=1")

	seed, _ := body["seed"].(string)
	if !strings.HasPrefix(seed, "Deniusth-") {
		t.Errorf("seed = %q, want Deniusth- prefix", seed)
	}
	if body["reseeded"] != true {
		t.Error("reseeded flag not set")
	}

	_, other := getProphecy(t, r, "?reseed=1")
	if other["seed"] == body["seed"] {
		t.Error("two reseeds produced the same seed")
	}
}

func TestGetProphecySpoilersOff(t *testing.T) {
	r := prophecyRouter()
	_, body := getProphecy(t, r, "?seed=apples&spoilers=false")

	if body["spoilers"] != false {
		t.Errorf("spoilers = %v, want false", body["spoilers"])
	}
	p := body["prophecy"].(map[string]interface{})
	want := "Duelist of Strings challenges a literal fate‑thread; becomes a metaphor and wanders off."
	if p["cause"] != want {
		t.Errorf("cause = %v, want %q", p["cause"], want)
	}
}

func TestGetProphecyCustomCharacter(t *testing.T) {
	r := prophecyRouter()
	_, body := getProphecy(t, r, "?character=Ryoka")

	if body["character"] != "Ryoka" {
		t.Errorf("character = %v, want Ryoka", body["character"])
	}
	if body["seed"] != "Ryoka-Sun Jun 15 2025" {
		t.Errorf("seed = %v, want Ryoka daily seed", body["seed"])
	}
}
