package housing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/models"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

const testAccountID = "22222222-2222-2222-2222-222222222222"

const housingPage = `
<div class="interior-main-content col-md-6 col-md-push-3 md:mb-150">
  <h3>Assignment Information for Academic Year 2020 - 2021</h3>
  <h3>House Information - Harrison</h3>
  <div class="col-md-8">
    <p>403 Harrison  Bed space: a</p>
    <p>3910 Irving St  Philadelphia, PA 19104</p>
  </div>
</div>`

func setupTestApp(t *testing.T) (*fiber.App, *database.Memory, string) {
	t.Helper()

	store := database.NewMemory()
	account := &models.Account{ID: testAccountID, Username: "tester"}
	if err := store.CreateAccount(account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	token, err := auth.GenerateAccountToken(account.ID)
	if err != nil {
		t.Fatalf("GenerateAccountToken failed: %v", err)
	}

	app := fiber.New()
	SetupHousingRoutes(app, store)
	return app, store, token
}

func postForm(t *testing.T, app *fiber.App, token, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Account-Token", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func postJSON(t *testing.T, app *fiber.App, token, path string, payload interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-Token", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body
}

func TestSaveHousing(t *testing.T) {
	app, store, token := setupTestApp(t)

	resp := postForm(t, app, token, "/housing/", url.Values{"html": {housingPage}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["house"] != "Harrison" {
		t.Errorf("house = %v, want Harrison", body["house"])
	}
	if body["start"].(float64) != 2020 || body["end"].(float64) != 2021 {
		t.Errorf("years = %v-%v, want 2020-2021", body["start"], body["end"])
	}
	if body["outcome"] != "inserted" {
		t.Errorf("outcome = %v, want inserted", body["outcome"])
	}

	stored, err := store.HousingForYear(testAccountID, 2020)
	if err != nil {
		t.Fatalf("HousingForYear failed: %v", err)
	}
	if stored.Room != "403 Harrison" {
		t.Errorf("room = %q, want 403 Harrison", stored.Room)
	}
}

func TestSaveHousingParseFailure(t *testing.T) {
	app, _, token := setupTestApp(t)

	resp := postForm(t, app, token, "/housing/", url.Values{"html": {"<div>nothing useful</div>"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Unable to parse HTML." {
		t.Errorf("error = %v, want Unable to parse HTML.", body["error"])
	}
}

func TestGetHousingCurrentYear(t *testing.T) {
	app, store, token := setupTestApp(t)

	year := models.CurrentAcademicYear(time.Now())
	record := &models.HousingRecord{
		AccountID: testAccountID,
		House:     "Gregory",
		Room:      "210",
		Address:   "3909 Spruce St",
		StartYear: year,
		EndYear:   year + 1,
	}
	if _, err := store.InsertHousing(record); err != nil {
		t.Fatalf("InsertHousing failed: %v", err)
	}
	// A stale record must not shadow the current year.
	old := &models.HousingRecord{AccountID: testAccountID, House: "Harrison",
		Room: "403", Address: "3910 Irving St", StartYear: year - 1, EndYear: year}
	if _, err := store.InsertHousing(old); err != nil {
		t.Fatalf("InsertHousing failed: %v", err)
	}

	resp := getRequest(t, app, token, "/housing/")
	body := decodeBody(t, resp)
	result := body["result"].(map[string]interface{})
	if result["house"] != "Gregory" {
		t.Errorf("house = %v, want Gregory", result["house"])
	}
	if result["start"].(float64) != float64(year) {
		t.Errorf("start = %v, want %d", result["start"], year)
	}
}

func getRequest(t *testing.T, app *fiber.App, token, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Account-Token", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestGetHousingEmpty(t *testing.T) {
	app, _, token := setupTestApp(t)

	resp := getRequest(t, app, token, "/housing/")
	body := decodeBody(t, resp)
	if body["result"] != nil {
		t.Fatal("expected null result")
	}
}

func TestDeleteHousing(t *testing.T) {
	app, store, token := setupTestApp(t)

	for _, year := range []int{2019, 2020, 2021} {
		record := &models.HousingRecord{AccountID: testAccountID, OffCampus: true,
			StartYear: year, EndYear: year + 1}
		if _, err := store.InsertHousing(record); err != nil {
			t.Fatalf("InsertHousing failed: %v", err)
		}
	}

	resp := postForm(t, app, token, "/housing/delete", url.Values{})
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatal("expected success")
	}

	records, _ := store.HousingForAccount(testAccountID)
	if len(records) != 0 {
		t.Fatalf("stored %d records after delete, want 0", len(records))
	}
}

func TestSaveAllHousing(t *testing.T) {
	app, store, token := setupTestApp(t)

	payload := []map[string]interface{}{
		{"house": "Harrison", "room": "403", "address": "3910 Irving St", "start": 2019, "end": 2020},
		{"house": "Rodin", "room": "1201", "address": "3901 Locust Walk", "start": 2020, "end": 2021},
		{"house": "Broken"}, // no year: skipped
	}
	resp := postJSON(t, app, token, "/housing/all", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatal("expected success")
	}
	if body["skipped"].(float64) != 1 {
		t.Errorf("skipped = %v, want 1", body["skipped"])
	}
	results := body["results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	records, _ := store.HousingForAccount(testAccountID)
	if len(records) != 2 {
		t.Fatalf("stored %d records, want 2", len(records))
	}
}
