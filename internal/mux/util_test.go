package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		t.Errorf("expected status code %d, got %d", statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
