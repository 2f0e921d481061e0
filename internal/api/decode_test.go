package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/mobil-koeln/irail-cli/internal/testutil"
)

func TestDetectCharset(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"application/json", "utf-8"},
		{"application/json; charset=UTF-8", "utf-8"},
		{"application/json; charset=ISO-8859-1", "iso-8859-1"},
		{`text/plain; charset="windows-1252"`, "windows-1252"},
		{"", "utf-8"},
		{";;;", "utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			testutil.AssertEqual(t, DetectCharset(tt.contentType), tt.want)
		})
	}
}

func TestDecodeCharset_Latin1(t *testing.T) {
	// "Liège" in ISO-8859-1
	body := []byte{'L', 'i', 0xe8, 'g', 'e'}
	got, err := DecodeCharset(body, "iso-8859-1")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, string(got), "Liège")
}

func TestDecodeCharset_StripsBOM(t *testing.T) {
	got, err := DecodeCharset([]byte("\xef\xbb\xbf{}"), "utf-8")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, string(got), "{}")
}

func TestDecodeCharset_Unknown(t *testing.T) {
	_, err := DecodeCharset([]byte("{}"), "x-martian")
	testutil.AssertError(t, err)
}

func TestDocument_Lookup(t *testing.T) {
	doc := Document{"Station": []byte(`[1, 2]`)}

	var got []int
	testutil.AssertNil(t, doc.Lookup("station", &got))
	testutil.AssertLen(t, got, 2)

	err := doc.Lookup("connection", &got)
	le := testutil.AssertErrorAs[*LookupError](t, err)
	testutil.AssertEqual(t, le.Key, "connection")
	testutil.AssertErrorIs(t, err, ErrNoResults)
}

func TestDocument_LookupWrongShape(t *testing.T) {
	doc := Document{"station": []byte(`"not a list"`)}
	var got []int
	err := doc.Lookup("station", &got)
	testutil.AssertErrorAs[*DecodeError](t, err)
}

func TestDecoder_Get(t *testing.T) {
	ms := testutil.NewJSONServer("application/json; charset=utf-8", []byte(testutil.SampleStationsResponse))
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "test-agent", nil)
	doc, err := d.Get(context.Background(), ms.URL+"/stations/", nil)
	testutil.AssertNil(t, err)

	_, ok := doc["station"]
	testutil.AssertTrue(t, ok)

	req := ms.LastRequest()
	testutil.AssertEqual(t, req.Header.Get("Accept"), "application/json")
	testutil.AssertEqual(t, req.Header.Get("User-Agent"), "test-agent")
	testutil.AssertTrue(t, req.Header.Get("X-Request-ID") != "")
}

func TestDecoder_HeaderOverride(t *testing.T) {
	ms := testutil.NewJSONServer("application/json", []byte(`{}`))
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), ms.URL, map[string]string{"Accept": "application/ld+json"})
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, ms.LastRequest().Header.Get("Accept"), "application/ld+json")
}

func TestDecoder_Latin1Body(t *testing.T) {
	body := append([]byte(`{"name":"Li`), 0xe8, 'g', 'e', '"', '}')
	ms := testutil.NewJSONServer("application/json; charset=ISO-8859-1", body)
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	doc, err := d.Get(context.Background(), ms.URL, nil)
	testutil.AssertNil(t, err)

	var name string
	testutil.AssertNil(t, doc.Lookup("name", &name))
	testutil.AssertEqual(t, name, "Liège")
}

func TestDecoder_InvalidJSON(t *testing.T) {
	ms := testutil.NewJSONServer("application/json", []byte(`<html>maintenance</html>`))
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), ms.URL, nil)
	de := testutil.AssertErrorAs[*DecodeError](t, err)
	testutil.AssertEqual(t, de.Charset, "utf-8")

	_, err = d.Fetch(context.Background(), ms.URL, nil)
	testutil.AssertErrorAs[*DecodeError](t, err)
}

func TestDecoder_UnknownCharset(t *testing.T) {
	ms := testutil.NewJSONServer("application/json; charset=x-martian", []byte(`{}`))
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), ms.URL, nil)
	de := testutil.AssertErrorAs[*DecodeError](t, err)
	testutil.AssertEqual(t, de.Charset, "x-martian")
}

func TestDecoder_HTTPError(t *testing.T) {
	ms := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(testutil.SampleErrorResponse))
	})
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), ms.URL+"/connections/", nil)
	apiErr := testutil.AssertErrorAs[*APIError](t, err)
	testutil.AssertEqual(t, apiErr.StatusCode, 404)
	testutil.AssertEqual(t, apiErr.Endpoint, "/connections/")
	testutil.AssertEqual(t, apiErr.Message, "Could not find station Nowhere")
	testutil.AssertContains(t, err.Error(), "Could not find station Nowhere")
	testutil.AssertErrorIs(t, err, ErrNotFound)
}

func TestDecoder_HTTPErrorWithoutMessage(t *testing.T) {
	ms := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})
	defer ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), ms.URL+"/stations/", nil)
	apiErr := testutil.AssertErrorAs[*APIError](t, err)
	testutil.AssertEqual(t, apiErr.Message, "")
	testutil.AssertContains(t, apiErr.Status, "502")
	testutil.AssertErrorIs(t, err, ErrServerError)
}

func TestDecoder_ConnectionRefused(t *testing.T) {
	ms := testutil.NewJSONServer("application/json", []byte(`{}`))
	url := ms.URL
	ms.Close()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(context.Background(), url, nil)
	re := testutil.AssertErrorAs[*RequestError](t, err)
	testutil.AssertEqual(t, re.URL, url)
	testutil.AssertFalse(t, re.Timeout)
}

func TestDecoder_CancelledContext(t *testing.T) {
	ms := testutil.NewJSONServer("application/json", []byte(`{}`))
	defer ms.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDecoder(&http.Client{}, "", nil)
	_, err := d.Get(ctx, ms.URL, nil)
	testutil.AssertErrorAs[*RequestError](t, err)
}
