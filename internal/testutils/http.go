package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite sends requests straight into a gin engine
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a suite around an empty engine in test mode.
// Callers register the handlers under test themselves.
func SetupHTTPTest() *HTTPTestSuite {
	return NewHTTPTestSuite(gin.New())
}

// NewHTTPTestSuite wraps a fully configured router, such as the one built
// by routes.SetupRoutes
func NewHTTPTestSuite(router *gin.Engine) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: router}
}

// MakeRequest sends body encoded as JSON. A nil body sends no payload.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		payload = bytes.NewReader(encoded)
	}
	return suite.send(method, url, payload, headers)
}

// MakeRawRequest sends body verbatim as a JSON request. Used for payloads
// that must not be re-encoded, like malformed or partial documents.
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.send(method, url, strings.NewReader(body), nil)
}

func (suite *HTTPTestSuite) send(method, url string, payload io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, payload)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse checks the status and decodes the body into target
// when target is non-nil
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	AssertSuccessResponse(t, recorder, expectedStatus)
	if target != nil {
		ParseJSONResponse(t, recorder, target)
	}
}

// AssertErrorResponse checks the status and that the "error" field contains
// expectedMessage. An empty message only checks the shape.
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Error string `json:"error"`
	}
	ParseJSONResponse(t, recorder, &body)
	assert.NotEmpty(t, body.Error)
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// AssertSuccessResponse checks the status and the JSON content type
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
}

// ParseJSONResponse decodes the recorded body into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target), "body: %s", recorder.Body.String())
}
