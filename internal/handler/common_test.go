package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type routeRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

func setupTestRouter(handlers ...routeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}
	return router
}

// create HTTP request with JSON body; strings are sent verbatim
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	var body []byte
	if s, ok := data.(string); ok {
		body = []byte(s)
	} else {
		body, _ = json.Marshal(data)
	}
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
