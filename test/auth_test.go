package test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
)

func (s *Suite) Test_SubmitOperation_rejectsMissingAuthToken() {
	submitRequest, _ := http.NewRequest("POST", "/queue/operations", bytes.NewBuffer([]byte("{}")))

	submitResponse := httptest.NewRecorder()
	s.Router.ServeHTTP(submitResponse, submitRequest)

	if submitResponse.Code != http.StatusUnauthorized {
		s.T().Errorf("Expected response code to be %d. Got %d\n", http.StatusUnauthorized, submitResponse.Code)
	}
}

func (s *Suite) Test_SubmitOperation_rejectsMalformedAuthToken() {
	submitRequest, _ := http.NewRequest("POST", "/queue/operations", bytes.NewBuffer([]byte("{}")))
	submitRequest.Header.Set("x-auth-token", "not-a-jwt")

	submitResponse := httptest.NewRecorder()
	s.Router.ServeHTTP(submitResponse, submitRequest)

	if submitResponse.Code != http.StatusUnauthorized {
		s.T().Errorf("Expected response code to be %d. Got %d\n", http.StatusUnauthorized, submitResponse.Code)
	}
}

func (s *Suite) Test_GetQueueItem_rejectsMissingAuthToken() {
	getRequest, _ := http.NewRequest("GET", "/queue/operations/AQ_20250101000000_ABCDEF", bytes.NewBuffer([]byte("")))

	getResponse := httptest.NewRecorder()
	s.Router.ServeHTTP(getResponse, getRequest)

	if getResponse.Code != http.StatusUnauthorized {
		s.T().Errorf("Expected response code to be %d. Got %d\n", http.StatusUnauthorized, getResponse.Code)
	}
}
