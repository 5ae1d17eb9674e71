package middlewares

import (
	"encoding/json"
	"net/http"
	"time"

	Config "authorization-engine/config"
	"authorization-engine/model"
	"authorization-engine/utility"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"
	"authorization-engine/utility/response"
)

var apiResponse = response.New()

// Middleware ... Middleware struct
type Middleware struct {
	config Config.Data
	next   http.HandlerFunc
}

// NewMiddleware ... Creates a middleware instance
func NewMiddleware(config Config.Data, handler http.HandlerFunc) *Middleware {
	return &Middleware{config, handler}
}

// Build ... Build midlleware functions
func (m *Middleware) Build() http.HandlerFunc {
	return m.next
}

// LogAPIRequests ... Logs every incoming request
func (m *Middleware) LogAPIRequests() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		logger.Info("Incoming request from : %s with IP : %s to : %s", requestReader.UserAgent(), utility.GetIPAdress(requestReader), requestReader.URL.Path)
		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.config, nextHandler}
}

// ValidateAuthToken ... Validates the service token on the request and checks
// it carries the permission the route demands
func (m *Middleware) ValidateAuthToken(permission string) *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {

		authToken := requestReader.Header.Get(constants.X_AUTH_TOKEN)
		if authToken == "" {
			writeAuthError(responseWriter, errorcode.EMPTY_AUTH_KEY)
			return
		}

		tokenClaims := model.TokenClaims{}
		if err := utility.VerifyJWT(authToken, m.config, &tokenClaims); err != nil {
			logger.Error("Auth token verification failed : %s", err)
			writeAuthError(responseWriter, errorcode.INVALID_AUTH_TOKEN)
			return
		}

		if tokenClaims.TokenType != "SERVICE" {
			writeAuthError(responseWriter, errorcode.INVALID_TOKENTYPE)
			return
		}

		if !hasPermission(tokenClaims.Permissions, permission) {
			writeAuthError(responseWriter, errorcode.INVALID_PERMISSION)
			return
		}

		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.config, nextHandler}
}

// Timeout ... Cuts off requests that exceed the configured deadline
func (m *Middleware) Timeout(duration time.Duration) *Middleware {
	handler := http.TimeoutHandler(m.next, duration, "Request timed out")
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		handler.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.config, nextHandler}
}

func hasPermission(grantedPermissions []string, permission string) bool {
	for _, granted := range grantedPermissions {
		if granted == permission {
			return true
		}
	}
	return false
}

func writeAuthError(responseWriter http.ResponseWriter, message string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(responseWriter).Encode(apiResponse.PlainError(errorcode.INPUT_ERR_CODE, message))
}
