package providers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
)

const (
	Reloadly = "RELOADLY"
)

// BaseProvider contains common fields and methods
type BaseProvider struct {
	Name   string
	Client *http.Client
	Logger *logging.Logger
}

// Request Processing
func (p *BaseProvider) MakeRequest(method, url string, body interface{}, extraHeaders map[string]string) (*http.Response, error) {

	var req *http.Request
	var err error

	p.Logger.WithFields(map[string]interface{}{
		"provider": p.Name,
		"method":   method,
		"url":      url,
	}).Info("External Request")

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		req, err = http.NewRequest(method, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, err
		}
	} else {
		req, err = http.NewRequest(method, url, nil)
	}

	if err != nil {
		return nil, err
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	// Allows for overwriting pre-set keys
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	// Make the request
	return p.Client.Do(req)
}
