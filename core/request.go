package core

import (
	"fmt"
	"net/http"
)

// UserAgent is sent with every request mcl makes
const UserAgent = "mcl-launcher/mcl"

// GetWithUA makes a GET request with the mcl user agent, failing on any non-2xx response
func GetWithUA(url string, contentType string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", contentType)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("request to %s failed: %s", url, res.Status)
	}
	return res, nil
}
