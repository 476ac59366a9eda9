package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrBadPostalCode = errors.New("postal code must be 5 characters")

// PostalLookup resolves a postal code to a place name to prefill the city
// field. It is best-effort: callers log failures and leave the field alone.
// Attempts are bounded with a fixed wait between them; the last attempt's
// error propagates.
type PostalLookup struct {
	BaseURL string
	Country string
	Client  *http.Client
	Retries int
	Delay   time.Duration
}

func NewPostalLookup(baseURL string) *PostalLookup {
	return &PostalLookup{
		BaseURL: baseURL,
		Country: "mx",
		Client:  &http.Client{Timeout: 5 * time.Second},
		Retries: 2,
		Delay:   1500 * time.Millisecond,
	}
}

type postalResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
	} `json:"places"`
}

// PlaceName fetches the place name for a 5-character postal code.
func (l *PostalLookup) PlaceName(code string) (string, error) {
	if len(code) != 5 {
		return "", ErrBadPostalCode
	}

	retries := l.Retries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		if i > 0 && l.Delay > 0 {
			time.Sleep(l.Delay)
		}
		name, err := l.fetch(code)
		if err == nil {
			return name, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (l *PostalLookup) fetch(code string) (string, error) {
	resp, err := l.Client.Get(fmt.Sprintf("%s/%s/%s", l.BaseURL, l.Country, url.PathEscape(code)))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("postal lookup: status %d", resp.StatusCode)
	}

	var body postalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Places) == 0 {
		return "", errors.New("postal lookup: no places in response")
	}
	return body.Places[0].PlaceName, nil
}
