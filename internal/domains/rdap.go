package domains

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	rdapBaseURL     = "https://rdap.org/domain/"
	rdapTimeout     = 10 * time.Second
	lookupUserAgent = "JobShield/1.0"
)

// RDAPLookup resolves domain registration age through the public RDAP
// bootstrap service. It implements AgeLookup.
type RDAPLookup struct {
	client *http.Client
	base   string
}

// NewRDAPLookup creates a lookup with a sensible default timeout.
func NewRDAPLookup() *RDAPLookup {
	return &RDAPLookup{
		client: &http.Client{Timeout: rdapTimeout},
		base:   rdapBaseURL,
	}
}

type rdapResponse struct {
	Events []struct {
		Action string `json:"eventAction"`
		Date   string `json:"eventDate"`
	} `json:"events"`
}

// DomainAge fetches the domain's RDAP record and derives its age from the
// registration event. Missing records and unparseable dates are errors;
// callers treat them as "age unknown".
func (l *RDAPLookup) DomainAge(ctx context.Context, domain string) (*AgeInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.base+domain, nil)
	if err != nil {
		return nil, &LookupError{Domain: domain, Message: "build request", Cause: err}
	}
	req.Header.Set("User-Agent", lookupUserAgent)
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &LookupError{Domain: domain, Message: "rdap request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{Domain: domain, Message: fmt.Sprintf("rdap returned status %d", resp.StatusCode)}
	}

	var body rdapResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &LookupError{Domain: domain, Message: "decode rdap response", Cause: err}
	}

	for _, ev := range body.Events {
		if ev.Action != "registration" {
			continue
		}
		created, err := time.Parse(time.RFC3339, ev.Date)
		if err != nil {
			return nil, &LookupError{Domain: domain, Message: "parse registration date", Cause: err}
		}
		days := int(time.Since(created).Hours() / 24)
		return &AgeInfo{
			AgeDays:      days,
			AgeYears:     float64(days) / 365,
			CreationDate: created,
		}, nil
	}

	return nil, &LookupError{Domain: domain, Message: "no registration event in rdap record"}
}
