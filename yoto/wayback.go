package yoto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// waybackAPI is the snapshot availability endpoint. A variable so tests can
// point it at a local server.
var waybackAPI = "http://archive.org/wayback/available"

type waybackAvailability struct {
	ArchivedSnapshots struct {
		Closest *struct {
			URL       string `json:"url"`
			Available bool   `json:"available"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// WaybackURL returns the URL of the latest Wayback Machine snapshot of target.
func WaybackURL(ctx context.Context, client *http.Client, target string) (string, error) {
	if target == "" {
		return "", errors.New("no URL provided")
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, waybackAPI+"?url="+url.QueryEscape(target), nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var availability waybackAvailability
	if err := json.Unmarshal(body, &availability); err != nil {
		return "", err
	}

	closest := availability.ArchivedSnapshots.Closest
	if closest == nil || closest.URL == "" {
		return "", fmt.Errorf("no snapshot for %s", target)
	}
	return closest.URL, nil
}
