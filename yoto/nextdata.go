package yoto

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/yack-order/toyo-discord-bot/model"
)

// ErrNoJSON is returned when a page has no embedded __NEXT_DATA__ block.
var ErrNoJSON = errors.New("no JSON found in page")

var nextDataRe = regexp.MustCompile(`(?s)<script id="__NEXT_DATA__" type="application/json">(.*?)</script>`)

// nextData is the slice of the __NEXT_DATA__ payload the bot cares about.
type nextData struct {
	Props struct {
		PageProps struct {
			Product *model.Product `json:"product"`
			Card    *model.Card    `json:"card"`
		} `json:"pageProps"`
	} `json:"props"`
}

// extractNextData locates the __NEXT_DATA__ script block in raw HTML and
// decodes it.
func extractNextData(html []byte) (*nextData, error) {
	m := nextDataRe.FindSubmatch(html)
	if m == nil {
		return nil, ErrNoJSON
	}
	var data nextData
	if err := json.Unmarshal(m[1], &data); err != nil {
		return nil, err
	}
	return &data, nil
}
