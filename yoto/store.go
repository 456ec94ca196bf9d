package yoto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yack-order/toyo-discord-bot/model"
	"github.com/yack-order/toyo-discord-bot/utils"
)

// ErrNoTags is returned when a store page's product carries no tags, which
// usually means the page is a placeholder for a delisted product.
var ErrNoTags = errors.New("no tags found on product")

// ReadStoreData fetches a storefront product page and projects its embedded
// product JSON into an ordered display record. When the live page has no
// usable payload the latest Wayback snapshot is tried exactly once before the
// error is terminal.
func ReadStoreData(ctx context.Context, client *http.Client, url string) (model.Record, error) {
	if client == nil {
		client = http.DefaultClient
	}

	target := url
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt == 1 {
			snapshot, err := WaybackURL(ctx, client, url)
			if err != nil {
				return nil, lastErr
			}
			target = snapshot
		}

		rec, err := readStoreOnce(ctx, client, url, target)
		if err == nil {
			return rec, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func readStoreOnce(ctx context.Context, client *http.Client, originalURL, fetchURL string) (model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	data, err := extractNextData(body)
	if err != nil {
		return nil, err
	}
	product := data.Props.PageProps.Product
	if product == nil || len(product.Tags) == 0 {
		return nil, ErrNoTags
	}

	return StoreRecord(originalURL, product), nil
}

// StoreRecord projects a product into the fields the store command shows.
// Most attributes ride in the product's tag list as "key: value" pairs.
func StoreRecord(url string, product *model.Product) model.Record {
	var (
		readBy, accent, language, author string
		ageMin, ageMax, clubCredits      string
		ids, contentTypes                []string
	)

	for _, tag := range product.Tags {
		switch {
		case strings.HasPrefix(tag, "read-by:"):
			readBy = strings.TrimSpace(tag[len("read-by:"):])
		case strings.HasPrefix(tag, "accent:"):
			accent = utils.TitleCase(strings.TrimSpace(tag[len("accent:"):]))
		case strings.HasPrefix(tag, "language:"):
			language = utils.TitleCase(strings.TrimSpace(tag[len("language:"):]))
		case strings.HasPrefix(tag, "content-id:"):
			ids = append(ids, strings.TrimSpace(tag[len("content-id:"):]))
		case strings.HasPrefix(tag, "author:"):
			author = utils.TitleCase(strings.TrimSpace(tag[len("author:"):]))
		case strings.HasPrefix(tag, "age-min:"):
			ageMin = strings.TrimSpace(tag[len("age-min:"):])
		case strings.HasPrefix(tag, "age-max:"):
			ageMax = strings.TrimSpace(tag[len("age-max:"):])
		case strings.HasPrefix(tag, "club-credits:"):
			clubCredits = strings.TrimSpace(tag[len("club-credits:"):])
		case strings.HasPrefix(tag, "content-type:"):
			contentTypes = append(contentTypes, strings.TrimSpace(tag[len("content-type:"):]))
		}
	}

	ageRange := ageMin + " - " + ageMax
	if len(product.AgeRange) >= 2 {
		ageRange = fmt.Sprintf("%d - %d", product.AgeRange[0], product.AgeRange[1])
	}

	title := "No title found"
	if product.Title != "" {
		title = strings.TrimSpace(product.Title)
	}
	price := "Discontinued"
	if product.Price != "" {
		price = strings.TrimSpace(product.Price)
	}
	description := "No descriptionMarkdown found"
	if product.DescriptionMarkdown != "" {
		description = strings.TrimSpace(product.DescriptionMarkdown)
	}
	artURL := "No images found"
	if len(product.Images) > 0 && product.Images[0].URL != "" {
		artURL = product.Images[0].URL
	}

	// The two letters after "https://" carry the storefront's geo region.
	geo := ""
	if len(url) >= 10 {
		geo = strings.ToUpper(url[8:10])
	}

	return model.Record{
		{Label: "Title", Value: title},
		{Label: "IDs", Value: fmt.Sprintf("%s(%d cards)", utils.JoinTrimmed(ids), len(ids))},
		{Label: "URL", Value: fmt.Sprintf("[[art](%s)] [geo: %s] <%s>", artURL, geo, url)},
		{Label: "Content_Types", Value: utils.JoinTrimmed(contentTypes)},
		{Label: "Age_Range", Value: ageRange},
		{Label: "Author", Value: author},
		{Label: "Read_By", Value: readBy},
		{Label: "Language", Value: fmt.Sprintf("%s (%s)", language, accent)},
		{Label: "Price", Value: fmt.Sprintf("%s(Club: %s credits)", price, clubCredits)},
		{Label: "Description", Value: description},
	}
}
