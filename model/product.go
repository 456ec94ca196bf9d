package model

// Product mirrors the storefront product JSON embedded in a store page's
// __NEXT_DATA__ block under props.pageProps.product.
type Product struct {
	Title               string         `json:"title"`
	Handle              string         `json:"handle"`
	Price               string         `json:"price"`
	Description         string         `json:"description"`
	DescriptionMarkdown string         `json:"descriptionMarkdown"`
	Tags                []string       `json:"tags"`
	AgeRange            []int          `json:"ageRange"`
	Images              []ProductImage `json:"images"`
	IsBundle            bool           `json:"isBundle"`
}

type ProductImage struct {
	URL string `json:"url"`
}
