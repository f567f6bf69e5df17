package models

// Product is a catalog entry. The catalog is static and compiled in; there
// is no inventory management.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	PriceCents       int64    `json:"priceCents"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Category         string   `json:"category"`
	Featured         bool     `json:"featured"`
	Tags             []string `json:"tags"`
}

// Products is the full storefront catalog, in display order.
var Products = []Product{
	{
		ID:               "1",
		Name:             "Classic Butter",
		Slug:             "classic-butter",
		PriceCents:       899,
		ShortDescription: "Pure, creamy perfection crafted in small batches.",
		FullDescription:  "Our Classic Butter begins with the finest cream, slowly churned in small batches and lightly salted with fleur de sel. Simple, pure, and unforgettable.",
		Category:         "butter",
		Featured:         true,
		Tags:             []string{"classic", "salted", "everyday"},
	},
	{
		ID:               "2",
		Name:             "Miso Butter",
		Slug:             "miso-butter",
		PriceCents:       1199,
		ShortDescription: "Umami-rich miso meets golden, cultured butter.",
		FullDescription:  "Aged white miso from a family-owned Japanese producer blended into house-churned butter. Deeply savory, with notes of caramel and fermented grain.",
		Category:         "butter",
		Featured:         true,
		Tags:             []string{"umami", "savory", "japanese"},
	},
	{
		ID:               "3",
		Name:             "Herb Butter",
		Slug:             "herb-butter",
		PriceCents:       1099,
		ShortDescription: "Garden-fresh herbs folded into silky compound butter.",
		FullDescription:  "Handpicked chives, flat-leaf parsley, tarragon, and a whisper of garlic folded into freshly churned butter. Each log is rolled by hand and wrapped in parchment.",
		Category:         "butter",
		Featured:         true,
		Tags:             []string{"herbs", "garlic", "fresh"},
	},
	{
		ID:               "4",
		Name:             "Chimichurri Butter",
		Slug:             "chimichurri-butter",
		PriceCents:       1299,
		ShortDescription: "Bold Argentinian chimichurri captured in butter form.",
		FullDescription:  "Fresh oregano, parsley, red wine vinegar, garlic, and a kick of red pepper flakes blended into cultured butter. The perfect companion for grilled meats.",
		Category:         "butter",
		Featured:         false,
		Tags:             []string{"spicy", "herbs", "argentinian"},
	},
	{
		ID:               "5",
		Name:             "Berry Butter",
		Slug:             "berry-butter",
		PriceCents:       1099,
		ShortDescription: "Sweet mixed berry swirled into our signature butter.",
		FullDescription:  "A seasonal blend of strawberries, blueberries, and blackberries simmered with raw honey and lemon zest, folded into freshly churned butter.",
		Category:         "butter",
		Featured:         false,
		Tags:             []string{"sweet", "fruit", "breakfast"},
	},
	{
		ID:               "6",
		Name:             "Cinnamon Butter",
		Slug:             "cinnamon-butter",
		PriceCents:       999,
		ShortDescription: "Warm Ceylon cinnamon and honey-kissed butter.",
		FullDescription:  "True Ceylon cinnamon blended with local wildflower honey into slowly churned butter. A hug in butter form.",
		Category:         "butter",
		Featured:         true,
		Tags:             []string{"sweet", "cinnamon", "honey", "breakfast"},
	},
	{
		ID:               "7",
		Name:             "Cultured Buttermilk",
		Slug:             "cultured-buttermilk",
		PriceCents:       799,
		ShortDescription: "Rich, tangy traditionally cultured buttermilk.",
		FullDescription:  "The liquid gold left behind from our butter-churning process, slowly cultured with live active cultures for 24 hours. Buttermilk as grandmother knew it.",
		Category:         "dairy",
		Featured:         true,
		Tags:             []string{"tangy", "cultured", "traditional"},
	},
	{
		ID:               "8",
		Name:             "Ranch Dressing",
		Slug:             "ranch-dressing",
		PriceCents:       999,
		ShortDescription: "Homestyle ranch made with fresh herbs and buttermilk.",
		FullDescription:  "Made fresh with our own cultured buttermilk, real mayonnaise, fresh dill, chives, parsley, and a careful balance of garlic and onion.",
		Category:         "dressing",
		Featured:         false,
		Tags:             []string{"creamy", "herbs", "versatile"},
	},
}

// GetProductByID returns the catalog entry with the given id, or nil.
func GetProductByID(id string) *Product {
	for i := range Products {
		if Products[i].ID == id {
			return &Products[i]
		}
	}
	return nil
}

// GetProductBySlug returns the catalog entry with the given slug, or nil.
func GetProductBySlug(slug string) *Product {
	for i := range Products {
		if Products[i].Slug == slug {
			return &Products[i]
		}
	}
	return nil
}

// GetRelatedProducts returns up to count products related to p: same
// category first, backfilled from other categories when the category has
// too few items. The product itself is never included.
func GetRelatedProducts(p *Product, count int) []Product {
	related := make([]Product, 0, count)
	for _, other := range Products {
		if len(related) == count {
			return related
		}
		if other.ID != p.ID && other.Category == p.Category {
			related = append(related, other)
		}
	}
	for _, other := range Products {
		if len(related) == count {
			break
		}
		if other.ID != p.ID && other.Category != p.Category {
			related = append(related, other)
		}
	}
	return related
}
