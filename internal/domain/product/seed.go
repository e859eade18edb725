// internal/domain/product/seed.go
package product

// DefaultCatalog is the handmade-goods catalog seeded into an empty database.
// Prices are in minor currency units.
func DefaultCatalog() []Product {
	return []Product{
		{
			SKU:         "HM-RATTAN01",
			Name:        "Woven Rattan Tote",
			Slug:        "woven-rattan-tote",
			Description: "Hand-woven rattan tote bag with leather straps, lined with batik cotton.",
			Price:       285000,
			Image:       "/images/products/woven-rattan-tote.jpg",
			Category:    "bags",
			Colors:      "natural,dark brown",
			IsActive:    true,
		},
		{
			SKU:         "HM-CERAMIC01",
			Name:        "Glazed Ceramic Mug",
			Slug:        "glazed-ceramic-mug",
			Description: "Wheel-thrown stoneware mug with a speckled reactive glaze. Each piece is unique.",
			Price:       95000,
			Image:       "/images/products/glazed-ceramic-mug.jpg",
			Category:    "ceramics",
			Colors:      "sand,ocean blue,moss green",
			IsActive:    true,
		},
		{
			SKU:         "HM-BATIK01",
			Name:        "Hand-Drawn Batik Scarf",
			Slug:        "hand-drawn-batik-scarf",
			Description: "Silk scarf with hand-drawn batik motifs, dyed with natural indigo.",
			Price:       350000,
			Image:       "/images/products/batik-scarf.jpg",
			Category:    "textiles",
			Colors:      "indigo,terracotta",
			Sizes:       "90x90,110x110",
			IsActive:    true,
		},
		{
			SKU:         "HM-TEAK01",
			Name:        "Teak Serving Board",
			Slug:        "teak-serving-board",
			Description: "Solid teak serving board finished with food-safe oil.",
			Price:       210000,
			Image:       "/images/products/teak-serving-board.jpg",
			Category:    "woodwork",
			Sizes:       "small,medium,large",
			IsActive:    true,
		},
		{
			SKU:         "HM-MACRAME01",
			Name:        "Macrame Wall Hanging",
			Slug:        "macrame-wall-hanging",
			Description: "Hand-knotted macrame wall hanging in unbleached cotton cord.",
			Price:       175000,
			Image:       "/images/products/macrame-wall-hanging.jpg",
			Category:    "decor",
			Colors:      "ivory,charcoal",
			IsActive:    true,
		},
		{
			SKU:         "HM-LEATHER01",
			Name:        "Stitched Leather Journal",
			Slug:        "stitched-leather-journal",
			Description: "Full-grain leather journal with hand-stitched binding and recycled paper.",
			Price:       240000,
			Image:       "/images/products/leather-journal.jpg",
			Category:    "stationery",
			Colors:      "tan,chestnut",
			Sizes:       "A6,A5",
			IsActive:    true,
		},
		{
			SKU:         "HM-RATTAN02",
			Name:        "Rattan Pendant Lampshade",
			Slug:        "rattan-pendant-lampshade",
			Description: "Openwork rattan lampshade casting warm patterned light.",
			Price:       320000,
			Image:       "/images/products/rattan-pendant-lampshade.jpg",
			Category:    "decor",
			IsActive:    true,
		},
		{
			SKU:         "HM-CERAMIC02",
			Name:        "Ceramic Dinner Plate Set",
			Slug:        "ceramic-dinner-plate-set",
			Description: "Set of four hand-glazed stoneware dinner plates.",
			Price:       520000,
			Image:       "/images/products/ceramic-dinner-plate-set.jpg",
			Category:    "ceramics",
			Colors:      "sand,ocean blue",
			IsActive:    true,
		},
	}
}
