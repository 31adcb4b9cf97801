package domain

// SeedCatalog returns the fixed sample catalog inserted into an empty store:
// six tile series (four featured) and six sanitary items (three featured).
// Both storage backends seed from this one slice so their observable catalog
// is identical.
func SeedCatalog() []NewProduct {
	return []NewProduct{
		// Tiles
		{
			Name:        "Modern Hexagon Collection",
			Description: "Porcelain geometric tiles for modern spaces",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1575652487037-abef22446c4b?auto=format&fit=crop&w=600&h=400",
			Price:       "24.99",
			Unit:        UnitSquareMeter,
			IsFeatured:  true,
		},
		{
			Name:        "Marble Effect Series",
			Description: "Elegant ceramic tiles with marble finish",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1610768260300-a60e7f12699b?auto=format&fit=crop&w=600&h=400",
			Price:       "32.50",
			Unit:        UnitSquareMeter,
			IsFeatured:  true,
		},
		{
			Name:        "Natural Wood Effect",
			Description: "Durable porcelain with authentic wood look",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1628602813485-4e8b09442e98?auto=format&fit=crop&w=600&h=400",
			Price:       "28.75",
			Unit:        UnitSquareMeter,
			IsFeatured:  true,
		},
		{
			Name:        "Urban Concrete",
			Description: "Industrial style concrete effect tiles",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1557245526-5b47d9515a8a?auto=format&fit=crop&w=600&h=400",
			Price:       "21.99",
			Unit:        UnitSquareMeter,
			IsFeatured:  true,
		},
		{
			Name:        "Moroccan Pattern",
			Description: "Colorful patterned tiles for feature walls",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1546301590-4a9e8b537fcf?auto=format&fit=crop&w=600&h=400",
			Price:       "36.25",
			Unit:        UnitSquareMeter,
		},
		{
			Name:        "Metro Subway Tiles",
			Description: "Classic rectangular tiles for walls",
			Category:    CategoryTile,
			ImageURL:    "https://images.unsplash.com/photo-1534117218761-b4c712128381?auto=format&fit=crop&w=600&h=400",
			Price:       "18.50",
			Unit:        UnitSquareMeter,
		},

		// Sanitary ware
		{
			Name:        "Wall-Hung Toilet Suite",
			Description: "Space-saving design with concealed cistern",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1584622650111-993a426nbf0a?auto=format&fit=crop&w=600&h=400",
			Price:       "649.00",
			Unit:        UnitPiece,
			IsFeatured:  true,
		},
		{
			Name:        "Freestanding Bathtub",
			Description: "Modern oval design with overflow",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1585412727339-54e4bae3bbf9?auto=format&fit=crop&w=600&h=400",
			Price:       "1199.00",
			Unit:        UnitPiece,
			IsFeatured:  true,
		},
		{
			Name:        "Wall-Mounted Vanity",
			Description: "Minimalist design with integrated sink",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1584622781564-d34bd8a9076c?auto=format&fit=crop&w=600&h=400",
			Price:       "849.00",
			Unit:        UnitPiece,
			IsFeatured:  true,
		},
		{
			Name:        "Rain Shower Head",
			Description: "Ceiling mounted rainfall shower experience",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1620626011761-996317b8d101?auto=format&fit=crop&w=600&h=400",
			Price:       "249.00",
			Unit:        UnitPiece,
		},
		{
			Name:        "Modern Basin Mixer",
			Description: "Single lever chrome tap for basins",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1584622650111-993a426nbf0a?auto=format&fit=crop&w=600&h=400",
			Price:       "189.00",
			Unit:        UnitPiece,
		},
		{
			Name:        "Glass Shower Screen",
			Description: "Frameless glass panel for walk-in showers",
			Category:    CategorySanitary,
			ImageURL:    "https://images.unsplash.com/photo-1620626011761-996317b8d101?auto=format&fit=crop&w=600&h=400",
			Price:       "379.00",
			Unit:        UnitPiece,
		},
	}
}
