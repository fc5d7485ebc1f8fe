package catalog

import (
	"gorm.io/gorm"

	"globetrotter/internal/models"
)

type seedCity struct {
	Name        string
	Country     string
	CostIndex   float64
	Popularity  int
	Description string
	ImageURL    string
}

type seedTemplate struct {
	Name        string
	Category    models.ActivityCategory
	Duration    int
	Cost        int64 // cents
	Description string
}

var seedCities = []seedCity{
	{"Paris", "France", 7.5, 95, "City of lights and romance", "https://images.unsplash.com/photo-1502602898657-3e91760cbb34"},
	{"Tokyo", "Japan", 8.0, 90, "Modern metropolis meets tradition", "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf"},
	{"New York", "USA", 9.0, 92, "The city that never sleeps", "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9"},
	{"London", "UK", 8.5, 88, "Historic capital with modern flair", "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad"},
	{"Dubai", "UAE", 7.0, 85, "Luxury and innovation", "https://images.unsplash.com/photo-1512453979798-5ea266f8880c"},
	{"Barcelona", "Spain", 6.0, 87, "Art, architecture and beaches", "https://images.unsplash.com/photo-1583422409516-2895a77efded"},
	{"Bali", "Indonesia", 4.0, 89, "Tropical paradise", "https://images.unsplash.com/photo-1537996194471-e657df975ab4"},
	{"Rome", "Italy", 6.5, 91, "Ancient history and culture", "https://images.unsplash.com/photo-1552832230-c0197dd311b5"},
	{"Sydney", "Australia", 7.5, 84, "Harbor city with iconic landmarks", "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9"},
	{"Singapore", "Singapore", 7.8, 86, "Garden city of the future", "https://images.unsplash.com/photo-1525625293386-3f8f99389edd"},
	{"Bangkok", "Thailand", 3.5, 88, "Street food and temples", "https://images.unsplash.com/photo-1508009603885-50cf7c579365"},
	{"Istanbul", "Turkey", 5.0, 82, "Where East meets West", "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200"},
	{"Amsterdam", "Netherlands", 7.2, 83, "Canals and culture", "https://images.unsplash.com/photo-1534351590666-13e3e96b5017"},
	{"Prague", "Czech Republic", 5.5, 81, "Fairy tale city", "https://images.unsplash.com/photo-1541849546-216549ae216d"},
	{"Santorini", "Greece", 6.8, 90, "White and blue paradise", "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e"},
}

var seedTemplates = map[string][]seedTemplate{
	"Paris": {
		{"Eiffel Tower Visit", models.ActivityCategoryActivities, 3, 3000, "Visit the iconic iron tower"},
		{"Louvre Museum Tour", models.ActivityCategoryActivities, 4, 2000, "World's largest art museum"},
		{"Seine River Cruise", models.ActivityCategoryTransport, 2, 1500, "Romantic boat ride"},
		{"French Cooking Class", models.ActivityCategoryFood, 3, 8000, "Learn to cook French cuisine"},
		{"Montmartre Walking Tour", models.ActivityCategoryActivities, 3, 2500, "Explore the artistic neighborhood"},
	},
	"Tokyo": {
		{"Tokyo Skytree", models.ActivityCategoryActivities, 2, 2500, "Tallest structure in Japan"},
		{"Tsukiji Fish Market", models.ActivityCategoryFood, 2, 4000, "Fresh sushi breakfast"},
		{"Shibuya Crossing Experience", models.ActivityCategoryActivities, 1, 0, "World's busiest crossing"},
		{"Traditional Tea Ceremony", models.ActivityCategoryActivities, 2, 5000, "Japanese tea ritual"},
		{"Akihabara Gaming Tour", models.ActivityCategoryOther, 3, 3000, "Electronics and anime district"},
	},
	"New York": {
		{"Statue of Liberty", models.ActivityCategoryActivities, 4, 2500, "Iconic American symbol"},
		{"Central Park Bike Tour", models.ActivityCategoryActivities, 3, 3500, "Explore the urban oasis"},
		{"Broadway Show", models.ActivityCategoryActivities, 3, 12000, "World-class theater"},
		{"Times Square Night Walk", models.ActivityCategoryActivities, 2, 0, "Bright lights and energy"},
		{"9/11 Memorial Visit", models.ActivityCategoryActivities, 2, 0, "Tribute to history"},
	},
	"London": {
		{"Big Ben & Parliament", models.ActivityCategoryActivities, 2, 1500, "Iconic landmarks"},
		{"British Museum Tour", models.ActivityCategoryActivities, 3, 0, "World history collection"},
		{"London Eye Ride", models.ActivityCategoryActivities, 1, 3500, "Panoramic city views"},
		{"Afternoon Tea Experience", models.ActivityCategoryFood, 2, 4500, "Traditional English tea"},
		{"West End Theatre", models.ActivityCategoryActivities, 3, 8000, "Musical or play"},
	},
	"Dubai": {
		{"Burj Khalifa Observatory", models.ActivityCategoryActivities, 2, 4000, "World's tallest building"},
		{"Desert Safari", models.ActivityCategoryActivities, 6, 7000, "Dune bashing and BBQ"},
		{"Dubai Mall Shopping", models.ActivityCategoryOther, 4, 5000, "Luxury shopping experience"},
		{"Gold Souk Visit", models.ActivityCategoryOther, 2, 0, "Traditional gold market"},
		{"Marina Dhow Cruise", models.ActivityCategoryFood, 2, 3000, "Traditional boat dinner"},
	},
	"Barcelona": {
		{"Sagrada Familia Tour", models.ActivityCategoryActivities, 2, 3000, "Gaudi's masterpiece"},
		{"Park Guell Visit", models.ActivityCategoryActivities, 2, 1000, "Colorful park by Gaudi"},
		{"Beach Day at Barceloneta", models.ActivityCategoryActivities, 4, 1500, "Mediterranean beach"},
		{"Tapas Food Tour", models.ActivityCategoryFood, 3, 6000, "Spanish small plates"},
		{"Las Ramblas Walk", models.ActivityCategoryActivities, 2, 0, "Famous street promenade"},
	},
	"Bali": {
		{"Ubud Rice Terraces", models.ActivityCategoryActivities, 3, 500, "Stunning green landscapes"},
		{"Beach Club Day Pass", models.ActivityCategoryActivities, 6, 4000, "Luxury beach experience"},
		{"Balinese Cooking Class", models.ActivityCategoryFood, 4, 3500, "Learn local cuisine"},
		{"Temple Tour", models.ActivityCategoryActivities, 4, 2000, "Sacred Hindu temples"},
		{"Sunrise Volcano Trek", models.ActivityCategoryActivities, 8, 5000, "Mount Batur hike"},
	},
	"Rome": {
		{"Colosseum Tour", models.ActivityCategoryActivities, 3, 2500, "Ancient Roman arena"},
		{"Vatican Museums", models.ActivityCategoryActivities, 4, 2000, "Sistine Chapel included"},
		{"Trevi Fountain Visit", models.ActivityCategoryActivities, 1, 0, "Toss a coin for luck"},
		{"Roman Food Tour", models.ActivityCategoryFood, 3, 7000, "Pasta and gelato"},
		{"Vespa Tour", models.ActivityCategoryTransport, 3, 9000, "Ride through Rome"},
	},
}

// SeedResult counts the rows Seed inserted.
type SeedResult struct {
	Cities    int
	Templates int
}

// Seed writes the sample catalog. Existing cities (by name and country) and
// templates (by city and name) are left as they are, so it is safe to rerun.
func Seed(db *gorm.DB) (SeedResult, error) {
	var result SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range seedCities {
			desc, image := sc.Description, sc.ImageURL
			city := models.City{
				Name:        sc.Name,
				Country:     sc.Country,
				CostIndex:   sc.CostIndex,
				Popularity:  sc.Popularity,
				Description: &desc,
				ImageURL:    &image,
			}
			created, err := findOrCreate(tx, &city, "name = ? AND country = ?", sc.Name, sc.Country)
			if err != nil {
				return err
			}
			if created {
				result.Cities++
			}

			for _, st := range seedTemplates[sc.Name] {
				tdesc := st.Description
				tmpl := models.ActivityTemplate{
					CityID:        city.ID,
					Name:          st.Name,
					Description:   &tdesc,
					Category:      st.Category,
					EstimatedCost: st.Cost,
					Duration:      st.Duration,
				}
				created, err := findOrCreate(tx, &tmpl, "city_id = ? AND name = ?", city.ID, st.Name)
				if err != nil {
					return err
				}
				if created {
					result.Templates++
				}
			}
		}
		return nil
	})
	return result, err
}

// findOrCreate loads the row matching query into dest, or inserts dest when
// there is none. It reports whether a row was inserted.
func findOrCreate(tx *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	res := tx.Where(query, args...).Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	if err := tx.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}
