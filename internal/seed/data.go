package seed

import "tramondo/pkg/model"

const (
	imageVan       = "/attached_assets/Van_adventure_coastal_sunset_cee52344.png"
	imageAustralia = "/attached_assets/Australia_Sydney_Opera_House_22227abe.png"
	imageNZ        = "/attached_assets/New_Zealand_mountain_fjord_b8ed5ed8.png"
	imageFiji      = "/attached_assets/Fiji_tropical_paradise_beach_ca08e39d.png"
	imageSEAsia    = "/attached_assets/Southeast_Asia_temple_landmark_afb74b2d.png"
	imageUSA       = "/attached_assets/USA_Grand_Canyon_vista_dad411ac.png"
	imageKoala     = "/attached_assets/Instagram_koala_wildlife_photo_427260fd.png"
	imageDog       = "/attached_assets/Instagram_beach_dog_photo_14c6438c.png"

	instagramProfile = "https://instagram.com/p/tramondoo"
)

func ptr[T any](v T) *T { return &v }

func price(units int64) *model.Money {
	m := model.NewMoney(units, 0)
	return &m
}

func destinations() []*model.DestinationInput {
	return []*model.DestinationInput{
		{
			Name:        "Australia",
			Slug:        "australia",
			Description: ptr("Beaches, harbour cities and wildlife found nowhere else."),
			ImageURL:    ptr(imageAustralia),
			Country:     ptr("Australia"),
			Featured:    true,
		},
		{
			Name:        "New Zealand",
			Slug:        "new-zealand",
			Description: ptr("Fjords, glaciers and alpine passes on two islands."),
			ImageURL:    ptr(imageNZ),
			Country:     ptr("New Zealand"),
			Featured:    true,
		},
		{
			Name:        "Fiji",
			Slug:        "fiji",
			Description: ptr("Clear lagoons, reef snorkelling and island villages."),
			ImageURL:    ptr(imageFiji),
			Country:     ptr("Fiji"),
			Featured:    true,
		},
		{
			Name:        "South East Asia",
			Slug:        "south-east-asia",
			Description: ptr("Temples, night markets and street food across the region."),
			ImageURL:    ptr(imageSEAsia),
			Country:     ptr("Multiple"),
			Featured:    true,
		},
		{
			Name:        "USA",
			Slug:        "usa",
			Description: ptr("National parks, canyons and big cities."),
			ImageURL:    ptr(imageUSA),
			Country:     ptr("United States"),
			Featured:    true,
		},
	}
}

// tourSeed pairs a tour with the slug of its destination, resolved at seed time.
type tourSeed struct {
	destination string
	input       *model.TourInput
}

func tours() []tourSeed {
	return []tourSeed{
		{"australia", &model.TourInput{
			Title:            "Luxury Sailing Adventure Sydney Harbour",
			Slug:             "luxury-sailing-adventure-sydney-harbour",
			Description:      "A half-day on a crewed yacht past the Opera House and under the Harbour Bridge, with champagne and a grazing platter on deck.",
			ShortDescription: ptr("Sail Sydney Harbour on a crewed luxury yacht."),
			Price:            price(530),
			Duration:         4,
			Location:         "Sydney, Australia",
			ImageURL:         imageVan,
			ActivityType:     "tours",
			MaxGroupSize:     ptr(12),
			Featured:         true,
			Badge:            ptr("Best Seller"),
			Included:         []string{"Professional sailing crew", "Premium beverages", "Cheese and charcuterie platter", "Safety briefing", "Hotel pickup and drop-off"},
			Excluded:         []string{"Gratuities", "Personal expenses"},
		}},
		{"australia", &model.TourInput{
			Title:            "Great Ocean Road Coastal Tour",
			Slug:             "great-ocean-road-coastal-tour",
			Description:      "A full day along the Great Ocean Road with stops at the Twelve Apostles, rainforest walks and empty surf beaches.",
			ShortDescription: ptr("The Twelve Apostles and the best of the coast road."),
			Price:            price(530),
			Duration:         1,
			Location:         "Great Ocean Road, Australia",
			ImageURL:         imageVan,
			ActivityType:     "tours",
			MaxGroupSize:     ptr(16),
			Featured:         true,
			Badge:            ptr("Hot Deal"),
			Included:         []string{"Air-conditioned coach", "Guide commentary", "National park entry", "Morning tea and lunch"},
			Excluded:         []string{"Helicopter flight", "Dinner", "Accommodation"},
		}},
		{"australia", &model.TourInput{
			Title:            "Adventure Van Tour Coastal Experience",
			Slug:             "adventure-van-tour-coastal-experience",
			Description:      "Three days in a camper van on the east coast: surf lessons, beach camps and sunsets from the roof.",
			ShortDescription: ptr("Camper van road trip with surfing and beach camps."),
			Price:            price(530),
			Duration:         3,
			Location:         "East Coast, Australia",
			ImageURL:         imageVan,
			ActivityType:     "car-rentals",
			MaxGroupSize:     ptr(8),
			Featured:         true,
			Badge:            ptr("Best Seller"),
			Included:         []string{"Camper van rental", "Camping equipment", "Breakfast and dinner", "Surf lessons", "Fuel"},
			Excluded:         []string{"Lunch", "Travel insurance"},
		}},
		{"new-zealand", &model.TourInput{
			Title:            "Milford Sound Cruise and Hike",
			Slug:             "milford-sound-cruise-and-hike",
			Description:      "A scenic cruise through Milford Sound followed by a guided rainforest walk beneath the waterfalls.",
			ShortDescription: ptr("Fjord cruise and rainforest walk in Fiordland."),
			Price:            price(645),
			Duration:         1,
			Location:         "Milford Sound, New Zealand",
			ImageURL:         imageNZ,
			ActivityType:     "tours",
			MaxGroupSize:     ptr(20),
			Featured:         true,
			Included:         []string{"2-hour cruise", "Guided walk", "Light refreshments"},
			Excluded:         []string{"Lunch", "Hotel transfers", "Kayaking"},
		}},
		{"fiji", &model.TourInput{
			Title:            "Fiji Island Paradise Hopping",
			Slug:             "fiji-island-paradise-hopping",
			Description:      "Five days hopping between the Mamanuca and Yasawa islands with reef snorkelling and a village visit.",
			ShortDescription: ptr("Island hopping with snorkelling and village culture."),
			Price:            price(780),
			Duration:         5,
			Location:         "Fiji Islands",
			ImageURL:         imageFiji,
			ActivityType:     "cruises",
			MaxGroupSize:     ptr(15),
			Featured:         true,
			Badge:            ptr("Best Seller"),
			Included:         []string{"Boat transfers", "Snorkelling gear", "All meals", "Village visit", "4 nights accommodation"},
			Excluded:         []string{"International flights", "Spa treatments"},
		}},
		{"south-east-asia", &model.TourInput{
			Title:            "Temple Discovery Southeast Asia",
			Slug:             "temple-discovery-southeast-asia",
			Description:      "Ten days through Thailand, Cambodia and Vietnam visiting temples, monasteries and markets with local guides.",
			ShortDescription: ptr("Ancient temples across three countries."),
			Price:            price(1250),
			Duration:         10,
			Location:         "Thailand, Cambodia, Vietnam",
			ImageURL:         imageSEAsia,
			ActivityType:     "tours",
			MaxGroupSize:     ptr(12),
			Included:         []string{"9 nights hotels", "Breakfast and dinner", "Temple entry fees", "Internal flights"},
			Excluded:         []string{"International flights", "Lunch", "Travel insurance"},
		}},
		{"usa", &model.TourInput{
			Title:            "Grand Canyon Adventure Experience",
			Slug:             "grand-canyon-adventure-experience",
			Description:      "Two days on the South Rim: sunrise and sunset viewpoints, rim trail hikes and a night in a lodge.",
			ShortDescription: ptr("Rim hikes and viewpoints at the Grand Canyon."),
			Price:            price(595),
			Duration:         2,
			Location:         "Grand Canyon, Arizona, USA",
			ImageURL:         imageUSA,
			ActivityType:     "tours",
			MaxGroupSize:     ptr(14),
			Included:         []string{"Park entrance fees", "Guide", "Hiking equipment", "1 night lodge"},
			Excluded:         []string{"Dinner", "Helicopter tour"},
		}},
	}
}

// reviewSeed names its tour by slug.
type reviewSeed struct {
	tour  string
	input *model.ReviewInput
}

func reviews() []reviewSeed {
	review := func(tour, name, initials, location string, rating int, comment string) reviewSeed {
		return reviewSeed{tour, &model.ReviewInput{
			CustomerName:     name,
			CustomerInitials: initials,
			CustomerLocation: location,
			Rating:           rating,
			Comment:          comment,
		}}
	}

	return []reviewSeed{
		review("luxury-sailing-adventure-sydney-harbour", "Sarah Johnson", "SJ", "USA", 5, "Well organised and the crew knew every corner of the harbour."),
		review("luxury-sailing-adventure-sydney-harbour", "Michael Chen", "MC", "Australia", 5, "Great value. We saw far more than we expected in one afternoon."),
		review("great-ocean-road-coastal-tour", "Emma Wilson", "EW", "UK", 4, "Stunning scenery and a guide full of local stories."),
		review("adventure-van-tour-coastal-experience", "David Martinez", "DM", "Spain", 5, "The highlight of our trip. Surfing at sunrise was unforgettable."),
		review("milford-sound-cruise-and-hike", "Lisa Anderson", "LA", "Canada", 5, "The fjord was even better than the photos."),
		review("fiji-island-paradise-hopping", "James Brown", "JB", "New Zealand", 4, "Relaxed pace and a small group that felt personal."),
	}
}

func instagramPosts() []*model.InstagramPostInput {
	captions := []string{
		"Meet our new friend!",
		"Beach vibes",
		"Wildlife encounters",
		"Paradise found",
		"Adventure awaits!",
		"Living our best life",
	}

	posts := make([]*model.InstagramPostInput, 0, len(captions))
	for i, caption := range captions {
		image := imageKoala
		if i%2 == 1 {
			image = imageDog
		}
		posts = append(posts, &model.InstagramPostInput{
			ImageURL: image,
			PostURL:  ptr(instagramProfile),
			Caption:  ptr(caption),
			Order:    i + 1,
			Active:   ptr(true),
		})
	}
	return posts
}

func demoUser() *model.UserInput {
	return &model.UserInput{
		Username: "demo",
		Password: "demo",
		Email:    ptr("demo@tramondo.test"),
	}
}
