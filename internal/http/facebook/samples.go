package facebook

// Samples returns a fixed list of realistic London sports pages used
// for demo seeding and deterministic tests.
func Samples() []Page {
	return []Page{
		{
			ID:    "fb_sample_1",
			Name:  "South London Football Academy",
			About: "Premier football coaching and weekly matches in Lambeth. Training for all ages and skill levels. Sunday league teams available.",
			Link:  "https://www.facebook.com/southlondonfootball",
			Location: &Location{
				City:      "Lambeth",
				Country:   "United Kingdom",
				Latitude:  51.4571,
				Longitude: -0.1231,
				Street:    "Brockwell Park",
			},
			FanCount: 2340,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_2",
			Name:  "Camden Basketball Community",
			About: "Weekly basketball sessions at Talacre Sports Centre. Open runs and organized leagues for intermediate to advanced players.",
			Link:  "https://www.facebook.com/camdenbasketball",
			Location: &Location{
				City:      "Camden",
				Country:   "United Kingdom",
				Latitude:  51.5390,
				Longitude: -0.1426,
				Street:    "Talacre Sports Centre",
			},
			FanCount: 1567,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_3",
			Name:  "Westminster Tennis Club",
			About: "Historic tennis club in Paddington Recreation Ground. Members enjoy year-round play on our 6 courts. Coaching available for all levels.",
			Link:  "https://www.facebook.com/westminstertennisclub",
			Location: &Location{
				City:      "Westminster",
				Country:   "United Kingdom",
				Latitude:  51.5220,
				Longitude: -0.1780,
				Street:    "Paddington Recreation Ground",
			},
			FanCount: 890,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_4",
			Name:  "Hackney Running Crew",
			About: "Free social running group meeting every Tuesday and Saturday. All paces welcome. Routes through Victoria Park and London Fields.",
			Link:  "https://www.facebook.com/hackneyrunningcrew",
			Location: &Location{
				City:      "Hackney",
				Country:   "United Kingdom",
				Latitude:  51.5450,
				Longitude: -0.0553,
				Street:    "Victoria Park",
			},
			FanCount: 3421,
			Category: "Sports & Recreation",
		},
		{
			ID:    "fb_sample_5",
			Name:  "Tower Hamlets Badminton Club",
			About: "Friendly badminton sessions every Thursday at Mile End Leisure Centre. Courts for casual play and competitive matches.",
			Link:  "https://www.facebook.com/thbadminton",
			Location: &Location{
				City:      "Tower Hamlets",
				Country:   "United Kingdom",
				Latitude:  51.5203,
				Longitude: -0.0293,
				Street:    "Mile End Leisure Centre",
			},
			FanCount: 678,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_6",
			Name:  "Islington Padel Hub",
			About: "London's newest padel venue with 4 indoor courts. Beginner clinics every Sunday. Book courts or join our social sessions.",
			Link:  "https://www.facebook.com/islingtonpadel",
			Location: &Location{
				City:      "Islington",
				Country:   "United Kingdom",
				Latitude:  51.5416,
				Longitude: -0.1022,
				Street:    "Highbury Fields",
			},
			FanCount: 1234,
			Category: "Sports & Recreation Venue",
		},
		{
			ID:    "fb_sample_7",
			Name:  "Kensington Cycling Club",
			About: "Road cycling club for all levels. Weekend rides to Surrey Hills. Midweek evening spins through Hyde Park. Social events monthly.",
			Link:  "https://www.facebook.com/kensingtoncycling",
			Location: &Location{
				City:      "Kensington and Chelsea",
				Country:   "United Kingdom",
				Latitude:  51.5020,
				Longitude: -0.1947,
				Street:    "Hyde Park",
			},
			FanCount: 2156,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_8",
			Name:  "Lambeth Yoga Collective",
			About: "Community yoga classes in Brixton and Clapham. Vinyasa, Hatha, and Yin styles. Pay-what-you-can sessions available.",
			Link:  "https://www.facebook.com/lambethyoga",
			Location: &Location{
				City:      "Lambeth",
				Country:   "United Kingdom",
				Latitude:  51.4571,
				Longitude: -0.1156,
				Street:    "Brixton Recreation Centre",
			},
			FanCount: 4567,
			Category: "Yoga Studio",
		},
		{
			ID:    "fb_sample_9",
			Name:  "East London Swimming Masters",
			About: "Masters swimming for adults 18+. Coached sessions at London Fields Lido and York Hall. Training for fitness and competition.",
			Link:  "https://www.facebook.com/eastlondonswimming",
			Location: &Location{
				City:      "Hackney",
				Country:   "United Kingdom",
				Latitude:  51.5370,
				Longitude: -0.0610,
				Street:    "London Fields Lido",
			},
			FanCount: 890,
			Category: "Sports Club",
		},
		{
			ID:    "fb_sample_10",
			Name:  "Camden Climbing Collective",
			About: "Indoor bouldering and climbing community. Weekly sessions at local walls. Outdoor trips to Portland and the Peak District.",
			Link:  "https://www.facebook.com/camdenclimbing",
			Location: &Location{
				City:      "Camden",
				Country:   "United Kingdom",
				Latitude:  51.5450,
				Longitude: -0.1340,
				Street:    "The Castle Climbing Centre",
			},
			FanCount: 1789,
			Category: "Sports Club",
		},
	}
}
