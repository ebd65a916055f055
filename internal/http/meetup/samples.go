package meetup

// Samples returns a fixed list of realistic London sports groups used
// for demo seeding and deterministic tests when API access isn't
// available.
func Samples() []Group {
	return []Group{
		{
			ID:          "sample_1",
			Name:        "London Fields Football",
			Description: "Casual 5-a-side and 7-a-side football games in Hackney. All skill levels welcome. We play every Saturday morning and Wednesday evening.",
			URLName:     "london-fields-football",
			Link:        "https://www.meetup.com/london-fields-football/",
			City:        "Hackney",
			Country:     "GB",
			Lat:         51.5410,
			Lon:         -0.0613,
			MemberCount: 234,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_2",
			Name:        "Camden Running Collective",
			Description: "Weekly group runs around Regent's Park and Hampstead Heath. Perfect for beginners and experienced runners alike. We meet every Tuesday at 7pm.",
			URLName:     "camden-running-collective",
			Link:        "https://www.meetup.com/camden-running-collective/",
			City:        "Camden",
			Country:     "GB",
			Lat:         51.5390,
			Lon:         -0.1426,
			MemberCount: 567,
			Category:    "Fitness",
		},
		{
			ID:          "sample_3",
			Name:        "Westminster Padel Club",
			Description: "The fastest growing racket sport! We organize regular padel sessions at Will to Win in Hyde Park. Beginners welcome, equipment provided.",
			URLName:     "westminster-padel",
			Link:        "https://www.meetup.com/westminster-padel/",
			City:        "Westminster",
			Country:     "GB",
			Lat:         51.5074,
			Lon:         -0.1657,
			MemberCount: 189,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_4",
			Name:        "Islington Tennis Social",
			Description: "Social tennis for intermediate players. We book courts at Highbury Fields every weekend. Great way to meet people and improve your game.",
			URLName:     "islington-tennis-social",
			Link:        "https://www.meetup.com/islington-tennis-social/",
			City:        "Islington",
			Country:     "GB",
			Lat:         51.5465,
			Lon:         -0.1058,
			MemberCount: 312,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_5",
			Name:        "South London Basketball",
			Description: "Basketball pick-up games and organized sessions in Lambeth and Southwark. Indoor courts in winter, outdoor in summer. All levels welcome.",
			URLName:     "south-london-basketball",
			Link:        "https://www.meetup.com/south-london-basketball/",
			City:        "Lambeth",
			Country:     "GB",
			Lat:         51.4613,
			Lon:         -0.1156,
			MemberCount: 445,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_6",
			Name:        "Greenwich Park Runners",
			Description: "Free weekly 5K runs in beautiful Greenwich Park. Part of the parkrun community. Every Saturday at 9am, rain or shine!",
			URLName:     "greenwich-park-runners",
			Link:        "https://www.meetup.com/greenwich-park-runners/",
			City:        "Greenwich",
			Country:     "GB",
			Lat:         51.4769,
			Lon:         -0.0005,
			MemberCount: 892,
			Category:    "Fitness",
		},
		{
			ID:          "sample_7",
			Name:        "East London Badminton Club",
			Description: "Regular badminton sessions in Tower Hamlets. We have courts booked every Thursday evening. Rackets available for beginners.",
			URLName:     "east-london-badminton",
			Link:        "https://www.meetup.com/east-london-badminton/",
			City:        "Tower Hamlets",
			Country:     "GB",
			Lat:         51.5150,
			Lon:         -0.0172,
			MemberCount: 178,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_8",
			Name:        "Kensington Yoga in the Park",
			Description: "Free outdoor yoga sessions in Hyde Park and Kensington Gardens. Bring your own mat. All levels from complete beginners to advanced.",
			URLName:     "kensington-yoga",
			Link:        "https://www.meetup.com/kensington-yoga/",
			City:        "Kensington and Chelsea",
			Country:     "GB",
			Lat:         51.5073,
			Lon:         -0.1877,
			MemberCount: 1243,
			Category:    "Health & Wellbeing",
		},
		{
			ID:          "sample_9",
			Name:        "Wandsworth Cycling Club",
			Description: "Road cycling group exploring Surrey Hills and beyond. Weekend rides of varying distances. Social coffee stops included!",
			URLName:     "wandsworth-cycling",
			Link:        "https://www.meetup.com/wandsworth-cycling/",
			City:        "Wandsworth",
			Country:     "GB",
			Lat:         51.4567,
			Lon:         -0.1910,
			MemberCount: 367,
			Category:    "Outdoors & Adventure",
		},
		{
			ID:          "sample_10",
			Name:        "Lewisham Swimming Squad",
			Description: "Masters swimming sessions at the Lewisham Leisure Centre. Coached sessions for improvers and fitness swimmers. Lane swimming every Tuesday.",
			URLName:     "lewisham-swimming",
			Link:        "https://www.meetup.com/lewisham-swimming/",
			City:        "Lewisham",
			Country:     "GB",
			Lat:         51.4535,
			Lon:         -0.0205,
			MemberCount: 156,
			Category:    "Fitness",
		},
		{
			ID:          "sample_11",
			Name:        "Hackney Climbing Crew",
			Description: "Indoor bouldering sessions at the Castle Climbing Centre. Beginners welcome - we'll show you the ropes (literally). Social climbs every Friday.",
			URLName:     "hackney-climbing",
			Link:        "https://www.meetup.com/hackney-climbing/",
			City:        "Hackney",
			Country:     "GB",
			Lat:         51.5574,
			Lon:         -0.0756,
			MemberCount: 289,
			Category:    "Sports & Recreation",
		},
		{
			ID:          "sample_12",
			Name:        "Hammersmith 5-a-side",
			Description: "Weekly 5-a-side football at Goals Hammersmith. Mixed ability games, great for after-work exercise. We play every Monday and Thursday.",
			URLName:     "hammersmith-5aside",
			Link:        "https://www.meetup.com/hammersmith-5aside/",
			City:        "Hammersmith and Fulham",
			Country:     "GB",
			Lat:         51.4928,
			Lon:         -0.2298,
			MemberCount: 412,
			Category:    "Sports & Recreation",
		},
	}
}
