package bingsearch

// Samples returns a fixed list of realistic London club websites used
// for demo seeding and deterministic tests.
func Samples() []Result {
	return []Result{
		{
			Name:       "Brixton Football Club - Community Football in South London",
			URL:        "https://www.brixtonfc.example.com/",
			Snippet:    "Brixton FC runs men's, women's and youth football teams across Lambeth. Weekly training sessions and Sunday league matches. New players always welcome.",
			DisplayURL: "www.brixtonfc.example.com",
		},
		{
			Name:       "Clapham Runners | Free Social Running Club",
			URL:        "https://www.claphamrunners.example.com/",
			Snippet:    "Clapham Runners is a free, friendly running club meeting on Clapham Common twice a week. All abilities from couch-to-5k to marathon training.",
			DisplayURL: "www.claphamrunners.example.com",
		},
		{
			Name:       "Shoreditch Tennis Academy - Coaching & Courts in East London",
			URL:        "https://www.shoreditchtennis.example.com/",
			Snippet:    "Tennis coaching for adults and juniors in Hackney. Individual lessons, group clinics and social tennis evenings on our floodlit courts.",
			DisplayURL: "www.shoreditchtennis.example.com",
		},
		{
			Name:       "Stratford Basketball Association",
			URL:        "https://www.stratfordbasketball.example.com/",
			Snippet:    "Competitive and recreational basketball in Newham. Men's and women's teams playing in London leagues, plus open sessions every Friday night.",
			DisplayURL: "www.stratfordbasketball.example.com",
		},
		{
			Name:       "Highbury Padel Club - London's Premier Padel Venue",
			URL:        "https://www.highburypadel.example.com/",
			Snippet:    "Four indoor padel courts in Islington. Court hire, coaching, leagues and social americano tournaments every weekend. Beginners welcome.",
			DisplayURL: "www.highburypadel.example.com",
		},
		{
			Name:       "Peckham Cycling Club | Road & Gravel Rides",
			URL:        "https://www.peckhamcc.example.com/",
			Snippet:    "South East London cycling club with weekend club runs, chaingangs and an active racing team. Rides leave from Peckham Rye every Saturday.",
			DisplayURL: "www.peckhamcc.example.com",
		},
		{
			Name:       "Fulham Swimming Club - Masters and Junior Squads",
			URL:        "https://www.fulhamswimming.example.com/",
			Snippet:    "Swimming club based in Hammersmith and Fulham with coached squad sessions for juniors and masters at local pools. Trials held monthly.",
			DisplayURL: "www.fulhamswimming.example.com",
		},
		{
			Name:       "Notting Hill Yoga Studio",
			URL:        "https://www.nottinghillyoga.example.com/",
			Snippet:    "Boutique yoga studio in Kensington offering vinyasa, hatha and hot yoga classes seven days a week. Intro offer for new students.",
			DisplayURL: "www.nottinghillyoga.example.com",
		},
		{
			Name:       "Battersea Climbing Wall - Bouldering in Wandsworth",
			URL:        "https://www.batterseaclimbing.example.com/",
			Snippet:    "Indoor bouldering centre in Wandsworth with 200+ problems, beginner inductions, coaching and a friendly climbing community.",
			DisplayURL: "www.batterseaclimbing.example.com",
		},
		{
			Name:       "Woolwich Cricket Club",
			URL:        "https://www.woolwichcc.example.com/",
			Snippet:    "Historic cricket club in Greenwich fielding three Saturday league sides and a friendly Sunday XI. Winter nets start in January.",
			DisplayURL: "www.woolwichcc.example.com",
		},
	}
}
