package googlesearch

// Samples returns a fixed list of realistic London club websites used
// for demo seeding and deterministic tests.
func Samples() []Result {
	return []Result{
		{
			Title:   "Brixton Football Club - Community Football in South London",
			Link:    "https://www.brixtonfc.example.com/",
			Snippet: "Brixton FC runs men's, women's and youth football teams across Lambeth. Weekly training sessions and Sunday league matches. New players always welcome.",
		},
		{
			Title:   "Clapham Runners | Free Social Running Club",
			Link:    "https://www.claphamrunners.example.com/",
			Snippet: "Clapham Runners is a free, friendly running club meeting on Clapham Common twice a week. All abilities from couch-to-5k to marathon training.",
		},
		{
			Title:   "Shoreditch Tennis Academy - Coaching & Courts in East London",
			Link:    "https://www.shoreditchtennis.example.com/",
			Snippet: "Tennis coaching for adults and juniors in Hackney. Individual lessons, group clinics and social tennis evenings on our floodlit courts.",
			Phone:   "020 7123 4567",
		},
		{
			Title:   "Stratford Basketball Association",
			Link:    "https://www.stratfordbasketball.example.com/",
			Snippet: "Competitive and recreational basketball in Newham. Men's and women's teams playing in London leagues, plus open sessions every Friday night.",
		},
		{
			Title:   "Highbury Padel Club - London's Premier Padel Venue",
			Link:    "https://www.highburypadel.example.com/",
			Snippet: "Four indoor padel courts in Islington. Court hire, coaching, leagues and social americano tournaments every weekend. Beginners welcome.",
			Email:   "info@highburypadel.example.com",
		},
		{
			Title:   "Peckham Cycling Club | Road & Gravel Rides",
			Link:    "https://www.peckhamcc.example.com/",
			Snippet: "South East London cycling club with weekend club runs, chaingangs and an active racing team. Rides leave from Peckham Rye every Saturday.",
		},
		{
			Title:   "Fulham Swimming Club - Masters and Junior Squads",
			Link:    "https://www.fulhamswimming.example.com/",
			Snippet: "Swimming club based in Hammersmith and Fulham with coached squad sessions for juniors and masters at local pools. Trials held monthly.",
		},
		{
			Title:   "Notting Hill Yoga Studio",
			Link:    "https://www.nottinghillyoga.example.com/",
			Snippet: "Boutique yoga studio in Kensington offering vinyasa, hatha and hot yoga classes seven days a week. Intro offer for new students.",
		},
		{
			Title:   "Battersea Climbing Wall - Bouldering in Wandsworth",
			Link:    "https://www.batterseaclimbing.example.com/",
			Snippet: "Indoor bouldering centre in Wandsworth with 200+ problems, beginner inductions, coaching and a friendly climbing community.",
		},
		{
			Title:   "Woolwich Cricket Club",
			Link:    "https://www.woolwichcc.example.com/",
			Snippet: "Historic cricket club in Greenwich fielding three Saturday league sides and a friendly Sunday XI. Winter nets start in January.",
		},
	}
}
