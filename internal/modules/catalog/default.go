// README: Built-in catalog for Indian destinations; used when no file or DB source is configured.
package catalog

import "travelsathi/internal/modules/budget"

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(DefaultData())
}

// DefaultData returns a fresh copy of the built-in data, suitable for overlaying.
func DefaultData() Data {
	return Data{
		Cities: []string{
			"jaipur", "delhi", "mumbai", "bangalore", "hyderabad", "chennai", "kolkata", "goa",
			"kerala", "agra", "varanasi", "pune", "ahmedabad", "surat", "lucknow", "kanpur",
			"nagpur", "indore", "thane", "bhopal", "visakhapatnam", "pimpri", "patna", "vadodara",
			"ludhiana", "rajkot", "kalyan", "dombivli", "nashik", "meerut", "faridabad",
			"ghaziabad", "durgapur", "rajpur", "solapur", "shimla", "darjeeling", "ooty", "manali",
			"rishikesh", "haridwar", "amritsar", "chandigarh", "kochi", "thiruvananthapuram",
			"kozhikode", "madurai", "coimbatore", "tiruchirappalli", "salem", "tirunelveli",
		},
		Profiles: map[string]Profile{
			"jaipur": {
				Name: "Jaipur",
				Activities: []Activity{
					{Name: "Amber Fort", Category: CategorySightseeing, DurationHours: 3, Cost: 200, Description: "Magnificent hilltop fort with elephant rides"},
					{Name: "City Palace", Category: CategoryCulture, DurationHours: 2, Cost: 100, Description: "Royal residence with museums and courtyards"},
					{Name: "Hawa Mahal", Category: CategorySightseeing, DurationHours: 1, Cost: 50, Description: "Iconic pink palace facade"},
					{Name: "Johari Bazaar", Category: CategoryShopping, DurationHours: 2, Cost: 1000, Description: "Traditional jewelry and textile market"},
					{Name: "Dal Baati Churma", Category: CategoryFood, DurationHours: 1, Cost: 300, Description: "Traditional Rajasthani meal"},
					{Name: "Nahargarh Fort", Category: CategorySightseeing, DurationHours: 2, Cost: 50, Description: "Best sunset views of the city"},
				},
				DailyBudget:          budget.Rates{budget.TierBudget: 1500, budget.TierMidRange: 3000, budget.TierLuxury: 6000},
				LocalTransportCost:   500,
				AirportTransportCost: 800,
			},
			"delhi": {
				Name: "Delhi",
				Activities: []Activity{
					{Name: "Red Fort", Category: CategorySightseeing, DurationHours: 2, Cost: 50, Description: "Historic Mughal fortress"},
					{Name: "India Gate", Category: CategorySightseeing, DurationHours: 1, Cost: 0, Description: "War memorial and gardens"},
					{Name: "Chandni Chowk", Category: CategoryFood, DurationHours: 3, Cost: 500, Description: "Street food and shopping paradise"},
					{Name: "Lotus Temple", Category: CategoryCulture, DurationHours: 1, Cost: 0, Description: "Architectural marvel and meditation"},
					{Name: "Qutub Minar", Category: CategorySightseeing, DurationHours: 1.5, Cost: 30, Description: "UNESCO World Heritage site"},
					{Name: "Khan Market", Category: CategoryShopping, DurationHours: 2, Cost: 800, Description: "Upscale shopping and dining"},
				},
				DailyBudget:          budget.Rates{budget.TierBudget: 1200, budget.TierMidRange: 2500, budget.TierLuxury: 5000},
				LocalTransportCost:   400,
				AirportTransportCost: 600,
			},
			"mumbai": {
				Name: "Mumbai",
				Activities: []Activity{
					{Name: "Gateway of India", Category: CategorySightseeing, DurationHours: 1, Cost: 0, Description: "Iconic waterfront monument"},
					{Name: "Elephanta Caves", Category: CategoryCulture, DurationHours: 4, Cost: 300, Description: "Ancient rock-cut temples (includes ferry)"},
					{Name: "Marine Drive", Category: CategorySightseeing, DurationHours: 1, Cost: 0, Description: "Evening promenade walk"},
					{Name: "Colaba Causeway", Category: CategoryShopping, DurationHours: 2, Cost: 800, Description: "Street shopping and cafes"},
					{Name: "Vada Pav Tour", Category: CategoryFood, DurationHours: 2, Cost: 200, Description: "Mumbai street food experience"},
					{Name: "Film City Tour", Category: CategoryCulture, DurationHours: 4, Cost: 1200, Description: "Bollywood studio experience"},
				},
				DailyBudget:          budget.Rates{budget.TierBudget: 1800, budget.TierMidRange: 3500, budget.TierLuxury: 7000},
				LocalTransportCost:   200,
				AirportTransportCost: 400,
			},
		},
		Experiences: map[string][]string{
			"jaipur": {
				"🏰 **Elephant Safari** at Amber Fort with mahout experience",
				"🎨 **Block Printing Workshop** in traditional textile centers",
				"🍛 **Cooking Class** - Learn authentic Rajasthani cuisine",
				"🛍️ **Jewelry Making** - Create your own Kundan jewelry",
				"🎭 **Folk Performance** - Kalbelia dance and puppet shows",
				"🐪 **Camel Cart Ride** through rural villages",
			},
			"delhi": {
				"🚲 **Heritage Cycle Tour** through Old Delhi bylanes",
				"🍛 **Street Food Walking Tour** in Chandni Chowk",
				"🎨 **Art Workshop** at local artist studios",
				"🕌 **Spiritual Walk** covering multiple religions",
				"🛍️ **Market Hopping** with local shopping expert",
				"🚗 **Photography Tour** of hidden Delhi gems",
			},
			"mumbai": {
				"🚂 **Local Train Experience** with Mumbai resident",
				"🎬 **Bollywood Studio Visit** with actor interactions",
				"🍛 **Dabbawala Tour** understanding lunch delivery system",
				"🏖️ **Fishing Village Tour** in Versova or Worli",
				"🎨 **Warli Art Workshop** with tribal artists",
				"🌅 **Dawn Market Visit** at Crawford Market",
			},
		},
		CulturalTips: map[string]CulturalTip{
			"jaipur": {
				Tips:      "Respect local customs when visiting temples. Dress modestly and remove shoes before entering. Bargaining is common in local markets.",
				Etiquette: "Traditional Rajasthani hospitality is warm. Accept tea when offered. Photography may be restricted in some palaces.",
				Clothing:  "Cotton clothing recommended. Carry a light scarf for temple visits. Avoid leather items in religious places.",
				Language:  "Hindi and Rajasthani are local languages. English is widely understood in tourist areas.",
			},
			"delhi": {
				Tips:      "Metro is the best way to travel. Avoid street food if you have a sensitive stomach. Dress conservatively when visiting religious sites.",
				Etiquette: "Delhi is cosmopolitan. Tipping 10-15% is customary. Be respectful during prayer times at mosques.",
				Clothing:  "Dress modestly, especially in Old Delhi. Comfortable walking shoes essential.",
				Language:  "Hindi, Punjabi, and English are widely spoken. Urdu is understood in Old Delhi areas.",
			},
			"mumbai": {
				Tips:      "Local trains are crowded but efficient. Tipping is customary in restaurants (10-15%). Be prepared for monsoon season (June-September).",
				Etiquette: "Fast-paced city life. Be punctual for meetings. Street food culture is vibrant but choose busy stalls.",
				Clothing:  "Western and traditional wear both accepted. Umbrella essential during monsoons.",
				Language:  "Hindi, Marathi, and English are primary languages. Gujarati is also common.",
			},
			"bangalore": {
				Tips:      "Traffic can be heavy, plan accordingly. The weather is pleasant year-round. English is widely spoken in the IT areas.",
				Etiquette: "Tech-friendly city. Pub culture is popular. Respect traditional South Indian customs.",
				Clothing:  "Casual wear acceptable. Light jackets for evenings. Traditional wear for temple visits.",
				Language:  "Kannada, English, Hindi, and Tamil are commonly spoken.",
			},
			"hyderabad": {
				Tips:      "Famous for biryani and pearl jewelry. Respect Ramadan customs if visiting during the holy month. Charminar area can be crowded.",
				Etiquette: "Rich Nizami culture. Respect Islamic traditions. Bargaining expected in old city markets.",
				Clothing:  "Conservative dress in old city areas. Comfortable footwear for exploring historical sites.",
				Language:  "Telugu, Urdu, Hindi, and English are widely understood.",
			},
			"kerala": {
				Tips:      "Monsoons are heavy (June-September). Respect local customs in temples. Try authentic Kerala cuisine.",
				Etiquette: "Traditional and modern cultures blend. Remove shoes before entering homes. Ayurvedic traditions are respected.",
				Clothing:  "Light cotton clothes. Waterproof clothing during monsoons. Traditional wear appreciated in temples.",
				Language:  "Malayalam is primary. English and Hindi are understood in tourist areas.",
			},
			"goa": {
				Tips:      "Beach safety is important. Respect local fishing communities. Water sports are popular but choose licensed operators.",
				Etiquette: "Relaxed beach culture. Bikinis acceptable on beaches, not in villages. Siesta culture in afternoon.",
				Clothing:  "Beach wear for coast, modest clothing for inland areas. Sun protection essential.",
				Language:  "Konkani, Portuguese influences. English, Hindi widely spoken.",
			},
		},
		BestTime: map[string]string{
			"jaipur":    "**Best Time:** October to March (pleasant weather), **Avoid:** April-June (extreme heat)",
			"delhi":     "**Best Time:** October to March (cool & pleasant), **Monsoon:** July-September, **Avoid:** April-June (very hot)",
			"mumbai":    "**Best Time:** November to February (cool), **Monsoon:** June-September (heavy rains), **Summer:** March-May (hot & humid)",
			"bangalore": "**Best Time:** Year-round (pleasant climate), **Monsoon:** June-September, **Cool Season:** December-February",
			"hyderabad": "**Best Time:** October to February (pleasant), **Monsoon:** June-September, **Avoid:** March-May (hot)",
			"kerala":    "**Best Time:** September to March (dry season), **Monsoon:** June-August (heavy rains), **Summer:** March-May (hot)",
			"goa":       "**Best Time:** November to February (cool & dry), **Monsoon:** June-September, **Off-season:** March-May (hot)",
			"chennai":   "**Best Time:** November to February (cool), **Monsoon:** October-December, **Avoid:** March-June (very hot)",
			"kolkata":   "**Best Time:** October to March (pleasant), **Monsoon:** June-September, **Avoid:** April-June (hot & humid)",
			"rajasthan": "**Best Time:** October to March (cool), **Avoid:** April-June (extreme heat), **Monsoon:** July-September",
		},
		Attractions: map[string][]string{
			"jaipur": {
				"🏰 Amber Fort - Magnificent hilltop fort (2-3 hours)",
				"🕌 City Palace - Royal residence with museums (2 hours)",
				"🏛️ Hawa Mahal - Iconic pink palace (1 hour)",
				"⭐ Jantar Mantar - Ancient astronomical observatory (1 hour)",
				"🏮 Nahargarh Fort - Best sunset views (1.5 hours)",
			},
			"delhi": {
				"🕌 Red Fort - Historic Mughal fort (2 hours)",
				"🏛️ India Gate - War memorial & gardens (1 hour)",
				"🕌 Jama Masjid - India's largest mosque (1 hour)",
				"🏛️ Lotus Temple - Architectural marvel (1 hour)",
				"🛍️ Chandni Chowk - Historic market area (2-3 hours)",
				"🏛️ Qutub Minar - UNESCO World Heritage site (1.5 hours)",
			},
			"mumbai": {
				"🚪 Gateway of India - Iconic waterfront monument (1 hour)",
				"🏰 Chhatrapati Shivaji Terminus - UNESCO railway station (30 minutes)",
				"🏖️ Marine Drive - Queen's Necklace promenade (evening walk)",
				"🏝️ Elephanta Caves - Ancient rock-cut temples (half day)",
				"🏛️ Prince of Wales Museum - Art & history (2 hours)",
				"🎬 Film City - Bollywood studio tours (half day)",
			},
			"bangalore": {
				"🌺 Lalbagh Botanical Garden - Beautiful gardens (2 hours)",
				"🏰 Bangalore Palace - Tudor-style architecture (1.5 hours)",
				"🕌 Bull Temple - Unique Nandi temple (1 hour)",
				"🛍️ Commercial Street - Shopping paradise (2-3 hours)",
				"🌄 Nandi Hills - Hill station nearby (full day trip)",
				"🍺 Brewery tours - Craft beer culture (evening)",
			},
			"hyderabad": {
				"🕌 Charminar - Iconic 16th-century monument (1 hour)",
				"🏰 Golconda Fort - Historic fortress complex (3 hours)",
				"💎 Salar Jung Museum - World's largest one-man collection (2 hours)",
				"🕌 Mecca Masjid - One of India's largest mosques (1 hour)",
				"🏰 Ramoji Film City - World's largest film studio (full day)",
				"💍 Laad Bazaar - Famous for bangles & pearls (2 hours)",
			},
		},
		FoodGuides: map[string]FoodGuide{
			"delhi": {
				MustTry: []string{
					"Chole Bhature at Sita Ram Diwan Chand",
					"Paranthe Wali Gali in Chandni Chowk",
					"Butter Chicken at Moti Mahal",
					"Kulfi at Kuremal Mohan Lal Kulfi Wale",
				},
				Areas: []string{
					"Chandni Chowk - Street food paradise",
					"Khan Market - Upscale dining",
					"Karim's - Historic Mughlai cuisine",
					"Connaught Place - Diverse options",
				},
				Budget: "₹50-500 per meal",
				Spice:  "Moderate to high",
			},
			"mumbai": {
				MustTry: []string{
					"Vada Pav - Mumbai's burger",
					"Pav Bhaji at Sardar Refreshments",
					"Bhel Puri at Chowpatty Beach",
					"Tiffin service experience",
				},
				Areas: []string{
					"Mohammed Ali Road - Street food",
					"Bandra - Trendy restaurants",
					"Crawford Market - Local flavors",
					"Marine Drive - Evening snacks",
				},
				Budget: "₹30-400 per meal",
				Spice:  "Moderate",
			},
		},
	}
}
