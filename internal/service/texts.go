package service

import (
	"fmt"
	"strings"

	"travelsathi/internal/modules/catalog"
)

const welcomeText = "Namaste! 🙏 I am TravelSathi, your intelligent travel companion for incredible India! \n\nI can help you with:\n🏛️ Destination information\n🌤️ Weather updates\n🍛 Local cuisine recommendations\n🚨 Emergency contacts\n📍 Popular attractions\n\nWhere would you like to explore today?"

const offlineApology = "I apologize, but I need an internet connection to provide detailed travel information. Please check your connection and try again."

// QuickReplies are suggested opening prompts.
var QuickReplies = []string{
	"Popular destinations in India",
	"Tell me about Jaipur",
	"Plan a trip to Delhi",
	"Best food in Mumbai",
	"Local experiences in Goa",
	"Budget breakdown for Kerala",
}

func formatFoodGuide(name string, g catalog.FoodGuide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍛 **%s Food Guide**\n\n", name)
	b.WriteString("🔥 **Must-Try Dishes:**\n")
	for _, d := range g.MustTry {
		fmt.Fprintf(&b, "• %s\n", d)
	}
	b.WriteString("\n🏪 **Food Areas:**\n")
	for _, a := range g.Areas {
		fmt.Fprintf(&b, "• %s\n", a)
	}
	fmt.Fprintf(&b, "\n💰 **Budget:** %s\n", g.Budget)
	fmt.Fprintf(&b, "🌶️ **Spice Level:** %s", g.Spice)
	return b.String()
}

const indiaFoodGuide = `🍛 **Indian Cuisine Guide**

🔥 **Popular Indian Dishes:**
• Biryani - Aromatic rice dish
• Masala Dosa - South Indian crepe
• Rajma Chawal - Kidney bean curry with rice
• Samosas - Fried pastries with filling

🥘 **Regional Specialties:**
• North: Naan, Tandoori, Lassi
• South: Dosa, Idli, Sambhar
• West: Dhokla, Thali, Fafda
• East: Rosogolla, Fish curry, Momos

💡 **Tip:** Always try local street food but ensure it's from busy, clean stalls!`

const planningHelp = `📋 **Trip Planning Assistant**

🗓️ **Planning Your Perfect Trip:**

**Step 1: Tell me your destination**
• "Plan a trip to Jaipur"
• "3-day itinerary for Delhi"
• "Budget trip to Mumbai"

**Step 2: Specify preferences (optional)**
• Budget: budget/mid-range/luxury
• Duration: weekend/week/custom days
• Style: relaxed/moderate/packed

**Step 3: I'll create your personalized itinerary!**

**💡 Example queries:**
• "Plan a luxury 5-day trip to Goa"
• "Budget weekend in Bangalore"
• "Relaxed week in Kerala"

**🎒 What I'll include:**
• Day-by-day schedule with timings
• Cost estimates and budget breakdown
• Local experiences and attractions
• Transportation and food recommendations
• Cultural tips and best practices

Which destination would you like to explore? 🌟`

const experiencesHelp = `🌟 **Local Experiences Guide**

To get specific local experiences, tell me your destination:
• "Local experiences in Jaipur"
• "Things to do in Delhi"
• "Unique activities in Mumbai"

**🎯 Popular Experience Categories:**

**🎨 Cultural Immersion:**
• Traditional craft workshops
• Cooking classes with local families
• Folk dance and music performances
• Temple and spiritual experiences

**🏞️ Nature & Adventure:**
• Guided heritage walks
• Photography tours
• Village and rural experiences
• Wildlife and nature activities

**🍛 Food & Culinary:**
• Street food tours with locals
• Traditional cooking lessons
• Market visits with chefs
• Regional specialty tastings

**👥 Community Connections:**
• Homestays with local families
• Language exchange meetups
• Volunteer opportunities
• Local festival participations

Which destination interests you for unique local experiences? 🌟`

const budgetHelp = `💰 **Budget Planning Guide**

To get a detailed budget breakdown, specify:
• "Budget breakdown for 3 days in Delhi"
• "Luxury budget for week in Goa"
• "Mid-range 5-day Mumbai trip cost"

**💡 Quick Budget Estimates (per person/day):**

**🏨 Budget Travelers (₹1,000-2,000/day):**
• Hostels/budget hotels
• Local transport & street food
• Free attractions & walking tours

**🏛️ Mid-Range (₹2,000-5,000/day):**
• 3-star hotels or good guesthouses
• Mix of local & restaurant dining
• Paid attractions & some guided tours

**✨ Luxury (₹5,000+/day):**
• 4-5 star hotels or resorts
• Fine dining & premium experiences
• Private transport & exclusive access

**📊 Cost Factors:**
• Destination popularity & season
• Accommodation style & location
• Transportation choices
• Dining preferences & shopping
• Activities & experience bookings

Which destination and budget range would you like me to detail? 🎯`
