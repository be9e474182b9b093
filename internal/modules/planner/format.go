// README: Markup text builders for itineraries, experiences and budget pages.
package planner

import (
	"fmt"
	"strings"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/types"
)

var categoryIcons = map[catalog.Category]string{
	catalog.CategorySightseeing: "🏛️",
	catalog.CategoryCulture:     "🎭",
	catalog.CategoryFood:        "🍛",
	catalog.CategoryShopping:    "🛍️",
	catalog.CategoryAdventure:   "⛰️",
	catalog.CategoryTransport:   "🚗",
}

func categoryIcon(c catalog.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "📍"
}

func dayTitle(day int, name string) string {
	return fmt.Sprintf("Day %d - %s Exploration", day, name)
}

func travelers(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d persons", n)
	}
	return fmt.Sprintf("%d person", n)
}

// formatItinerary renders day plans. The headline total is rate × days and is
// not reconciled with the scheduled activity costs.
func formatItinerary(name string, prefs Preferences, days []DayPlan, rate types.Rupees, profile catalog.Profile) string {
	total := rate * types.Rupees(prefs.Days)

	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ **%d-Day %s Itinerary**\n\n", prefs.Days, name)
	fmt.Fprintf(&b, "**Travel Style:** %s | **Budget:** %s (%s total)\n", prefs.Style, prefs.Tier, total)
	fmt.Fprintf(&b, "**Travelers:** %s\n\n", travelers(prefs.Travelers))

	var activities types.Rupees
	for _, d := range days {
		activities += d.EstimatedCost
		fmt.Fprintf(&b, "**📅 %s**\n", d.Title)
		fmt.Fprintf(&b, "*Estimated Cost: %s*\n\n", d.EstimatedCost)
		for _, a := range d.Activities {
			fmt.Fprintf(&b, "%s **%s** - %s\n", categoryIcon(a.Category), a.Time(), a.Name)
			fmt.Fprintf(&b, "   %s (%s)\n", a.Description, a.DurationLabel())
			fmt.Fprintf(&b, "   *Cost: %s*\n\n", a.Cost)
		}
		fmt.Fprintf(&b, "💡 **Day %d Tips:**\n", d.Day)
		for _, tip := range d.Tips {
			fmt.Fprintf(&b, "• %s\n", tip)
		}
		b.WriteString("\n")
	}

	b.WriteString("**💰 Budget Breakdown:**\n")
	fmt.Fprintf(&b, "• Activities: %s\n", activities)
	fmt.Fprintf(&b, "• Food & Misc: %s\n", types.FormatAmount(total.Scale(foodMiscShare)))
	fmt.Fprintf(&b, "• Transport: %s\n", types.FormatAmount(total.Scale(transportShare)))
	fmt.Fprintf(&b, "• Local transport: %s/day | Airport transfer: %s\n\n", profile.LocalTransportCost, profile.AirportTransportCost)

	b.WriteString("**📱 Helpful Apps:**\n")
	b.WriteString("• IRCTC (train bookings) • Ola/Uber (taxis)\n")
	b.WriteString("• Zomato (food) • Google Translate\n\n")
	b.WriteString("*Want to modify this itinerary? Just let me know your preferences!* 🌟")
	return b.String()
}

func genericItinerary(name string, prefs Preferences) string {
	return fmt.Sprintf(`🗓️ **%d-Day %s Travel Plan**

**Travel Style:** %s | **Budget:** %s
**Travelers:** %s

**🎯 General Itinerary Framework:**

**Day 1 - Arrival & City Center**
• Morning: Arrive, check-in, local orientation
• Afternoon: Major landmarks and city center
• Evening: Local cuisine experience

**Day 2+ - Deep Exploration**
• Cultural sites and museums
• Local markets and shopping areas
• Traditional food experiences
• Natural attractions (if available)

**📋 Essential Planning Steps:**
1. **Research** local customs and weather
2. **Book** accommodations and major attractions
3. **Download** offline maps and translation apps
4. **Pack** appropriate clothing and essentials
5. **Share** itinerary with family/friends

**💡 Pro Tips:**
• Book train/flight tickets 2-8 weeks in advance
• Carry both cash and cards
• Learn basic local phrases
• Keep digital copies of important documents
• Have local emergency contacts

**💰 Estimated Daily Budget:**
• Budget: ₹1,000-2,000 per person
• Mid-range: ₹2,000-4,000 per person
• Luxury: ₹4,000+ per person

Would you like me to create a detailed day-by-day plan for %s? Just share your specific interests! 🌟`,
		prefs.Days, name, prefs.Style, prefs.Tier, travelers(prefs.Travelers), name)
}

func formatExperiences(name string, exps []string) string {
	return fmt.Sprintf("🌟 **Unique Local Experiences in %s**\n\n%s\n\n"+
		"💡 **Booking Tips:**\n"+
		"• Book through verified local tour operators\n"+
		"• Check reviews and ratings\n"+
		"• Confirm pickup/drop points\n"+
		"• Carry contact details of organizers\n\n"+
		"*These experiences offer authentic insights into local culture and lifestyle!* ✨",
		name, strings.Join(exps, "\n\n"))
}

func genericExperiences(name string) string {
	return fmt.Sprintf(`🌟 **Local Experience Ideas for %s**

🎯 **Cultural Immersion:**
• Local cooking classes
• Traditional craft workshops
• Language exchange meetups
• Religious/spiritual ceremonies

🏞️ **Nature & Adventure:**
• Guided nature walks
• Local farming experiences
• Traditional sports/games
• Sunrise/sunset viewpoints

👥 **Community Connections:**
• Village stays with families
• Local market tours with residents
• Traditional music/dance performances
• Volunteer opportunities

💡 **How to Find:**
• Ask hotel concierge for recommendations
• Use platforms like Airbnb Experiences
• Connect with local travel communities
• Visit tourist information centers

*The best experiences often come from connecting with locals!* 🤝`, name)
}

func formatBreakdown(name string, bd budget.Breakdown) string {
	c := bd.Daily
	return fmt.Sprintf(`💰 **%d-Day %s Budget (%s)**

**Daily Breakdown:**
🏨 Accommodation: %s
🍛 Food & Drinks: %s
🚗 Transportation: %s
🎯 Activities: %s
**Daily Total: %s**

**%d-Day Trip Total: %s**

**💡 Money-Saving Tips:**
• Book accommodations in advance
• Use public transport when possible
• Eat at local restaurants vs hotels
• Look for combo tickets for attractions
• Carry water bottle to avoid buying
• Use travel apps for discounts

**💳 Payment Methods:**
• UPI apps (PhonePe, Google Pay, Paytm)
• Debit/Credit cards widely accepted
• Cash still needed for street vendors
• ATMs available in all major areas

**🎒 Additional Costs to Consider:**
• Travel insurance: ₹200-500/day
• Shopping & souvenirs: ₹1,000-5,000
• Tips & service charges: 10-15%%
• Emergency fund: 10%% of total budget

*Prices may vary by season and specific location within %s* 📊`,
		bd.Days, name, bd.Tier.Title(),
		c.Accommodation, c.Food, c.Transport, c.Activities, bd.DailyTotal,
		bd.Days, bd.TripTotal, name)
}
