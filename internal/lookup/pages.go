package lookup

import (
	"fmt"
	"strings"
)

const defaultBestTime = "**Best Time:** October to March (generally pleasant weather across India), **Monsoon:** June-September"

const defaultAttractions = "**Popular Attractions:** Major temples, historical sites, local markets, and cultural landmarks. Check with local tourism office for specific recommendations."

const defaultCulturalTips = "Respect local customs and traditions. Learn a few basic phrases in the local language. Dress modestly when visiting religious sites."

const transportInfo = `**Getting Around:**
🚇 **Metro/Local Trains:** Most efficient for long distances
🚗 **Taxi/Rideshare:** Uber, Ola available in major cities
🛺 **Auto-rickshaw:** Great for short distances, always negotiate or use meter
🚌 **City Buses:** Economical but can be crowded
🚲 **Bike Rentals:** Available in tourist areas

**Airport Connectivity:** Most cities have metro/bus connections to airports
**Booking Tips:** Use official apps for trains (IRCTC), flights (multiple options)`

const popularDestinationsPage = `🇮🇳 **Popular Destinations in India**

**🏰 Golden Triangle:**
• Delhi - Capital with rich history
• Agra - Home to the Taj Mahal
• Jaipur - The Pink City of Rajasthan

**🏖️ Beach Destinations:**
• Goa - Beaches, nightlife, Portuguese culture
• Kerala Backwaters - Serene waterways
• Andaman Islands - Pristine beaches

**🏔️ Hill Stations:**
• Shimla - Queen of Hills
• Darjeeling - Tea gardens & mountain views
• Ooty - Nilgiri Mountain retreat

**🕌 Cultural Heritage:**
• Varanasi - Spiritual capital
• Hampi - Ancient Vijayanagara Empire
• Khajuraho - Temple architecture

**🌴 South India:**
• Kerala - God's Own Country
• Tamil Nadu - Temple trails
• Karnataka - Diverse landscapes

**Adventure & Nature:**
• Ladakh - High altitude desert
• Rishikesh - Yoga & adventure sports
• Jim Corbett - Wildlife sanctuary

Would you like detailed information about any specific destination?`

func emergencyPage(dest string) string {
	return fmt.Sprintf(`🚨 **Emergency Numbers for %[1]s**

**🚨 Universal Emergency Numbers:**
• **Police:** 100
• **Ambulance:** 108
• **Fire Brigade:** 101
• **Tourist Helpline:** 1363
• **National Emergency:** 112
• **Women's Helpline:** 1091
• **Child Helpline:** 1098

**📞 Important Services:**
• **Railway Enquiry:** 139
• **Gas Leak:** 1906
• **Disaster Management:** 108
• **Blood Bank:** 104

**🏥 Medical Emergency Tips:**
• Keep emergency contacts in local language
• Note nearest hospital address
• Carry medical insurance documents
• Have local SIM card for emergency calls

**📍 %[1]s Specific:**
Contact local police station, tourist information center, or your embassy for local emergency services.

**💡 Travel Safety:**
• Share itinerary with family/friends
• Keep copies of important documents
• Have local emergency contacts
• Download offline maps

Stay safe and enjoy your travels! 🙏`, dest)
}

func destinationPage(dest, overview, bestTime, attractions, culturalTips, transport string) string {
	return fmt.Sprintf(`📍 **%s**

%s

⏰ %s

%s

🎭 %s

🚗 %s

💡 **Quick Tips:**
• Always carry valid ID and emergency contacts
• Respect local customs and dress codes
• Bargain politely in markets
• Try local cuisine from busy, clean places
• Stay hydrated and carry basic medicines

Need specific information about weather, food, or emergency contacts? Just ask! 🙏`,
		strings.ToUpper(dest), overview, bestTime, attractions, culturalTips, transport)
}

func fallbackPage(query string) string {
	return fmt.Sprintf(`🗺️ **Travel Information for "%s"**

I'd love to help you explore this destination! Here's some general travel guidance:

**🎯 General Travel Tips for India:**
• **Documentation:** Always carry valid ID (Aadhaar, Passport, License)
• **Health:** Stay hydrated, eat at clean places, carry basic medicines
• **Transportation:** Metro, trains, and official taxis are reliable
• **Culture:** Respect local customs, dress modestly at religious sites
• **Communication:** English is widely understood in tourist areas

**🆘 Universal Emergency Numbers:**
• Police: 100 | Ambulance: 108 | Fire: 101
• Tourist Helpline: 1363 | National Emergency: 112

**💡 For detailed destination info, try asking:**
• "Tell me about [City Name]"
• "Weather in [City]"
• "Best food in [City]"
• "Emergency numbers for [City]"
• "Popular destinations in India"

Which specific destination would you like to explore? I can provide detailed information about major Indian cities and tourist spots! 🌟`, strings.TrimSpace(query))
}
