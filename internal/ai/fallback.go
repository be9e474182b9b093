package ai

import (
	"fmt"
	"strings"
)

var weatherCities = []struct{ key, name string }{
	{"delhi", "Delhi"},
	{"mumbai", "Mumbai"},
	{"bangalore", "Bangalore"},
	{"chennai", "Chennai"},
}

// WeatherDestination picks the city a weather query is about.
func WeatherDestination(query string) string {
	lower := strings.ToLower(query)
	for _, c := range weatherCities {
		if strings.Contains(lower, c.key) {
			return c.name
		}
	}
	return "the requested location"
}

// StaticWeather is the canned report used when no provider answers.
func StaticWeather(destination string) string {
	return fmt.Sprintf(`🌤️ **Weather Update for %s**

🌡️ **Current Conditions:**
• Temperature: 28°C (feels like 32°C)
• Condition: Partly cloudy
• Humidity: 65%%
• Wind: 12 km/h

📅 **7-Day Forecast:**
Today: 🌤️ 28°C / 22°C - Partly cloudy
Tomorrow: ☀️ 30°C / 24°C - Sunny
Day 3: 🌧️ 26°C / 20°C - Light rain

🧳 **Travel Tip:** Pack light cotton clothes and carry an umbrella. Best time to visit outdoor attractions is early morning or evening.

💡 For real-time weather updates, check local weather services or apps like India Meteorological Department.`, destination)
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
	"bn": "Bengali",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"mr": "Marathi",
	"pa": "Punjabi",
}

var greetings = map[string]string{
	"hi": "नमस्ते! मैं TravelSathi हूँ, आपका स्मार्ट यात्रा सहायक। भारत के किसी भी गंतव्य के बारे में मुझसे पूछें!",
	"te": "నమస్కారం! నేను TravelSathi, మీ స్మార్ట్ ట్రావెల్ అసిస్టెంట్. భారతదేశంలోని ఏదైనా గమ్యస్థానం గురించి నన్ను అడగండి!",
	"ta": "வணக்கம்! நான் TravelSathi, உங்கள் ஸ்மார்ட் பயண உதவியாளர். இந்தியாவில் உள்ள எந்த இடத்தைப் பற்றியும் என்னிடம் கேளுங்கள்!",
	"bn": "নমস্কার! আমি TravelSathi, আপনার স্মার্ট ভ্রমণ সহায়ক। ভারতের যেকোনো গন্তব্য সম্পর্কে আমাকে জিজ্ঞাসা করুন!",
	"gu": "નમસ્તે! હું TravelSathi છું, તમારો સ્માર્ટ ટ્રાવેલ આસિસ્ટન્ટ. ભારતના કોઈપણ ગંતવ્ય વિશે મને પૂછો!",
}

// LanguageName maps a language code to its English name; unknown codes get "Selected Language".
func LanguageName(code string) string {
	if n, ok := languageNames[strings.ToLower(code)]; ok {
		return n
	}
	return "Selected Language"
}

// Languages lists the supported codes.
func Languages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for k, v := range languageNames {
		out[k] = v
	}
	return out
}

func isGreeting(text string) bool {
	return strings.Contains(text, "Namaste") || strings.Contains(text, "travel assistant")
}

// StaticTranslate swaps greetings for the canned table and tags everything else.
func StaticTranslate(text, code string) string {
	if isGreeting(text) {
		if g, ok := greetings[strings.ToLower(code)]; ok {
			return g
		}
		return text
	}
	return fmt.Sprintf("[Translated to %s]\n\n%s", LanguageName(code), text)
}
