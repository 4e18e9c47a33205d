package service

import (
	"fmt"

	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/pkg/utils"
)

// SummarizeWeather renders the one-line weather summary returned with advice.
// Temperature and humidity are whole numbers, rounded half away from zero.
func SummarizeWeather(w domain.WeatherReading, lang domain.Language) string {
	temp := utils.RoundWhole(w.Temperature)
	humidity := utils.RoundWhole(w.Humidity)

	switch lang {
	case domain.LanguageEnglish:
		return fmt.Sprintf("%d°C, %d%% humidity", temp, humidity)
	case domain.LanguageArabic:
		return fmt.Sprintf("%d°C، رطوبة %d%%", temp, humidity)
	default:
		panic(domain.UnsupportedLanguage(lang))
	}
}

// WeatherConditions renders the multi-line conditions block embedded in the
// user instruction. Rainfall keeps one decimal place.
func WeatherConditions(w domain.WeatherReading, lang domain.Language, location string) string {
	temp := utils.RoundWhole(w.Temperature)
	humidity := utils.RoundWhole(w.Humidity)
	rainfall := utils.FormatFixed(w.Rainfall, 1)
	wind := utils.RoundWhole(w.WindSpeed)

	switch lang {
	case domain.LanguageEnglish:
		return fmt.Sprintf(`Current weather conditions in %s:
- Temperature: %d°C
- Humidity: %d%%
- Rainfall: %s mm
- Wind Speed: %d km/h`, location, temp, humidity, rainfall, wind)
	case domain.LanguageArabic:
		return fmt.Sprintf(`الظروف الجوية الحالية في %s:
- درجة الحرارة: %d°C
- الرطوبة: %d%%
- هطول الأمطار: %s ملم
- سرعة الرياح: %d كم/ساعة`, location, temp, humidity, rainfall, wind)
	default:
		panic(domain.UnsupportedLanguage(lang))
	}
}
