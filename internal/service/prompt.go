package service

import (
	"fmt"
	"strings"

	"github.com/desertfarm/backend/internal/domain"
)

const systemPromptEn = `You are an expert agricultural advisor specializing in UAE farming and hot desert agriculture.

You have deep knowledge of:
- Crops suitable for UAE's hot and arid climate
- Modern water-efficient irrigation systems (drip, sprinkler, hydroponics)
- Sandy and saline soil management
- Protected agriculture (greenhouses) for extreme heat
- Optimal planting schedules in the UAE
- Common pests and diseases in the region and their control

Provide detailed, practical advice in English that includes:
1. Analysis of the current situation based on weather and location
2. Specific, immediately actionable recommendations
3. Irrigation and fertilization advice if relevant
4. Warnings about potential risks
5. Tips for best results

Use clear, direct language. Make your response comprehensive (4-8 paragraphs) with practical details.`

const systemPromptAr = `أنت مستشار زراعي خبير متخصص في الزراعة في دولة الإمارات العربية المتحدة والمناطق الصحراوية الحارة.

لديك معرفة عميقة بـ:
- المحاصيل المناسبة للمناخ الحار والجاف في الإمارات
- أنظمة الري الحديثة والموفرة للمياه (التنقيط، الرش، الهيدروبونيك)
- إدارة التربة الرملية والملحية
- الزراعة المحمية (البيوت المحمية) لمواجهة الحرارة الشديدة
- مواعيد الزراعة المثالية في الإمارات
- الآفات والأمراض الشائعة في المنطقة وطرق مكافحتها

قدم نصائح تفصيلية وعملية باللغة العربية تشمل:
1. تحليل الوضع الحالي بناءً على الطقس والموقع
2. توصيات محددة وقابلة للتطبيق فوراً
3. نصائح للري والتسميد إن كانت ذات صلة
4. تحذيرات من المخاطر المحتملة
5. نصائح للحصول على أفضل النتائج

استخدم لغة عربية واضحة ومباشرة. اجعل الإجابة شاملة (4-8 فقرات) مع تفاصيل عملية.`

const userPromptEn = `%s

Farmer's question: %s

Provide detailed, comprehensive farming advice (4-8 paragraphs) specific to %s considering:
- The current weather conditions stated above
- UAE's hot desert climate
- Region-specific challenges (water scarcity, sandy soil, extreme heat)
- Best practices for farming in this environment

Be detailed and practical. Provide specific, actionable steps.`

const userPromptAr = `%s

سؤال المزارع: %s

قدم نصيحة زراعية تفصيلية وشاملة (4-8 فقرات) خاصة بـ%s مع مراعاة:
- الظروف الجوية الحالية المذكورة أعلاه
- المناخ الصحراوي الحار للإمارات
- التحديات الخاصة بالمنطقة (نقص المياه، التربة الرملية، الحرارة العالية)
- أفضل الممارسات للزراعة في هذه البيئة

كن مفصلاً وعملياً. قدم خطوات محددة وقابلة للتطبيق.`

// Prompt is the system instruction plus the user turn. The two halves are
// sent to the provider separately and must never be merged.
type Prompt struct {
	System string
	User   string
}

// SystemPrompt returns the static role description for lang
func SystemPrompt(lang domain.Language) string {
	switch lang {
	case domain.LanguageEnglish:
		return systemPromptEn
	case domain.LanguageArabic:
		return systemPromptAr
	default:
		panic(domain.UnsupportedLanguage(lang))
	}
}

// LocationLabel resolves the label used inside prompts, falling back to a
// localized "your location" when the reading carries none.
func LocationLabel(w domain.WeatherReading, lang domain.Language) string {
	if name := strings.TrimSpace(w.Location()); name != "" {
		return name
	}
	switch lang {
	case domain.LanguageEnglish:
		return "your location"
	case domain.LanguageArabic:
		return "موقعك"
	default:
		panic(domain.UnsupportedLanguage(lang))
	}
}

// ComposePrompt builds the two-part prompt for a farmer query. The query is
// embedded verbatim.
func ComposePrompt(query string, lang domain.Language, w domain.WeatherReading, location string) Prompt {
	if strings.TrimSpace(location) == "" {
		location = LocationLabel(domain.WeatherReading{}, lang)
	}
	conditions := WeatherConditions(w, lang, location)

	var user string
	switch lang {
	case domain.LanguageEnglish:
		user = fmt.Sprintf(userPromptEn, conditions, query, location)
	case domain.LanguageArabic:
		user = fmt.Sprintf(userPromptAr, conditions, query, location)
	default:
		panic(domain.UnsupportedLanguage(lang))
	}

	return Prompt{
		System: SystemPrompt(lang),
		User:   user,
	}
}
