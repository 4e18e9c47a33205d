package service

import (
	"fmt"
	"time"

	"github.com/desertfarm/backend/internal/domain"
)

// uaeCrops is the planting calendar for open-field and protected farming in
// the UAE. The cool season (Sep-Apr) carries most plantings.
var uaeCrops = []domain.CropInfo{
	{
		ID: "tomato", NameEn: "Tomato", NameAr: "طماطم",
		PlantingMonths: []int{9, 10, 11}, HarvestMonths: []int{12, 1, 2, 3, 4},
		Category:      "vegetable",
		DescriptionEn: "Best grown in the cool season; use shade net and drip irrigation.",
		DescriptionAr: "يزرع في الموسم البارد؛ استخدم شبك التظليل والري بالتنقيط.",
	},
	{
		ID: "cucumber", NameEn: "Cucumber", NameAr: "خيار",
		PlantingMonths: []int{9, 10, 1, 2}, HarvestMonths: []int{11, 12, 3, 4},
		Category:      "vegetable",
		DescriptionEn: "Thrives in greenhouses; sensitive to salinity.",
		DescriptionAr: "ينمو جيداً في البيوت المحمية؛ حساس للملوحة.",
	},
	{
		ID: "eggplant", NameEn: "Eggplant", NameAr: "باذنجان",
		PlantingMonths: []int{8, 9, 10}, HarvestMonths: []int{11, 12, 1, 2, 3},
		Category:      "vegetable",
		DescriptionEn: "Tolerates heat better than most vegetables.",
		DescriptionAr: "يتحمل الحرارة أكثر من معظم الخضروات.",
	},
	{
		ID: "pepper", NameEn: "Sweet Pepper", NameAr: "فلفل حلو",
		PlantingMonths: []int{9, 10}, HarvestMonths: []int{12, 1, 2, 3},
		Category: "vegetable",
	},
	{
		ID: "okra", NameEn: "Okra", NameAr: "بامية",
		PlantingMonths: []int{2, 3, 4, 8}, HarvestMonths: []int{5, 6, 7, 10, 11},
		Category:      "vegetable",
		DescriptionEn: "A summer crop that handles high temperatures.",
		DescriptionAr: "محصول صيفي يتحمل درجات الحرارة العالية.",
	},
	{
		ID: "watermelon", NameEn: "Watermelon", NameAr: "بطيخ",
		PlantingMonths: []int{1, 2, 3}, HarvestMonths: []int{4, 5, 6},
		Category: "fruit",
	},
	{
		ID: "melon", NameEn: "Melon", NameAr: "شمام",
		PlantingMonths: []int{1, 2, 3}, HarvestMonths: []int{4, 5, 6},
		Category: "fruit",
	},
	{
		ID: "onion", NameEn: "Onion", NameAr: "بصل",
		PlantingMonths: []int{10, 11}, HarvestMonths: []int{3, 4},
		Category: "vegetable",
	},
	{
		ID: "lettuce", NameEn: "Lettuce", NameAr: "خس",
		PlantingMonths: []int{10, 11, 12}, HarvestMonths: []int{12, 1, 2},
		Category:      "leafy",
		DescriptionEn: "Short cycle; well suited to hydroponic systems.",
		DescriptionAr: "دورة قصيرة؛ مناسب لأنظمة الزراعة المائية.",
	},
	{
		ID: "date-palm", NameEn: "Date Palm", NameAr: "نخيل التمر",
		PlantingMonths: []int{3, 4, 9, 10}, HarvestMonths: []int{7, 8, 9},
		Category:      "tree",
		DescriptionEn: "The UAE's signature crop; offshoots are planted in spring or autumn.",
		DescriptionAr: "المحصول الأبرز في الإمارات؛ تزرع الفسائل في الربيع أو الخريف.",
	},
	{
		ID: "alfalfa", NameEn: "Alfalfa", NameAr: "برسيم",
		PlantingMonths: []int{10, 11}, HarvestMonths: []int{1, 2, 3, 4, 5},
		Category: "fodder",
	},
	{
		ID: "mango", NameEn: "Mango", NameAr: "مانجو",
		PlantingMonths: []int{2, 3}, HarvestMonths: []int{6, 7},
		Category: "tree",
	},
}

// CropCalendar serves the static crop planting calendar
type CropCalendar struct {
	crops []domain.CropInfo
	now   func() time.Time
}

// NewCropCalendar creates the UAE crop calendar
func NewCropCalendar() *CropCalendar {
	return &CropCalendar{
		crops: uaeCrops,
		now:   time.Now,
	}
}

// All returns every crop in the calendar
func (c *CropCalendar) All() []domain.CropInfo {
	out := make([]domain.CropInfo, len(c.crops))
	copy(out, c.crops)
	return out
}

// ByMonth returns the crops planted in month (1-12)
func (c *CropCalendar) ByMonth(month int) ([]domain.CropInfo, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("crops: invalid month %d", month)
	}

	out := make([]domain.CropInfo, 0)
	for _, crop := range c.crops {
		if crop.PlantedIn(month) {
			out = append(out, crop)
		}
	}
	return out, nil
}

// CurrentSeason returns the crops planted in the current month
func (c *CropCalendar) CurrentSeason() []domain.CropInfo {
	crops, _ := c.ByMonth(int(c.now().Month()))
	return crops
}
