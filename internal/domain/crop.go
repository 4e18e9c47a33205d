package domain

// CropInfo describes when a crop is planted and harvested
type CropInfo struct {
	ID             string `json:"id"`
	NameEn         string `json:"nameEn"`
	NameAr         string `json:"nameAr"`
	PlantingMonths []int  `json:"plantingMonths"`
	HarvestMonths  []int  `json:"harvestMonths"`
	Category       string `json:"category"`
	DescriptionEn  string `json:"descriptionEn,omitempty"`
	DescriptionAr  string `json:"descriptionAr,omitempty"`
}

// PlantedIn reports whether month (1-12) is a planting month for the crop
func (c CropInfo) PlantedIn(month int) bool {
	for _, m := range c.PlantingMonths {
		if m == month {
			return true
		}
	}
	return false
}
