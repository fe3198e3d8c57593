package codes

import (
	"context"
	"fmt"
)

type seedOption struct {
	category string
	code     string
	name     string
	order    int
}

var seedOptions = []seedOption{
	// 性別
	{CategoryBiologicalGender, "1", "男", 1},
	{CategoryBiologicalGender, "2", "女", 2},
	{CategoryBiologicalGender, "0", "未知", 3},
	{CategoryBiologicalGender, "9", "未說明性別", 4},

	// 婚姻狀況
	{CategoryMaritalStatus, "10", "已婚", 1},
	{CategoryMaritalStatus, "20", "未婚", 2},
	{CategoryMaritalStatus, "30", "喪偶", 3},
	{CategoryMaritalStatus, "40", "離婚", 4},
	{CategoryMaritalStatus, "50", "分居", 5},
	{CategoryMaritalStatus, "60", "同居", 6},
	{CategoryMaritalStatus, "70", "拒絕透露", 7},
	{CategoryMaritalStatus, "99", "未說明", 8},

	// ABO血型
	{CategoryBloodTypeABO, "A", "A型", 1},
	{CategoryBloodTypeABO, "B", "B型", 2},
	{CategoryBloodTypeABO, "O", "O型", 3},
	{CategoryBloodTypeABO, "AB", "AB型", 4},
	{CategoryBloodTypeABO, "U", "不詳", 5},
	{CategoryBloodTypeABO, "N", "未查", 6},

	// RH血型
	{CategoryBloodTypeRH, "N", "RH陰性", 1},
	{CategoryBloodTypeRH, "P", "RH陽性", 2},
	{CategoryBloodTypeRH, "U", "不詳", 3},
	{CategoryBloodTypeRH, "X", "未查", 4},

	// 教育程度
	{CategoryEducationLevel, "1", "學前教育", 1},
	{CategoryEducationLevel, "2", "國民小學", 2},
	{CategoryEducationLevel, "3", "國民中學", 3},
	{CategoryEducationLevel, "4", "高級中等", 4},
	{CategoryEducationLevel, "5", "專科", 5},
	{CategoryEducationLevel, "6", "學士", 6},
	{CategoryEducationLevel, "7", "碩士", 7},
	{CategoryEducationLevel, "8", "博士", 8},

	// 低/中收入戶
	{CategoryIncomeLevel, "01", "低收入戶", 1},
	{CategoryIncomeLevel, "02", "中低收入戶", 2},

	// 國籍
	{CategoryNationality, "ATA", "南極洲", 1},
	{CategoryNationality, "JPN", "日本", 2},
	{CategoryNationality, "TWN", "台灣", 3},
	{CategoryNationality, "KOR", "韓國", 4},
	{CategoryNationality, "USA", "美國", 5},
	{CategoryNationality, "CAN", "加拿大", 6},
	{CategoryNationality, "BEL", "比利時", 7},

	// 語言
	{CategoryLanguage, "zh", "中文", 1},
	{CategoryLanguage, "en", "英文", 2},
	{CategoryLanguage, "ja", "日文", 3},
	{CategoryLanguage, "es", "西班牙文", 4},
	{CategoryLanguage, "ko", "韓文", 5},
	{CategoryLanguage, "other", "其他", 6},

	// 宗教
	{CategoryReligion, "buddhism", "佛教", 1},
	{CategoryReligion, "taoism", "道教", 2},
	{CategoryReligion, "catholic", "天主教", 3},
	{CategoryReligion, "christian", "基督教", 4},
	{CategoryReligion, "islam", "伊斯蘭教", 5},
	{CategoryReligion, "other", "其他", 6},

	// 身份證件類型
	{CategoryIDType, "id_card", "身分證", 1},
	{CategoryIDType, "passport", "護照", 2},
	{CategoryIDType, "health_card", "健保卡", 3},
}

// Seed upserts the full code-option reference data. Safe to run repeatedly.
func Seed(ctx context.Context, repo Repository) (int, error) {
	count := 0
	for _, s := range seedOptions {
		o := &Option{
			Category:     s.category,
			Code:         s.code,
			Name:         s.name,
			DisplayOrder: s.order,
			IsActive:     true,
		}
		if err := repo.Upsert(ctx, o); err != nil {
			return count, fmt.Errorf("seed %s/%s: %w", s.category, s.code, err)
		}
		count++
	}
	return count, nil
}
