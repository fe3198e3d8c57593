package artist

import (
	"context"

	"github.com/recordbook/recordbook/internal/domain/reconcile"
	"github.com/recordbook/recordbook/internal/platform/api"
)

type sampleArtist struct {
	artistID  string
	stageName string
	basic     map[string]*string
	detail    map[string]*string
	documents []reconcile.Item
}

func str(s string) *string { return &s }

func sampleArtists() []sampleArtist {
	return []sampleArtist{
		{
			artistID:  "ART001",
			stageName: "小雨",
			basic: map[string]*string{
				"real_name":             str("王小雨"),
				"birth_date":            str("1995-03-15"),
				"gender":                str("2"),
				"gender_name":           str("女"),
				"marital_status":        str("20"),
				"marital_status_name":   str("未婚"),
				"email":                 str("xiaoyuwang@gmail.com"),
				"education_no":          str("5"),
				"education_no_name":     str("大學"),
				"low_income":            str("00"),
				"low_income_name":       str("一般戶"),
				"nationality_code":      str("TWN"),
				"nationality_code_name": str("台灣"),
				"main_lang":             str("zh"),
				"main_lang_name":        str("中文"),
				"religion":              str("buddhism"),
				"religion_name":         str("佛教"),
				"id_type":               str("id_card"),
				"id_type_name":          str("身分證"),
				"id_no":                 str("A123456789"),
			},
			detail: map[string]*string{
				"stage_name":        str("小雨"),
				"full_name":         str("王小雨"),
				"birth_date":        str("1995-03-15"),
				"biological_gender": str("2"),
				"marital_status":    str("20"),
				"blood_type_abo":    str("O"),
				"blood_type_rh":     str("P"),
				"email":             str("xiaoyuwang@gmail.com"),
				"education_level":   str("5"),
				"income_level":      str("00"),
			},
			documents: []reconcile.Item{
				{Ref: reconcile.NewRef(), Code: "id_card", Extra: "A123456789", IsPrimary: true},
				{Ref: reconcile.NewRef(), Code: "health_card", Extra: "3253123145211123456"},
			},
		},
		{
			artistID:  "ART002",
			stageName: "阿明",
			basic: map[string]*string{
				"real_name":             str("陳明輝"),
				"birth_date":            str("1992-07-22"),
				"gender":                str("1"),
				"gender_name":           str("男"),
				"marital_status":        str("10"),
				"marital_status_name":   str("已婚"),
				"email":                 str("mingchen@gmail.com"),
				"education_no":          str("6"),
				"education_no_name":     str("研究所"),
				"low_income":            str("00"),
				"low_income_name":       str("一般戶"),
				"nationality_code":      str("TWN"),
				"nationality_code_name": str("台灣"),
				"main_lang":             str("zh"),
				"main_lang_name":        str("中文"),
				"religion":              str("catholic"),
				"religion_name":         str("天主教"),
				"id_type":               str("passport"),
				"id_type_name":          str("護照"),
				"id_no":                 str("B987654321"),
			},
			documents: []reconcile.Item{
				{Ref: reconcile.NewRef(), Code: "passport", Extra: "32531234562", IsPrimary: true},
			},
		},
	}
}

// Seed inserts the sample artists. Artists that already exist are skipped, so
// re-running the seed command is safe. Returns the number created.
func Seed(ctx context.Context, repo Repository, lists reconcile.Store) (int, error) {
	created := 0
	for _, s := range sampleArtists() {
		_, err := repo.GetBasicInfo(ctx, s.artistID)
		if err == nil {
			continue
		}
		if !api.IsNotFound(err) {
			return created, err
		}

		if _, err := repo.CreateBasicInfo(ctx, s.artistID, s.stageName); err != nil {
			return created, err
		}
		if err := repo.UpdateBasicInfoColumns(ctx, s.artistID, s.basic); err != nil {
			return created, err
		}
		if s.detail != nil {
			if _, err := repo.UpsertDetail(ctx, s.artistID, s.detail); err != nil {
				return created, err
			}
		}
		for _, doc := range s.documents {
			if _, err := lists.Insert(ctx, idDocumentSpec, s.artistID, doc); err != nil {
				return created, err
			}
		}
		created++
	}
	return created, nil
}
