package patient

import (
	"time"

	"github.com/recordbook/recordbook/internal/domain/reconcile"
)

// BasicInfo maps to the patient_basic_info table. The coded display columns
// (gender/genderName pairs and the list mirrors) are denormalized copies kept in
// sync by the detail upsert.
type BasicInfo struct {
	ID                  int64     `db:"id" json:"id"`
	MRN                 string    `db:"mrn" json:"mrn"`
	PtName              string    `db:"pt_name" json:"ptName"`
	PtNameFull          *string   `db:"pt_name_full" json:"ptNameFull,omitempty"`
	BirthDate           *string   `db:"birth_date" json:"birthDate,omitempty"`
	Gender              *string   `db:"gender" json:"gender,omitempty"`
	GenderName          *string   `db:"gender_name" json:"genderName,omitempty"`
	MaritalStatus       *string   `db:"marital_status" json:"maritalStatus,omitempty"`
	MaritalStatusName   *string   `db:"marital_status_name" json:"maritalStatusName,omitempty"`
	Email               *string   `db:"email" json:"email,omitempty"`
	EducationNo         *string   `db:"education_no" json:"educationNo,omitempty"`
	EducationNoName     *string   `db:"education_no_name" json:"educationNoName,omitempty"`
	LowIncome           *string   `db:"low_income" json:"lowIncome,omitempty"`
	LowIncomeName       *string   `db:"low_income_name" json:"lowIncomeName,omitempty"`
	NationalityCode     *string   `db:"nationality_code" json:"nationalityCode,omitempty"`
	NationalityCodeName *string   `db:"nationality_code_name" json:"nationalityCodeName,omitempty"`
	MainLang            *string   `db:"main_lang" json:"mainLang,omitempty"`
	MainLangName        *string   `db:"main_lang_name" json:"mainLangName,omitempty"`
	Religion            *string   `db:"religion" json:"religion,omitempty"`
	ReligionName        *string   `db:"religion_name" json:"religionName,omitempty"`
	IDType              *string   `db:"id_type" json:"idType,omitempty"`
	IDTypeName          *string   `db:"id_type_name" json:"idTypeName,omitempty"`
	IDNo                *string   `db:"id_no" json:"idNo,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

// Detail maps to the patient_detail table, the editable source of truth the
// basic-info display columns are derived from.
type Detail struct {
	ID               int64     `db:"id" json:"id"`
	MRN              string    `db:"mrn" json:"mrn"`
	PtName           *string   `db:"pt_name" json:"ptName,omitempty"`
	FullName         *string   `db:"full_name" json:"fullName,omitempty"`
	BirthDate        *string   `db:"birth_date" json:"birthDate,omitempty"`
	BiologicalGender *string   `db:"biological_gender" json:"biologicalGender,omitempty"`
	MaritalStatus    *string   `db:"marital_status" json:"maritalStatus,omitempty"`
	BloodTypeABO     *string   `db:"blood_type_abo" json:"bloodTypeABO,omitempty"`
	BloodTypeRH      *string   `db:"blood_type_rh" json:"bloodTypeRH,omitempty"`
	Email            *string   `db:"email" json:"email,omitempty"`
	EducationLevel   *string   `db:"education_level" json:"educationLevel,omitempty"`
	IncomeLevel      *string   `db:"income_level" json:"incomeLevel,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type Nationality struct {
	ID              int64     `json:"id"`
	MRN             string    `json:"mrn"`
	NationalityCode string    `json:"nationalityCode"`
	IsPrimary       bool      `json:"isPrimary"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Language struct {
	ID           int64     `json:"id"`
	MRN          string    `json:"mrn"`
	LanguageCode string    `json:"languageCode"`
	IsPrimary    bool      `json:"isPrimary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Religion struct {
	ID           int64     `json:"id"`
	MRN          string    `json:"mrn"`
	ReligionCode string    `json:"religionCode"`
	IsPrimary    bool      `json:"isPrimary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type IDDocument struct {
	ID        int64     `json:"id"`
	MRN       string    `json:"mrn"`
	IDType    string    `json:"idType"`
	IDNumber  string    `json:"idNumber"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput is the POST /patient-basic-info request body.
type CreateInput struct {
	MRN    string `json:"mrn"`
	PtName string `json:"ptName"`
}

// List items submitted by the client. An id at or above the placeholder
// threshold marks a row the client created but never persisted.

type NationalityInput struct {
	ID              int64  `json:"id"`
	NationalityCode string `json:"nationalityCode"`
	IsPrimary       bool   `json:"isPrimary"`
}

type LanguageInput struct {
	ID           int64  `json:"id"`
	LanguageCode string `json:"languageCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type ReligionInput struct {
	ID           int64  `json:"id"`
	ReligionCode string `json:"religionCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type IDDocumentInput struct {
	ID        int64  `json:"id"`
	IDType    string `json:"idType"`
	IDNumber  string `json:"idNumber"`
	IsPrimary bool   `json:"isPrimary"`
}

// DetailPayload is the POST /patient-detail request body. Scalar fields are
// pointers so an absent field leaves the stored value untouched; list fields are
// pointers to slices so an absent list is distinguishable from a present empty
// one (which deletes every stored row of that type).
type DetailPayload struct {
	MRN              string               `json:"mrn"`
	PtName           *string              `json:"ptName"`
	FullName         *string              `json:"fullName"`
	BirthDate        *string              `json:"birthDate"`
	BiologicalGender *string              `json:"biologicalGender"`
	MaritalStatus    *string              `json:"maritalStatus"`
	BloodTypeABO     *string              `json:"bloodTypeABO"`
	BloodTypeRH      *string              `json:"bloodTypeRH"`
	Email            *string              `json:"email"`
	EducationLevel   *string              `json:"educationLevel"`
	IncomeLevel      *string              `json:"incomeLevel"`
	Nationalities    *[]NationalityInput  `json:"nationalities"`
	Languages        *[]LanguageInput     `json:"languages"`
	Religions        *[]ReligionInput     `json:"religions"`
	IDDocuments      *[]IDDocumentInput   `json:"idDocuments"`
}

// MergedDetail is the detail row together with the stored state of all four
// attribute collections, as returned after a save and on record reads.
type MergedDetail struct {
	Detail
	Nationalities []Nationality `json:"nationalities"`
	Languages     []Language    `json:"languages"`
	Religions     []Religion    `json:"religions"`
	IDDocuments   []IDDocument  `json:"idDocuments"`
}

// Record is the GET /patient-basic-info/:mrn response shape.
type Record struct {
	BasicInfo
	PatientDetail *MergedDetail `json:"patientDetail,omitempty"`
}

func nationalityFromRow(r reconcile.Row) Nationality {
	return Nationality{ID: r.ID, MRN: r.Key, NationalityCode: r.Code, IsPrimary: r.IsPrimary, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func languageFromRow(r reconcile.Row) Language {
	return Language{ID: r.ID, MRN: r.Key, LanguageCode: r.Code, IsPrimary: r.IsPrimary, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func religionFromRow(r reconcile.Row) Religion {
	return Religion{ID: r.ID, MRN: r.Key, ReligionCode: r.Code, IsPrimary: r.IsPrimary, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func idDocumentFromRow(r reconcile.Row) IDDocument {
	return IDDocument{ID: r.ID, MRN: r.Key, IDType: r.Code, IDNumber: r.Extra, IsPrimary: r.IsPrimary, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func nationalityItems(in []NationalityInput) []reconcile.Item {
	items := make([]reconcile.Item, 0, len(in))
	for _, n := range in {
		items = append(items, reconcile.Item{Ref: reconcile.RefFromClientID(n.ID), Code: n.NationalityCode, IsPrimary: n.IsPrimary})
	}
	return items
}

func languageItems(in []LanguageInput) []reconcile.Item {
	items := make([]reconcile.Item, 0, len(in))
	for _, l := range in {
		items = append(items, reconcile.Item{Ref: reconcile.RefFromClientID(l.ID), Code: l.LanguageCode, IsPrimary: l.IsPrimary})
	}
	return items
}

func religionItems(in []ReligionInput) []reconcile.Item {
	items := make([]reconcile.Item, 0, len(in))
	for _, r := range in {
		items = append(items, reconcile.Item{Ref: reconcile.RefFromClientID(r.ID), Code: r.ReligionCode, IsPrimary: r.IsPrimary})
	}
	return items
}

func idDocumentItems(in []IDDocumentInput) []reconcile.Item {
	items := make([]reconcile.Item, 0, len(in))
	for _, d := range in {
		items = append(items, reconcile.Item{Ref: reconcile.RefFromClientID(d.ID), Code: d.IDType, Extra: d.IDNumber, IsPrimary: d.IsPrimary})
	}
	return items
}
