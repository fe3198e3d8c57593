package patient

import (
	"context"

	"github.com/recordbook/recordbook/internal/domain/codes"
	"github.com/recordbook/recordbook/internal/domain/reconcile"
	"github.com/recordbook/recordbook/internal/platform/api"
	"github.com/recordbook/recordbook/internal/platform/db"
)

// One descriptor per attribute collection: child table, code column(s), code
// category, and the patient_basic_info columns the primary row is mirrored to.
var (
	nationalitySpec = reconcile.ListSpec{
		Table:      "patient_nationality",
		KeyColumn:  "mrn",
		CodeColumn: "nationality_code",
		Category:   codes.CategoryNationality,
		MirrorCode: "nationality_code",
		MirrorName: "nationality_code_name",
	}
	languageSpec = reconcile.ListSpec{
		Table:      "patient_language",
		KeyColumn:  "mrn",
		CodeColumn: "language_code",
		Category:   codes.CategoryLanguage,
		MirrorCode: "main_lang",
		MirrorName: "main_lang_name",
	}
	religionSpec = reconcile.ListSpec{
		Table:      "patient_religion",
		KeyColumn:  "mrn",
		CodeColumn: "religion_code",
		Category:   codes.CategoryReligion,
		MirrorCode: "religion",
		MirrorName: "religion_name",
	}
	idDocumentSpec = reconcile.ListSpec{
		Table:       "patient_id_document",
		KeyColumn:   "mrn",
		CodeColumn:  "id_type",
		ExtraColumn: "id_number",
		Category:    codes.CategoryIDType,
		MirrorCode:  "id_type",
		MirrorName:  "id_type_name",
		MirrorExtra: "id_no",
	}
)

type Service struct {
	repo   Repository
	lists  reconcile.Store
	codes  *codes.Service
	runner db.Runner
}

func NewService(repo Repository, lists reconcile.Store, codeSvc *codes.Service, runner db.Runner) *Service {
	return &Service{repo: repo, lists: lists, codes: codeSvc, runner: runner}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*BasicInfo, error) {
	var missing []string
	if in.MRN == "" {
		missing = append(missing, "mrn")
	}
	if in.PtName == "" {
		missing = append(missing, "ptName")
	}
	if len(missing) > 0 {
		return nil, api.Validation(missing...)
	}
	return s.repo.CreateBasicInfo(ctx, in.MRN, in.PtName)
}

func (s *Service) List(ctx context.Context, q string, limit, offset int) ([]*BasicInfo, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListBasicInfo(ctx, q, limit, offset)
}

// Get returns the basic-info row merged with the detail row and all four
// attribute collections. A patient without a detail row yet comes back with
// PatientDetail nil.
func (s *Service) Get(ctx context.Context, mrn string) (*Record, error) {
	b, err := s.repo.GetBasicInfo(ctx, mrn)
	if err != nil {
		return nil, err
	}
	rec := &Record{BasicInfo: *b}

	d, err := s.repo.GetDetail(ctx, mrn)
	if err != nil {
		if api.IsNotFound(err) {
			return rec, nil
		}
		return nil, err
	}

	merged, err := s.mergeLists(ctx, d)
	if err != nil {
		return nil, err
	}
	rec.PatientDetail = merged
	return rec, nil
}

// UpsertDetail is the save operation behind the patient edit form. Inside one
// transaction it patches the detail row, reconciles every attribute list the
// payload carries, and rewrites the basic-info display columns from the detail
// fields and the primary rows. Lists absent from the payload are left alone.
func (s *Service) UpsertDetail(ctx context.Context, p DetailPayload) (*MergedDetail, error) {
	if p.MRN == "" {
		return nil, api.Validation("mrn")
	}
	if _, err := s.repo.GetBasicInfo(ctx, p.MRN); err != nil {
		return nil, err
	}

	var merged *MergedDetail
	err := s.runner.WithTx(ctx, func(ctx context.Context) error {
		resolver := s.codes.NewResolver()
		fields := map[string]*string{}
		staged := map[string]*string{}

		detailOnly := func(col string, v *string) {
			if v != nil {
				fields[col] = v
			}
		}
		mirrored := func(detailCol, basicCol string, v *string) {
			if v != nil {
				fields[detailCol] = v
				staged[basicCol] = v
			}
		}
		coded := func(detailCol, codeCol, nameCol, category string, v *string) {
			if v == nil {
				return
			}
			fields[detailCol] = v
			staged[codeCol] = v
			name := resolver.ResolveName(ctx, category, *v)
			staged[nameCol] = &name
		}

		mirrored("pt_name", "pt_name", p.PtName)
		mirrored("full_name", "pt_name_full", p.FullName)
		mirrored("birth_date", "birth_date", p.BirthDate)
		mirrored("email", "email", p.Email)
		coded("biological_gender", "gender", "gender_name", codes.CategoryBiologicalGender, p.BiologicalGender)
		coded("marital_status", "marital_status", "marital_status_name", codes.CategoryMaritalStatus, p.MaritalStatus)
		coded("education_level", "education_no", "education_no_name", codes.CategoryEducationLevel, p.EducationLevel)
		coded("income_level", "low_income", "low_income_name", codes.CategoryIncomeLevel, p.IncomeLevel)
		detailOnly("blood_type_abo", p.BloodTypeABO)
		detailOnly("blood_type_rh", p.BloodTypeRH)

		detail, err := s.repo.UpsertDetail(ctx, p.MRN, fields)
		if err != nil {
			return err
		}

		apply := func(spec reconcile.ListSpec, items []reconcile.Item) error {
			if _, err := reconcile.Apply(ctx, s.lists, spec, p.MRN, items); err != nil {
				return err
			}
			for col, v := range reconcile.MirrorColumns(ctx, spec, items, resolver) {
				staged[col] = v
			}
			return nil
		}
		if p.Nationalities != nil {
			if err := apply(nationalitySpec, nationalityItems(*p.Nationalities)); err != nil {
				return err
			}
		}
		if p.Languages != nil {
			if err := apply(languageSpec, languageItems(*p.Languages)); err != nil {
				return err
			}
		}
		if p.Religions != nil {
			if err := apply(religionSpec, religionItems(*p.Religions)); err != nil {
				return err
			}
		}
		if p.IDDocuments != nil {
			if err := apply(idDocumentSpec, idDocumentItems(*p.IDDocuments)); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateBasicInfoColumns(ctx, p.MRN, staged); err != nil {
			return err
		}

		merged, err = s.mergeLists(ctx, detail)
		return err
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *Service) DeleteNationality(ctx context.Context, id int64) error {
	return s.deleteListRow(ctx, nationalitySpec, id)
}

func (s *Service) DeleteLanguage(ctx context.Context, id int64) error {
	return s.deleteListRow(ctx, languageSpec, id)
}

func (s *Service) DeleteReligion(ctx context.Context, id int64) error {
	return s.deleteListRow(ctx, religionSpec, id)
}

func (s *Service) DeleteIDDocument(ctx context.Context, id int64) error {
	return s.deleteListRow(ctx, idDocumentSpec, id)
}

// deleteListRow removes one attribute row; deleting the primary row also clears
// the mirrored basic-info columns, in the same transaction.
func (s *Service) deleteListRow(ctx context.Context, spec reconcile.ListSpec, id int64) error {
	return s.runner.WithTx(ctx, func(ctx context.Context) error {
		row, err := s.lists.Get(ctx, spec, id)
		if err != nil {
			return err
		}
		if err := s.lists.Delete(ctx, spec, id); err != nil {
			return err
		}
		if row.IsPrimary {
			return s.repo.UpdateBasicInfoColumns(ctx, row.Key, reconcile.ClearedMirror(spec))
		}
		return nil
	})
}

func (s *Service) mergeLists(ctx context.Context, d *Detail) (*MergedDetail, error) {
	merged := &MergedDetail{
		Detail:        *d,
		Nationalities: []Nationality{},
		Languages:     []Language{},
		Religions:     []Religion{},
		IDDocuments:   []IDDocument{},
	}

	rows, err := s.lists.List(ctx, nationalitySpec, d.MRN)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		merged.Nationalities = append(merged.Nationalities, nationalityFromRow(r))
	}

	if rows, err = s.lists.List(ctx, languageSpec, d.MRN); err != nil {
		return nil, err
	}
	for _, r := range rows {
		merged.Languages = append(merged.Languages, languageFromRow(r))
	}

	if rows, err = s.lists.List(ctx, religionSpec, d.MRN); err != nil {
		return nil, err
	}
	for _, r := range rows {
		merged.Religions = append(merged.Religions, religionFromRow(r))
	}

	if rows, err = s.lists.List(ctx, idDocumentSpec, d.MRN); err != nil {
		return nil, err
	}
	for _, r := range rows {
		merged.IDDocuments = append(merged.IDDocuments, idDocumentFromRow(r))
	}
	return merged, nil
}
