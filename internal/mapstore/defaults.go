package mapstore

import "github.com/catalog-feed-api/internal/models"

// DefaultConfig returns the seeded mapping configuration used until an
// operator saves their own. Primary keywords are the exact headers of
// the known stock exports; synonyms cover the common hand-edited
// variants.
func DefaultConfig() *models.KeywordConfig {
	return &models.KeywordConfig{
		Version: "1.0",
		FuzzyKeywords: map[string]models.FieldKeywords{
			models.FieldCode: {
				Primary:  []string{"Код предложения"},
				Synonyms: []string{"код", "номер предложения", "лот"},
			},
			models.FieldCategory: {
				Primary:  []string{"Категория ТС"},
				Synonyms: []string{"категория"},
			},
			models.FieldStatus: {
				Primary:  []string{"Статус ИЗТ"},
				Synonyms: []string{"статус"},
			},
			models.FieldBrand: {
				Primary:  []string{"Марка"},
				Synonyms: []string{"бренд", "производитель"},
			},
			models.FieldModel: {
				Primary:  []string{"Модель"},
				Synonyms: []string{"наименование модели"},
			},
			models.FieldModification: {
				Primary:  []string{"Модификация"},
				Synonyms: []string{"комплектация"},
			},
			models.FieldColor: {
				Primary:  []string{"Цвет кузова"},
				Synonyms: []string{"цвет"},
			},
			models.FieldCondition: {
				Primary:  []string{"Состояние ПЛ"},
				Synonyms: []string{"состояние"},
			},
			models.FieldVIN: {
				Primary:  []string{"VIN"},
				Synonyms: []string{"вин", "номер кузова"},
			},
			models.FieldVehicleType: {
				Primary:  []string{"Тип ТС"},
				Synonyms: []string{"тип транспортного средства", "вид техники"},
			},
			models.FieldYear: {
				Primary:  []string{"Год выпуска"},
				Synonyms: []string{"год"},
			},
			models.FieldMileage: {
				Primary:  []string{"Пробег"},
				Synonyms: []string{"пробег, км", "моточасы"},
			},
			models.FieldPrice: {
				Primary:  []string{"СРС с переоценкой"},
				Synonyms: []string{"цена", "стоимость"},
			},
			models.FieldPriceOriginal: {
				Primary:  []string{"СРС"},
				Synonyms: []string{"цена без переоценки"},
			},
			models.FieldPriceRevaluation: {
				Primary:  []string{"Переоценка"},
				Synonyms: []string{},
			},
			models.FieldKeys: {
				Primary:  []string{"Количество ключей после изъятия"},
				Synonyms: []string{"ключи"},
			},
			models.FieldPTSType: {
				Primary:  []string{"Тип ПТС/ЭПТС"},
				Synonyms: []string{"птс", "эптс"},
			},
			models.FieldFederalDistrict: {
				Primary:  []string{"Федеральный округ"},
				Synonyms: []string{"округ", "регион"},
			},
			models.FieldAddress: {
				Primary:  []string{"Адрес стоянки"},
				Synonyms: []string{"адрес", "место стоянки"},
			},
			models.FieldDaysOnSale: {
				Primary:  []string{"Кол-во дней в реализации"},
				Synonyms: []string{"дней в реализации"},
			},
			models.FieldPhotoURL: {
				Primary:  []string{"Фото и видео материалы ТС"},
				Synonyms: []string{"фото", "ссылка на фото"},
			},
			models.FieldComment: {
				Primary:  []string{"Комментарий по оценке"},
				Synonyms: []string{"комментарий", "примечание"},
			},
			models.FieldDiscountPct: {
				Primary:  []string{"% скидки"},
				Synonyms: []string{"процент скидки", "скидка"},
			},
			models.FieldDiscountPrice: {
				Primary:  []string{"Минимальная цена со скидкой"},
				Synonyms: []string{"цена со скидкой"},
			},
		},
		Mappings: make(map[string]map[string]string),
	}
}
