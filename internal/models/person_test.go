package models

// Тесты доменной сущности Person (internal/models/person.go).
//
//  Проверяем:
//  - New: нормализацию всех входных форм (строки/время для даты, битовые
//    формы для пола), «всё или ничего» при ошибке любого поля;
//  - FromRow: доверенное восстановление без валидации;
//  - сеттеры: сохранение прежнего значения при ошибке, формы отсутствия id;
//  - FormatFields/GenderView/BirthdateView: независимость копии, режимы
//    отображения и типы отображаемых значений;
//  - Fields: канонический набор полей, независимость от режимов;
//  - ComputeAge/wholeYears: полные годы, знак, усечение к нулю, границы
//    дня рождения и високосный случай;
//  - VerboseGenderLabel: метки для всех битовых форм, отказ для прочих.
//
// Подготовка окружения:
//   go test ./internal/models -v -race -count=1

import (
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/people-service/internal/validation"
	"github.com/stretchr/testify/require"
)

// validInput — база для тестов: все поля корректны, идентификатора нет.
func validInput() Input {
	return Input{
		FirstName: "Alice",
		LastName:  "Liddell",
		Birthdate: "2000-02-29",
		Gender:    1,
		Town:      "Praha",
	}
}

func newPerson(t *testing.T) *Person {
	t.Helper()

	p, err := New(validInput())
	require.NoError(t, err)
	return p
}

// Эквивалентные входные формы даты сводятся к одной хранимой форме.
func TestNew_NormalizesBirthdateForms(t *testing.T) {
	forms := []any{
		"1990-05-01",
		"1990-05-01 13:45:00",
		"1990-05-01T13:45:00Z",
		time.Date(1990, time.May, 1, 13, 45, 0, 0, time.UTC),
	}

	for _, form := range forms {
		in := validInput()
		in.Birthdate = form

		p, err := New(in)
		require.NoError(t, err)
		require.Equal(t, "1990-05-01", p.Birthdate())
	}
}

// Эквивалентные битовые формы пола сводятся к каноническому токену.
func TestNew_NormalizesGenderForms(t *testing.T) {
	female := []any{true, 1, int64(1), "1", "true"}
	for _, form := range female {
		in := validInput()
		in.Gender = form

		p, err := New(in)
		require.NoError(t, err)
		require.Equal(t, GenderFemale, p.Gender())
	}

	male := []any{false, 0, "0", "false"}
	for _, form := range male {
		in := validInput()
		in.Gender = form

		p, err := New(in)
		require.NoError(t, err)
		require.Equal(t, GenderMale, p.Gender())
	}
}

// Успешное конструирование: шесть канонических полей в хранимой форме,
// набор ключей совпадает с колонками таблицы people.
func TestNew_Fields(t *testing.T) {
	p := newPerson(t)

	fields := p.Fields()
	require.Equal(t, map[string]string{
		"person_id":  "",
		"first_name": "Alice",
		"last_name":  "Liddell",
		"birthdate":  "2000-02-29",
		"gender":     "1",
		"town":       "Praha",
	}, fields)

	require.Len(t, fields, len(PeopleColumns))
	for _, col := range PeopleColumns {
		require.Contains(t, fields, col)
	}
}

// Ошибка любого поля прерывает конструирование целиком: сущности нет,
// ошибка несёт имя поля и нарушенное правило.
func TestNew_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
		rule   error
	}{
		{
			name:   "first name with digit",
			mutate: func(in *Input) { in.FirstName = "A1ice" },
			field:  "first_name",
			rule:   validation.ErrAlphabetic,
		},
		{
			name:   "first name too long",
			mutate: func(in *Input) { in.FirstName = strings.Repeat("a", 31) },
			field:  "first_name",
			rule:   validation.ErrLength,
		},
		{
			name:   "empty last name",
			mutate: func(in *Input) { in.LastName = "" },
			field:  "last_name",
			rule:   validation.ErrLength,
		},
		{
			name:   "last name with space",
			mutate: func(in *Input) { in.LastName = "van Dyk" },
			field:  "last_name",
			rule:   validation.ErrAlphabetic,
		},
		{
			name:   "garbage birthdate",
			mutate: func(in *Input) { in.Birthdate = "yesterday" },
			field:  "birthdate",
			rule:   validation.ErrDatetime,
		},
		{
			name:   "gender out of bit range",
			mutate: func(in *Input) { in.Gender = 2 },
			field:  "gender",
			rule:   validation.ErrBit,
		},
		{
			name:   "empty town",
			mutate: func(in *Input) { in.Town = "" },
			field:  "town",
			rule:   validation.ErrLength,
		},
		{
			name:   "town too long",
			mutate: func(in *Input) { in.Town = strings.Repeat("ž", 169) },
			field:  "town",
			rule:   validation.ErrLength,
		},
		{
			name:   "non-numeric person id",
			mutate: func(in *Input) { in.PersonID = "abc" },
			field:  "person_id",
			rule:   validation.ErrNumeric,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			p, err := New(in)
			require.Nil(t, p)
			require.ErrorIs(t, err, tc.rule)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

// nil и пустая строка означают отсутствие идентификатора; числовые формы
// канонизируются; ошибка не трогает прежнее значение.
func TestPerson_SetPersonID(t *testing.T) {
	p := newPerson(t)
	require.Equal(t, "", p.PersonID())

	require.NoError(t, p.SetPersonID("42"))
	require.Equal(t, "42", p.PersonID())

	require.NoError(t, p.SetPersonID(7))
	require.Equal(t, "7", p.PersonID())

	require.ErrorIs(t, p.SetPersonID("abc"), validation.ErrNumeric)
	require.Equal(t, "7", p.PersonID())

	require.NoError(t, p.SetPersonID(""))
	require.Equal(t, "", p.PersonID())

	require.NoError(t, p.SetPersonID("7"))
	require.NoError(t, p.SetPersonID(nil))
	require.Equal(t, "", p.PersonID())
}

// Неудачное присваивание сохраняет прежние значения полей.
func TestPerson_SettersKeepValueOnError(t *testing.T) {
	p := newPerson(t)

	require.Error(t, p.SetFirstName("A1ice"))
	require.Equal(t, "Alice", p.FirstName())

	require.Error(t, p.SetLastName(strings.Repeat("b", 31)))
	require.Equal(t, "Liddell", p.LastName())

	require.Error(t, p.SetBirthdate("garbage"))
	require.Equal(t, "2000-02-29", p.Birthdate())

	require.Error(t, p.SetGender(5))
	require.Equal(t, GenderFemale, p.Gender())

	require.Error(t, p.SetTown(""))
	require.Equal(t, "Praha", p.Town())
}

// FromRow восстанавливает строку как есть: без валидации и нормализации.
func TestFromRow_TrustsRowAsIs(t *testing.T) {
	row := map[string]string{
		"person_id":  "13",
		"first_name": "A1",
		"last_name":  "",
		"birthdate":  "not-a-date",
		"gender":     "x",
		"town":       "Praha",
	}

	p := FromRow(row)
	require.Equal(t, "13", p.PersonID())
	require.Equal(t, "A1", p.FirstName())
	require.Equal(t, "", p.LastName())
	require.Equal(t, "not-a-date", p.Birthdate())
	require.Equal(t, "x", p.Gender())
	require.Equal(t, row, p.Fields())
}

// FormatFields возвращает независимую копию; исходная сущность не меняется.
func TestPerson_FormatFields_IndependentCopy(t *testing.T) {
	p := newPerson(t)

	v := p.FormatFields(true, true)
	require.NotSame(t, p, v)

	// Копия отображает метку и возраст, оригинал — токен и дату.
	require.Equal(t, GenderLabelFemale, v.GenderView())
	require.IsType(t, int(0), v.BirthdateView())
	require.Equal(t, v.Age(), v.BirthdateView())

	require.Equal(t, GenderFemale, p.GenderView())
	require.Equal(t, "2000-02-29", p.BirthdateView())

	// Хранимая форма у обеих одна и та же: режимы на Fields не влияют.
	require.Equal(t, p.Fields(), v.Fields())

	// Мутация копии не затрагивает оригинал.
	require.NoError(t, v.SetTown("Brno"))
	require.Equal(t, "Praha", p.Town())
}

// Оба режима разом на мужской записи: метка muž, возраст целым числом,
// хранимая форма не затронута.
func TestPerson_FormatFields_MaleWithBothModes(t *testing.T) {
	p := FromRow(map[string]string{
		"person_id":  "7",
		"first_name": "Karel",
		"last_name":  "Novák",
		"birthdate":  "2000-01-01",
		"gender":     "0",
		"town":       "Brno",
	})

	v := p.FormatFields(true, true)
	require.Equal(t, GenderLabelMale, v.GenderView())

	wantAge, err := ComputeAge("2000-01-01")
	require.NoError(t, err)
	require.Equal(t, wantAge, v.BirthdateView())

	require.Equal(t, p.Fields(), v.Fields())
	require.Equal(t, "2000-01-01", v.Fields()["birthdate"])
	require.Equal(t, "0", v.Fields()["gender"])
}

// Выключенные режимы: обе проекции совпадают с хранимой формой.
func TestPerson_ViewsWithFlagsOff(t *testing.T) {
	p := newPerson(t)

	v := p.FormatFields(false, false)
	require.Equal(t, "1", v.GenderView())
	require.Equal(t, "2000-02-29", v.BirthdateView())
}

// Возраст сущности совпадает с ComputeAge от хранимой даты.
func TestPerson_Age(t *testing.T) {
	p := newPerson(t)

	want, err := ComputeAge(p.Birthdate())
	require.NoError(t, err)
	require.Equal(t, want, p.Age())
}

// Метка пола сущности: токен «1» — žena, «0» — muž.
func TestPerson_GenderLabel(t *testing.T) {
	p := newPerson(t)
	require.Equal(t, GenderLabelFemale, p.GenderLabel())

	require.NoError(t, p.SetGender(0))
	require.Equal(t, GenderLabelMale, p.GenderLabel())
}

// Сегодняшняя дата рождения — ноль полных лет; дата в будущем — отрицательно.
func TestComputeAge_ClockBoundaries(t *testing.T) {
	got, err := ComputeAge(time.Now().Format(time.DateOnly))
	require.NoError(t, err)
	require.Equal(t, 0, got)

	got, err = ComputeAge(time.Now())
	require.NoError(t, err)
	require.Equal(t, 0, got)

	got, err = ComputeAge(time.Now().AddDate(2, 0, 0))
	require.NoError(t, err)
	require.Equal(t, -2, got)
}

// Невалидные значения даты — ошибка правила ErrDatetime.
func TestComputeAge_InvalidInput(t *testing.T) {
	_, err := ComputeAge("nope")
	require.ErrorIs(t, err, validation.ErrDatetime)

	_, err = ComputeAge(nil)
	require.ErrorIs(t, err, validation.ErrDatetime)
}

// Границы полных лет на фиксированных датах: канун дня рождения, сам день,
// високосное 29 февраля, усечение к нулю, игнорирование компонента времени.
func TestWholeYears_FixedDates(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "day before birthday", from: date(1990, time.June, 15), to: date(2020, time.June, 14), want: 29},
		{name: "on birthday", from: date(1990, time.June, 15), to: date(2020, time.June, 15), want: 30},
		{name: "day after birthday", from: date(1990, time.June, 15), to: date(2020, time.June, 16), want: 30},
		{name: "same date", from: date(2020, time.January, 1), to: date(2020, time.January, 1), want: 0},
		{name: "leap birthday before Mar 1", from: date(2016, time.February, 29), to: date(2026, time.February, 28), want: 9},
		{name: "leap birthday on Mar 1", from: date(2016, time.February, 29), to: date(2026, time.March, 1), want: 10},
		{name: "future under a year truncates to zero", from: date(2022, time.March, 10), to: date(2021, time.March, 11), want: 0},
		{name: "future whole years negative", from: date(2022, time.March, 10), to: date(2020, time.March, 10), want: -2},
		{
			name: "time component ignored",
			from: time.Date(1990, time.June, 15, 23, 59, 59, 0, time.UTC),
			to:   time.Date(2020, time.June, 15, 0, 0, 0, 0, time.Local),
			want: 30,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, wholeYears(tc.from, tc.to))
		})
	}
}

// Метка пола для всех принимаемых битовых форм; прочие значения — ErrBit.
func TestVerboseGenderLabel(t *testing.T) {
	male := []any{0, false, "0", "false", int64(0)}
	for _, form := range male {
		got, err := VerboseGenderLabel(form)
		require.NoError(t, err)
		require.Equal(t, GenderLabelMale, got)
	}

	female := []any{1, true, "1", "true", uint(1)}
	for _, form := range female {
		got, err := VerboseGenderLabel(form)
		require.NoError(t, err)
		require.Equal(t, GenderLabelFemale, got)
	}

	for _, form := range []any{2, -1, "x", nil, 1.0} {
		_, err := VerboseGenderLabel(form)
		require.ErrorIs(t, err, validation.ErrBit)
	}
}
