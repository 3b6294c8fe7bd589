// models содержит доменные сущности people-service.
//
// Центральная сущность — Person: запись о человеке с валидируемыми полями.
// Поля хранятся только в нормализованной форме, инвариант поддерживают
// сеттеры: каждое присваивание проходит через пакет validation, при ошибке
// прежнее значение поля сохраняется.
package models

import (
	"time"

	"github.com/pribylovaa/people-service/internal/validation"
)

// TablePeople — логическое имя таблицы людей в хранилище.
const TablePeople = "people"

// PeopleColumns — канонический набор колонок таблицы people.
var PeopleColumns = []string{"person_id", "first_name", "last_name", "birthdate", "gender", "town"}

// Канонические токены пола в хранимой форме.
const (
	GenderMale   = "0"
	GenderFemale = "1"
)

// Словесные метки пола — фиксированные доменные константы.
const (
	GenderLabelMale   = "muž"
	GenderLabelFemale = "žena"
)

// Ограничения длины полей (в рунах).
const (
	maxNameLength = 30
	maxTownLength = 168
)

// Person — запись о человеке.
//
// Инварианты:
//   - personID пуст ровно до первого сохранения: идентификатор назначает
//     хранилище, в памяти он хранится строкой из цифр;
//   - birthdate всегда в нормализованной форме YYYY-MM-DD;
//   - gender всегда канонический токен GenderMale/GenderFemale, не метка;
//   - флаги отображения — состояние представления: они не сохраняются,
//     не сравниваются и не участвуют в Fields().
type Person struct {
	personID  string
	firstName string
	lastName  string
	birthdate string
	gender    string
	town      string

	verboseGender         bool
	ageInsteadOfBirthdate bool
}

// Input — сырые значения полей для валидирующего конструктора New.
// PersonID, Birthdate и Gender принимают несколько входных форм,
// см. соответствующие сеттеры.
type Input struct {
	PersonID  any
	FirstName string
	LastName  string
	Birthdate any
	Gender    any
	Town      string
}

// New создаёт сущность из сырых значений, прогоняя каждое поле через его
// сеттер. Конструирование «всё или ничего»: первая ошибка валидации
// возвращается как есть, частично заполненная сущность наружу не выходит.
func New(in Input) (*Person, error) {
	var p Person

	if err := p.SetPersonID(in.PersonID); err != nil {
		return nil, err
	}
	if err := p.SetFirstName(in.FirstName); err != nil {
		return nil, err
	}
	if err := p.SetLastName(in.LastName); err != nil {
		return nil, err
	}
	if err := p.SetBirthdate(in.Birthdate); err != nil {
		return nil, err
	}
	if err := p.SetGender(in.Gender); err != nil {
		return nil, err
	}
	if err := p.SetTown(in.Town); err != nil {
		return nil, err
	}

	return &p, nil
}

// FromRow восстанавливает сущность из строки хранилища как есть, без
// повторной валидации: строки собственной таблицы считаются доверенными.
// Для пользовательского ввода всегда New.
func FromRow(row map[string]string) *Person {
	return &Person{
		personID:  row["person_id"],
		firstName: row["first_name"],
		lastName:  row["last_name"],
		birthdate: row["birthdate"],
		gender:    row["gender"],
		town:      row["town"],
	}
}

// SetPersonID задаёт идентификатор. nil и пустая строка означают отсутствие
// идентификатора (сущность ещё не сохранялась); иначе значение обязано быть
// числовым (строка из цифр либо неотрицательное целое) и хранится в
// строковой форме.
func (p *Person) SetPersonID(v any) error {
	if v == nil {
		p.personID = ""
		return nil
	}
	if s, ok := v.(string); ok && s == "" {
		p.personID = ""
		return nil
	}

	id, err := validation.Numeric(v, "person_id")
	if err != nil {
		return err
	}

	p.personID = id
	return nil
}

// SetFirstName задаёт имя: от 1 до 30 символов, только буквы.
func (p *Person) SetFirstName(v string) error {
	if err := validation.MaxLength(v, maxNameLength, "first_name"); err != nil {
		return err
	}
	if err := validation.Alphabetic(v, "first_name"); err != nil {
		return err
	}

	p.firstName = v
	return nil
}

// SetLastName задаёт фамилию: от 1 до 30 символов, только буквы.
func (p *Person) SetLastName(v string) error {
	if err := validation.MaxLength(v, maxNameLength, "last_name"); err != nil {
		return err
	}
	if err := validation.Alphabetic(v, "last_name"); err != nil {
		return err
	}

	p.lastName = v
	return nil
}

// SetBirthdate задаёт дату рождения. Принимает time.Time либо строку в
// одной из поддерживаемых форм; хранится всегда нормализованная форма
// YYYY-MM-DD, компонент времени отбрасывается.
func (p *Person) SetBirthdate(v any) error {
	t, err := validation.Datetime(v, "birthdate")
	if err != nil {
		return err
	}

	p.birthdate = t.Format(time.DateOnly)
	return nil
}

// SetGender задаёт пол. Принимает любую битовую форму (булевы, целые 0/1,
// строки "0"/"1"/"true"/"false"); хранится канонический токен.
func (p *Person) SetGender(v any) error {
	bit, err := validation.Bit(v, "gender")
	if err != nil {
		return err
	}

	if bit {
		p.gender = GenderFemale
	} else {
		p.gender = GenderMale
	}
	return nil
}

// SetTown задаёт город: от 1 до 168 символов, алфавит не ограничен.
func (p *Person) SetTown(v string) error {
	if err := validation.MaxLength(v, maxTownLength, "town"); err != nil {
		return err
	}

	p.town = v
	return nil
}

// PersonID возвращает идентификатор в строковой форме;
// пустая строка — сущность ещё не сохранялась.
func (p *Person) PersonID() string { return p.personID }

func (p *Person) FirstName() string { return p.firstName }

func (p *Person) LastName() string { return p.lastName }

// Birthdate возвращает дату рождения в хранимой форме YYYY-MM-DD.
func (p *Person) Birthdate() string { return p.birthdate }

// Gender возвращает канонический токен пола ("0"/"1").
func (p *Person) Gender() string { return p.gender }

func (p *Person) Town() string { return p.town }

// Age возвращает число полных лет на текущий момент. Значение вычисляется
// заново при каждом вызове и зависит от часов среды — оно не хранится и не
// сохраняется. Дата рождения корректна по инварианту сущности, поэтому
// ошибки разбора здесь не бывает; для произвольных значений есть ComputeAge.
func (p *Person) Age() int {
	age, _ := ComputeAge(p.birthdate)
	return age
}

// GenderLabel возвращает словесную метку хранимого пола.
func (p *Person) GenderLabel() string {
	label, _ := VerboseGenderLabel(p.gender)
	return label
}

// FormatFields возвращает независимую копию сущности с выставленными
// режимами отображения. Исходная сущность не меняется; копия разделяет с
// ней только значения полей на момент вызова.
func (p *Person) FormatFields(verboseGender, ageInsteadOfBirthdate bool) *Person {
	c := *p
	c.verboseGender = verboseGender
	c.ageInsteadOfBirthdate = ageInsteadOfBirthdate
	return &c
}

// GenderView возвращает пол в отображаемой форме: словесную метку при
// включённом режиме verboseGender, иначе канонический токен.
func (p *Person) GenderView() string {
	if p.verboseGender {
		return p.GenderLabel()
	}
	return p.gender
}

// BirthdateView возвращает дату рождения в отображаемой форме: при
// включённом режиме ageInsteadOfBirthdate — число полных лет (int),
// иначе строку YYYY-MM-DD.
func (p *Person) BirthdateView() any {
	if p.ageInsteadOfBirthdate {
		return p.Age()
	}
	return p.birthdate
}

// Fields возвращает все шесть канонических полей в хранимой форме —
// «сырое» представление для персистентности. Режимы отображения на
// результат не влияют; отсутствующий идентификатор — пустая строка.
func (p *Person) Fields() map[string]string {
	return map[string]string{
		"person_id":  p.personID,
		"first_name": p.firstName,
		"last_name":  p.lastName,
		"birthdate":  p.birthdate,
		"gender":     p.gender,
		"town":       p.town,
	}
}

// ComputeAge возвращает число полных лет между датой рождения и текущим
// моментом. Принимает time.Time либо строку (строка сперва валидируется как
// дата). Разница знаковая и усечённая к нулю: дата в будущем даёт
// отрицательный возраст, сегодняшняя дата — ноль.
func ComputeAge(v any) (int, error) {
	t, err := validation.Datetime(v, "birthdate")
	if err != nil {
		return 0, err
	}

	return wholeYears(t, time.Now()), nil
}

// wholeYears — знаковое число полных лет от from до to с усечением к нулю.
// Сравниваются календарные даты: компонент времени и зона отбрасываются,
// чтобы граница «день рождения сегодня» не зависела от часового пояса.
func wholeYears(from, to time.Time) int {
	from = dateOnly(from)
	to = dateOnly(to)

	if from.After(to) {
		return -wholeYears(to, from)
	}

	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// VerboseGenderLabel возвращает словесную метку пола для любой принимаемой
// битовой формы: 0/false — GenderLabelMale, 1/true — GenderLabelFemale.
func VerboseGenderLabel(v any) (string, error) {
	bit, err := validation.Bit(v, "gender")
	if err != nil {
		return "", err
	}

	if bit {
		return GenderLabelFemale, nil
	}
	return GenderLabelMale, nil
}
